package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

const counselorCols = `id, first_name, last_name, email, specialization, location, availability`

func (s *Store) CreateCounselor(ctx context.Context, c *model.Counselor) error {
	c.ID = uuid.New().String()
	if len(c.Availability) == 0 {
		c.Availability = json.RawMessage(`{}`)
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO counselors (id, first_name, last_name, email, specialization, location, availability)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.Specialization, c.Location, c.Availability,
	)
	return translate(err)
}

func (s *Store) GetCounselor(ctx context.Context, id string) (*model.Counselor, error) {
	c := &model.Counselor{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+counselorCols+` FROM counselors WHERE id = $1`, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Specialization, &c.Location, &c.Availability)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *Store) ListCounselors(ctx context.Context) ([]model.Counselor, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+counselorCols+` FROM counselors ORDER BY last_name, first_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Counselor{}
	for rows.Next() {
		var c model.Counselor
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Specialization, &c.Location, &c.Availability); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) UpdateCounselor(ctx context.Context, id string, p model.CounselorPatch) (*model.Counselor, error) {
	var patch Patch
	SetIf(&patch, "first_name", p.FirstName)
	SetIf(&patch, "last_name", p.LastName)
	SetIf(&patch, "email", p.Email)
	SetIf(&patch, "specialization", p.Specialization)
	SetIf(&patch, "location", p.Location)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	c := &model.Counselor{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE counselors SET %s WHERE id = $%d RETURNING %s`, set, len(args), counselorCols),
		args...,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Specialization, &c.Location, &c.Availability)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *Store) DeleteCounselor(ctx context.Context, id string) (*model.Counselor, error) {
	c := &model.Counselor{}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM counselors WHERE id = $1 RETURNING `+counselorCols, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Specialization, &c.Location, &c.Availability)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// SetAvailability replaces the counselor's availability blob verbatim.
// Its structure is opaque to this service.
func (s *Store) SetAvailability(ctx context.Context, id string, availability json.RawMessage) (*model.Counselor, error) {
	c := &model.Counselor{}
	err := s.pool.QueryRow(ctx,
		`UPDATE counselors SET availability = $1 WHERE id = $2 RETURNING `+counselorCols,
		availability, id,
	).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Specialization, &c.Location, &c.Availability)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *Store) GetAvailability(ctx context.Context, id string) (json.RawMessage, error) {
	var availability json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT availability FROM counselors WHERE id = $1`, id,
	).Scan(&availability)
	if err != nil {
		return nil, translate(err)
	}
	return availability, nil
}
