package store

import (
	"context"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

func (s *Store) CreateUser(ctx context.Context, u *model.User) error {
	u.ID = uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, contact, course, level, roll_id)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Contact, u.Course, u.Level, u.RollID,
	)
	return translate(err)
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, contact, course, level, roll_id
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Contact, &u.Course, &u.Level, &u.RollID)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	err := s.pool.QueryRow(ctx,
		`SELECT id, email, password_hash, first_name, last_name, contact, course, level, roll_id
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Contact, &u.Course, &u.Level, &u.RollID)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}
