package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"student-wellness-api/internal/model"
)

// Every appointment is exactly one hour long.
const AppointmentDuration = time.Hour

const appointmentCols = `id, appointment_time, counselor_id, student_id, status, type, title, description`

// HasConflict reports whether the counselor already has an appointment
// overlapping [start, start+1h). Touching endpoints do not overlap. On
// update the appointment being moved excludes itself via excludeID.
func (s *Store) HasConflict(ctx context.Context, counselorID string, start time.Time, excludeID string) (bool, error) {
	q := `SELECT EXISTS(
		SELECT 1 FROM appointments
		WHERE counselor_id = $1
		  AND appointment_time < $2
		  AND appointment_time + interval '1 hour' > $3`

	args := []any{counselorID, start.Add(AppointmentDuration), start}

	if excludeID != "" {
		q += ` AND id != $4`
		args = append(args, excludeID)
	}
	q += `)`

	var exists bool
	err := s.pool.QueryRow(ctx, q, args...).Scan(&exists)
	return exists, err
}

func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	a.ID = uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO appointments (id, appointment_time, counselor_id, student_id, status, type, title, description)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		a.ID, a.AppointmentTime, a.CounselorID, a.StudentID, a.Status, a.Type, a.Title, a.Description,
	)
	return translate(err)
}

func (s *Store) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointments WHERE id = $1`, id,
	).Scan(&a.ID, &a.AppointmentTime, &a.CounselorID, &a.StudentID, &a.Status, &a.Type, &a.Title, &a.Description)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments ORDER BY appointment_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

// UserAppointments returns appointments where the user is either the
// student or the counselor, ordered by start time ascending.
func (s *Store) UserAppointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+appointmentCols+` FROM appointments
		 WHERE student_id = $1 OR counselor_id = $1
		 ORDER BY appointment_time`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAppointments(rows)
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, p model.AppointmentPatch) (*model.Appointment, error) {
	var patch Patch
	SetIf(&patch, "appointment_time", p.AppointmentTime)
	SetIf(&patch, "title", p.Title)
	SetIf(&patch, "description", p.Description)
	SetIf(&patch, "status", p.Status)
	SetIf(&patch, "type", p.Type)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE appointments SET %s WHERE id = $%d RETURNING %s`, set, len(args), appointmentCols),
		args...,
	).Scan(&a.ID, &a.AppointmentTime, &a.CounselorID, &a.StudentID, &a.Status, &a.Type, &a.Title, &a.Description)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	a := &model.Appointment{}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM appointments WHERE id = $1 RETURNING `+appointmentCols, id,
	).Scan(&a.ID, &a.AppointmentTime, &a.CounselorID, &a.StudentID, &a.Status, &a.Type, &a.Title, &a.Description)
	if err != nil {
		return nil, translate(err)
	}
	return a, nil
}

func scanAppointments(rows pgx.Rows) ([]model.Appointment, error) {
	out := []model.Appointment{}
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(&a.ID, &a.AppointmentTime, &a.CounselorID, &a.StudentID, &a.Status, &a.Type, &a.Title, &a.Description); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
