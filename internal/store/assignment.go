package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

const studentWorkoutCols = `id, student_id, workout_id, status, completed_at, feedback`

// CreateStudentWorkout assigns a catalog workout to a student.
func (s *Store) CreateStudentWorkout(ctx context.Context, sw *model.StudentWorkout) error {
	sw.ID = uuid.New().String()
	if sw.Status == "" {
		sw.Status = "pending"
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO student_workouts (id, student_id, workout_id, status, feedback)
		 VALUES ($1,$2,$3,$4,$5)`,
		sw.ID, sw.StudentID, sw.WorkoutID, sw.Status, sw.Feedback,
	)
	return translate(err)
}

func (s *Store) GetStudentWorkout(ctx context.Context, id string) (*model.StudentWorkout, error) {
	sw := &model.StudentWorkout{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+studentWorkoutCols+` FROM student_workouts WHERE id = $1`, id,
	).Scan(&sw.ID, &sw.StudentID, &sw.WorkoutID, &sw.Status, &sw.CompletedAt, &sw.Feedback)
	if err != nil {
		return nil, translate(err)
	}
	return sw, nil
}

func (s *Store) ListStudentWorkouts(ctx context.Context, studentID string) ([]model.StudentWorkout, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+studentWorkoutCols+` FROM student_workouts WHERE student_id = $1`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.StudentWorkout{}
	for rows.Next() {
		var sw model.StudentWorkout
		if err := rows.Scan(&sw.ID, &sw.StudentID, &sw.WorkoutID, &sw.Status, &sw.CompletedAt, &sw.Feedback); err != nil {
			return nil, err
		}
		out = append(out, sw)
	}
	return out, rows.Err()
}

func (s *Store) UpdateStudentWorkout(ctx context.Context, id string, p model.StudentWorkoutPatch) (*model.StudentWorkout, error) {
	var patch Patch
	SetIf(&patch, "status", p.Status)
	SetIf(&patch, "completed_at", p.CompletedAt)
	SetIf(&patch, "feedback", p.Feedback)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	sw := &model.StudentWorkout{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE student_workouts SET %s WHERE id = $%d RETURNING %s`, set, len(args), studentWorkoutCols),
		args...,
	).Scan(&sw.ID, &sw.StudentID, &sw.WorkoutID, &sw.Status, &sw.CompletedAt, &sw.Feedback)
	if err != nil {
		return nil, translate(err)
	}
	return sw, nil
}
