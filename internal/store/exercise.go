package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

const exerciseCols = `id, workout_id, student_id, name, description, repetitions, sets, duration, rest_period`

func (s *Store) CreateExercise(ctx context.Context, e *model.StudentExercise) error {
	e.ID = uuid.New().String()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO student_exercises (id, workout_id, student_id, name, description, repetitions, sets, duration, rest_period)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.WorkoutID, e.StudentID, e.Name, e.Description, e.Repetitions, e.Sets, e.Duration, e.RestPeriod,
	)
	return translate(err)
}

// ListExercises returns the exercises under one assigned student workout.
func (s *Store) ListExercises(ctx context.Context, studentWorkoutID string) ([]model.StudentExercise, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+exerciseCols+` FROM student_exercises WHERE workout_id = $1`, studentWorkoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.StudentExercise{}
	for rows.Next() {
		var e model.StudentExercise
		if err := rows.Scan(&e.ID, &e.WorkoutID, &e.StudentID, &e.Name, &e.Description, &e.Repetitions, &e.Sets, &e.Duration, &e.RestPeriod); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) UpdateExercise(ctx context.Context, id string, p model.StudentExercisePatch) (*model.StudentExercise, error) {
	var patch Patch
	SetIf(&patch, "name", p.Name)
	SetIf(&patch, "description", p.Description)
	SetIf(&patch, "repetitions", p.Repetitions)
	SetIf(&patch, "sets", p.Sets)
	SetIf(&patch, "duration", p.Duration)
	SetIf(&patch, "rest_period", p.RestPeriod)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	e := &model.StudentExercise{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE student_exercises SET %s WHERE id = $%d RETURNING %s`, set, len(args), exerciseCols),
		args...,
	).Scan(&e.ID, &e.WorkoutID, &e.StudentID, &e.Name, &e.Description, &e.Repetitions, &e.Sets, &e.Duration, &e.RestPeriod)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (s *Store) DeleteExercise(ctx context.Context, id string) (*model.StudentExercise, error) {
	e := &model.StudentExercise{}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM student_exercises WHERE id = $1 RETURNING `+exerciseCols, id,
	).Scan(&e.ID, &e.WorkoutID, &e.StudentID, &e.Name, &e.Description, &e.Repetitions, &e.Sets, &e.Duration, &e.RestPeriod)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}
