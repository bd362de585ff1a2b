package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

const workoutCols = `id, title, description, difficulty, duration, created_at`

func (s *Store) CreateWorkout(ctx context.Context, w *model.Workout) error {
	w.ID = uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO workouts (id, title, description, difficulty, duration)
		 VALUES ($1,$2,$3,$4,$5)
		 RETURNING created_at`,
		w.ID, w.Title, w.Description, w.Difficulty, w.Duration,
	).Scan(&w.CreatedAt)
	return translate(err)
}

func (s *Store) GetWorkout(ctx context.Context, id string) (*model.Workout, error) {
	w := &model.Workout{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+workoutCols+` FROM workouts WHERE id = $1`, id,
	).Scan(&w.ID, &w.Title, &w.Description, &w.Difficulty, &w.Duration, &w.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return w, nil
}

func (s *Store) ListWorkouts(ctx context.Context) ([]model.Workout, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+workoutCols+` FROM workouts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Workout{}
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(&w.ID, &w.Title, &w.Description, &w.Difficulty, &w.Duration, &w.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (s *Store) UpdateWorkout(ctx context.Context, id string, p model.WorkoutPatch) (*model.Workout, error) {
	var patch Patch
	SetIf(&patch, "title", p.Title)
	SetIf(&patch, "description", p.Description)
	SetIf(&patch, "difficulty", p.Difficulty)
	SetIf(&patch, "duration", p.Duration)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	w := &model.Workout{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE workouts SET %s WHERE id = $%d RETURNING %s`, set, len(args), workoutCols),
		args...,
	).Scan(&w.ID, &w.Title, &w.Description, &w.Difficulty, &w.Duration, &w.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return w, nil
}

func (s *Store) DeleteWorkout(ctx context.Context, id string) (*model.Workout, error) {
	w := &model.Workout{}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM workouts WHERE id = $1 RETURNING `+workoutCols, id,
	).Scan(&w.ID, &w.Title, &w.Description, &w.Difficulty, &w.Duration, &w.CreatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return w, nil
}
