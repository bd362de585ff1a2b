package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"student-wellness-api/internal/model"
)

const diaryCols = `id, student_id, entry_date, content, mood, title, color`

func (s *Store) CreateDiaryEntry(ctx context.Context, d *model.DiaryEntry) error {
	d.ID = uuid.New().String()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO thought_diaries (id, student_id, content, mood, title, color)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING entry_date`,
		d.ID, d.StudentID, d.Content, d.Mood, d.Title, d.Color,
	).Scan(&d.EntryDate)
	return translate(err)
}

func (s *Store) GetDiaryEntry(ctx context.Context, id string) (*model.DiaryEntry, error) {
	d := &model.DiaryEntry{}
	err := s.pool.QueryRow(ctx,
		`SELECT `+diaryCols+` FROM thought_diaries WHERE id = $1`, id,
	).Scan(&d.ID, &d.StudentID, &d.EntryDate, &d.Content, &d.Mood, &d.Title, &d.Color)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

// ListDiaryEntries returns a student's entries, newest first.
func (s *Store) ListDiaryEntries(ctx context.Context, studentID string) ([]model.DiaryEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+diaryCols+` FROM thought_diaries WHERE student_id = $1 ORDER BY entry_date DESC`,
		studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.DiaryEntry{}
	for rows.Next() {
		var d model.DiaryEntry
		if err := rows.Scan(&d.ID, &d.StudentID, &d.EntryDate, &d.Content, &d.Mood, &d.Title, &d.Color); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *Store) UpdateDiaryEntry(ctx context.Context, id string, p model.DiaryEntryPatch) (*model.DiaryEntry, error) {
	var patch Patch
	SetIf(&patch, "content", p.Content)
	SetIf(&patch, "mood", p.Mood)
	SetIf(&patch, "title", p.Title)
	SetIf(&patch, "color", p.Color)
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	set, args := patch.Build(1)
	args = append(args, id)

	d := &model.DiaryEntry{}
	err := s.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE thought_diaries SET %s WHERE id = $%d RETURNING %s`, set, len(args), diaryCols),
		args...,
	).Scan(&d.ID, &d.StudentID, &d.EntryDate, &d.Content, &d.Mood, &d.Title, &d.Color)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}

func (s *Store) DeleteDiaryEntry(ctx context.Context, id string) (*model.DiaryEntry, error) {
	d := &model.DiaryEntry{}
	err := s.pool.QueryRow(ctx,
		`DELETE FROM thought_diaries WHERE id = $1 RETURNING `+diaryCols, id,
	).Scan(&d.ID, &d.StudentID, &d.EntryDate, &d.Content, &d.Mood, &d.Title, &d.Color)
	if err != nil {
		return nil, translate(err)
	}
	return d, nil
}
