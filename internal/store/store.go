package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("already exists")
	ErrConflict     = errors.New("scheduling conflict")
	ErrBadReference = errors.New("referenced row does not exist")
	ErrEmptyPatch   = errors.New("no fields to update")
)

type Store struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// translate maps low-level postgres errors onto the store's sentinel errors
// so handlers never have to look at SQLSTATEs.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrDuplicate
		case "23503": // foreign_key_violation
			return ErrBadReference
		case "23P01": // exclusion_violation, the overlap constraint
			return ErrConflict
		}
	}
	return err
}
