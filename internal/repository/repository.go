package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a lookup or mutation matches no row.
var ErrNotFound = errors.New("record not found")

// invalid_text_representation: an id that is not a UUID cannot match a row.
const codeInvalidText = "22P02"

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeInvalidText {
		return ErrNotFound
	}
	return err
}

func expectOne(res sql.Result, err error) error {
	if err != nil {
		return notFound(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
