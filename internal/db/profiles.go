package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Candidate Profile Methods
// -----------------------------------------------------------------------------

// ProfileColumns are the JSONB columns of candidate_profiles, one per track.
var ProfileColumns = []string{"getting_started", "ascent", "core", "encore", "pivot"}

// ErrUnknownProfileColumn is returned for a column outside ProfileColumns.
var ErrUnknownProfileColumn = errors.New("unknown profile column")

func checkProfileColumn(column string) error {
	for _, c := range ProfileColumns {
		if c == column {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownProfileColumn, column)
}

// LoadProfileColumn returns the stored document of one track. A user with no
// row or a NULL column gets nil, nil.
func (db *DB) LoadProfileColumn(ctx context.Context, userID uuid.UUID, column string) ([]byte, error) {
	if err := checkProfileColumn(column); err != nil {
		return nil, err
	}

	var doc []byte
	err := db.pool.QueryRow(ctx,
		`SELECT `+pgx.Identifier{column}.Sanitize()+` FROM candidate_profiles WHERE user_id = $1`,
		userID,
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s profile: %w", column, err)
	}
	return doc, nil
}

// SaveProfileColumn overwrites one track's document. Other tracks in the row
// are left as they are.
func (db *DB) SaveProfileColumn(ctx context.Context, userID uuid.UUID, column string, doc []byte) error {
	if err := checkProfileColumn(column); err != nil {
		return err
	}

	col := pgx.Identifier{column}.Sanitize()
	_, err := db.pool.Exec(ctx,
		`INSERT INTO candidate_profiles (user_id, `+col+`)
		 VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET `+col+` = EXCLUDED.`+col+`, updated_at = NOW()`,
		userID, doc,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s profile: %w", column, err)
	}
	return nil
}
