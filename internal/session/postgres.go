// README: Postgres session store; JSONB state per row, upsert on save.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tripmate/internal/planner"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Init creates the sessions table when it does not exist yet.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS trip_sessions (
            id         TEXT PRIMARY KEY,
            state      JSONB NOT NULL,
            updated_at TIMESTAMPTZ NOT NULL
        )`)
	return err
}

func (s *PostgresStore) Load(ctx context.Context, sessionID string) (*planner.TripState, error) {
	row := s.db.QueryRow(ctx, `
        SELECT state
        FROM trip_sessions
        WHERE id = $1`, sessionID,
	)

	var raw []byte
	err := row.Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}

	var st planner.TripState
	if err := json.Unmarshal(raw, &st); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", sessionID, err)
	}
	return &st, nil
}

func (s *PostgresStore) Save(ctx context.Context, st *planner.TripState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", st.SessionID, err)
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO trip_sessions (id, state, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE
        SET state = EXCLUDED.state, updated_at = EXCLUDED.updated_at`,
		st.SessionID, raw, time.Now().UTC(),
	)
	return err
}

func (s *PostgresStore) Delete(ctx context.Context, sessionID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trip_sessions WHERE id = $1`, sessionID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
