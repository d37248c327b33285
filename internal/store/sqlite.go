// internal/store/sqlite.go
//
// SQLite-backed implementation of game.Store.
// One row per session; guesses and clues are stored as JSON text
// columns. Save writes the whole row in a single upsert statement, so
// each session update is atomic at the record level — the core relies on
// this instead of in-process locking for concurrent double-submission.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wordguess/go-server/internal/game"
)

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore constructs a game.Store over an opened database.
// The sessions table is created by the sql/ migrations.
func NewSQLiteStore(db *sql.DB) game.Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Save(ctx context.Context, g *game.Session) error {
	guesses, err := json.Marshal(g.Guesses)
	if err != nil {
		return fmt.Errorf("marshal guesses: %w", err)
	}
	clues, err := json.Marshal(g.Clues)
	if err != nil {
		return fmt.Errorf("marshal clues: %w", err)
	}
	endedAt := ""
	if !g.EndedAt.IsZero() {
		endedAt = g.EndedAt.UTC().Format(time.RFC3339)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions
			(id, owner_id, secret, category, difficulty, max_wrong, max_clues,
			 guesses, wrong_count, clues, status, started_at, ended_at, revealed_info)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			guesses=excluded.guesses,
			wrong_count=excluded.wrong_count,
			clues=excluded.clues,
			status=excluded.status,
			ended_at=excluded.ended_at,
			revealed_info=excluded.revealed_info`,
		g.ID, g.OwnerID, g.Secret, string(g.Category), string(g.Difficulty),
		g.Limits.MaxWrong, g.Limits.MaxClues,
		string(guesses), g.WrongCount, string(clues), string(g.Status),
		g.StartedAt.UTC().Format(time.RFC3339), endedAt, g.RevealedInfo)
	if err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*game.Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, owner_id, secret, category, difficulty, max_wrong, max_clues,
		       guesses, wrong_count, clues, status, started_at, COALESCE(ended_at,''), revealed_info
		FROM sessions WHERE id=?`, id)

	var g game.Session
	var category, difficulty, status string
	var guesses, clues, startedAt, endedAt string
	if err := row.Scan(&g.ID, &g.OwnerID, &g.Secret, &category, &difficulty,
		&g.Limits.MaxWrong, &g.Limits.MaxClues,
		&guesses, &g.WrongCount, &clues, &status, &startedAt, &endedAt, &g.RevealedInfo); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, game.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	g.Category = game.Category(category)
	g.Difficulty = game.Difficulty(difficulty)
	g.Status = game.Status(status)
	if err := json.Unmarshal([]byte(guesses), &g.Guesses); err != nil {
		return nil, fmt.Errorf("unmarshal guesses: %w", err)
	}
	if err := json.Unmarshal([]byte(clues), &g.Clues); err != nil {
		return nil, fmt.Errorf("unmarshal clues: %w", err)
	}
	g.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if endedAt != "" {
		g.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
	}
	return &g, nil
}
