package theme

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ziadkadry99/webstarter/internal/db"
)

// ErrUnknownTheme is returned when storing a key that names no theme.
var ErrUnknownTheme = errors.New("unknown theme")

// Store persists each visitor's chosen theme key.
type Store struct {
	db *db.DB
}

// NewStore creates a new preference store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Get returns the stored key for visitor, or "" when there is none.
func (s *Store) Get(ctx context.Context, visitorID string) (string, error) {
	var key string
	err := s.db.QueryRowContext(ctx,
		`SELECT theme FROM theme_preferences WHERE visitor_id = ?`, visitorID,
	).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("getting theme preference: %w", err)
	}
	return key, nil
}

// Preferred resolves the visitor's stored key to a theme, falling back to the
// default theme. saved reports whether a valid preference was found.
func (s *Store) Preferred(ctx context.Context, visitorID string) (t Theme, saved bool, err error) {
	if visitorID == "" {
		return Resolve(""), false, nil
	}
	key, err := s.Get(ctx, visitorID)
	if err != nil {
		return Resolve(""), false, err
	}
	t, saved = Lookup(key)
	if !saved {
		return Resolve(""), false, nil
	}
	return t, true, nil
}

// Set stores key for visitor. Unknown keys are rejected.
func (s *Store) Set(ctx context.Context, visitorID, key string) error {
	if _, ok := Lookup(key); !ok {
		return fmt.Errorf("%w %q", ErrUnknownTheme, key)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO theme_preferences (visitor_id, theme, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(visitor_id) DO UPDATE SET theme = excluded.theme, updated_at = excluded.updated_at`,
		visitorID, key, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving theme preference: %w", err)
	}
	return nil
}
