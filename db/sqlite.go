package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/glebarez/go-sqlite"
	"github.com/itbasis/go-clock"
	"github.com/mww/card_binder/model"
)

var (
	ErrPlayerNotFound   error = errors.New("player not found")
	ErrTemplateNotFound error = errors.New("template not found")
	ErrBinderNotFound   error = errors.New("binder not found")
	ErrTeamNotFound     error = errors.New("team not found")
	ErrRookiePageLimit  error = errors.New("rookie page limit (32) reached")
)

// New opens (or creates) the database file at path and brings its schema up to
// date before returning. The connection pool is capped at a single connection
// so every statement serializes through one writer.
func New(ctx context.Context, path string, clock clock.Clock) (DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	db := &sqliteDB{conn: conn, clock: clock}
	if err := db.migrate(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}
	return db, nil
}

type sqliteDB struct {
	conn  *sql.DB
	clock clock.Clock
}

func (db *sqliteDB) Close() error {
	return db.conn.Close()
}

func (db *sqliteDB) GetStats(ctx context.Context) (*model.Stats, error) {
	s := &model.Stats{}
	counts := []struct {
		query string
		dest  *int
	}{
		{"SELECT COUNT(1) FROM players", &s.Players},
		{"SELECT COUNT(1) FROM templates", &s.Templates},
		{"SELECT COUNT(1) FROM binderPages", &s.BinderPages},
	}
	for _, c := range counts {
		if err := db.conn.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// toJSON serializes the embedded JSON columns (colleges, statLines, slots,
// values). A nil input serializes as an empty array/object rather than null.
func toJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func fromJSON(data string, v any) error {
	if data == "" {
		return nil
	}
	return json.Unmarshal([]byte(data), v)
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
