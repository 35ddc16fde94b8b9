// Package store keeps converged tilings in a SQLite catalogue so a render of
// the same configuration and bounds does not have to grow the tiling again.
package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/jbeda/geom"
	_ "modernc.org/sqlite"

	"penrose-tiling/internal/render"
	"penrose-tiling/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS tilings (
	key        TEXT PRIMARY KEY,
	preset     TEXT NOT NULL,
	min_x      REAL NOT NULL,
	min_y      REAL NOT NULL,
	max_x      REAL NOT NULL,
	max_y      REAL NOT NULL,
	iterations INTEGER NOT NULL,
	tiles      TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Record is one stored tiling.
type Record struct {
	Key        string
	Preset     string
	Bounds     geom.Rect
	Iterations int
	Tiles      []render.Tile
	CreatedAt  time.Time
}

type Store struct {
	db *sql.DB
}

// Key identifies the tiling of preset over bounds.
func Key(preset string, bounds geom.Rect) string {
	data, _ := json.Marshal([]any{preset, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Open opens or creates the catalogue at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "open %s", path)
	}
	// SQLite serialises writers; one connection avoids busy errors.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, errors.Wrap(errors.ErrCodeStore, err, "create schema in %s", path)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores r under its key, replacing any earlier tiling. An empty key is
// derived from the preset and bounds.
func (s *Store) Save(ctx context.Context, r Record) (string, error) {
	if r.Key == "" {
		r.Key = Key(r.Preset, r.Bounds)
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	tiles, err := json.Marshal(r.Tiles)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "encode tiles")
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO tilings
			(key, preset, min_x, min_y, max_x, max_y, iterations, tiles, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Key, r.Preset,
		r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X, r.Bounds.Max.Y,
		r.Iterations, string(tiles), r.CreatedAt.UnixNano())
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeStore, err, "save %s", r.Key)
	}
	return r.Key, nil
}

// Load returns the tiling stored under key. The boolean is false when there
// is none.
func (s *Store) Load(ctx context.Context, key string) (Record, bool, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, preset, min_x, min_y, max_x, max_y, iterations, tiles, created_at
		FROM tilings WHERE key = ?`, key)

	r, tiles, err := scan(row)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, errors.Wrap(errors.ErrCodeStore, err, "load %s", key)
	}
	if err := json.Unmarshal([]byte(tiles), &r.Tiles); err != nil {
		return Record{}, false, errors.Wrap(errors.ErrCodeStore, err, "decode tiles of %s", key)
	}
	return r, true, nil
}

// List returns every stored tiling without its tiles, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, preset, min_x, min_y, max_x, max_y, iterations, '', created_at
		FROM tilings ORDER BY created_at DESC, key`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list tilings")
	}
	defer rows.Close()

	var r []Record
	for rows.Next() {
		rec, _, err := scan(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStore, err, "list tilings")
		}
		r = append(r, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeStore, err, "list tilings")
	}
	return r, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (Record, string, error) {
	var (
		r       Record
		tiles   string
		created int64
	)
	err := row.Scan(&r.Key, &r.Preset,
		&r.Bounds.Min.X, &r.Bounds.Min.Y, &r.Bounds.Max.X, &r.Bounds.Max.Y,
		&r.Iterations, &tiles, &created)
	if err != nil {
		return Record{}, "", err
	}
	r.CreatedAt = time.Unix(0, created)
	return r, tiles, nil
}
