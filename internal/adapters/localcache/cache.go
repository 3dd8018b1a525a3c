// Package localcache is the persistent cache adapter: one serialized AppState
// snapshot plus a handful of independent single-value keys, stored in an
// embedded sqlite file. Persistence is best-effort: load failures report
// "absent", save failures are logged and swallowed.
package localcache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/AnthonyM972321/LuxuryBot/internal/adapters/observability"
	"github.com/AnthonyM972321/LuxuryBot/internal/domain"
)

// Fixed keys in the local namespace. The snapshot lives in a single slot;
// the rest are independent flags and opaque credential blobs.
const (
	SnapshotKey   = "luxurybot_state"
	ThemeKey      = "luxurybot_theme"
	FirstVisitKey = "luxurybot_first_visit"
	RememberKey   = "luxurybot_remember"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS kv (
  k TEXT PRIMARY KEY,
  v BLOB NOT NULL
)`

type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open creates or opens the cache file and ensures the kv table exists.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}
	// WAL keeps reads cheap while the single writer serializes saves.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=500"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Load deserializes the last-saved snapshot. Absent and corrupt snapshots both
// report (nil, false): a broken blob must never stop the app from starting
// with a blank state.
func (s *Store) Load() (*domain.AppState, bool) {
	var raw []byte
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, SnapshotKey).Scan(&raw)
	if err == sql.ErrNoRows {
		observability.ObserveCache("localcache", "miss")
		return nil, false
	}
	if err != nil {
		observability.ObserveCache("localcache", "miss")
		s.log.Warn().Err(err).Msg("snapshot read failed")
		return nil, false
	}
	var st domain.AppState
	if err := json.Unmarshal(raw, &st); err != nil {
		observability.ObserveCache("localcache", "corrupt")
		s.log.Warn().Err(err).Msgf("%v, starting blank", domain.ErrCacheCorrupt)
		return nil, false
	}
	observability.ObserveCache("localcache", "hit")
	return &st, true
}

// Save overwrites the snapshot slot with the full serialized state. Errors are
// logged only; the caller's mutation has already succeeded in memory.
func (s *Store) Save(st *domain.AppState) {
	raw, err := json.Marshal(st)
	if err != nil {
		s.log.Error().Err(err).Msg("snapshot marshal failed")
		return
	}
	if err := s.put(SnapshotKey, raw); err != nil {
		s.log.Error().Err(err).Msg("snapshot write failed")
		return
	}
	observability.ObserveCache("localcache", "set")
}

// Get reads one independent flag or credential blob.
func (s *Store) Get(key string) (string, bool) {
	var raw []byte
	err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&raw)
	if err != nil {
		if err != sql.ErrNoRows {
			s.log.Warn().Err(err).Str("key", key).Msg("flag read failed")
		}
		return "", false
	}
	return string(raw), true
}

func (s *Store) Set(key, value string) error {
	return s.put(key, []byte(value))
}

func (s *Store) Del(key string) error {
	_, err := s.db.Exec(`DELETE FROM kv WHERE k = ?`, key)
	return err
}

func (s *Store) put(key string, value []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	return err
}
