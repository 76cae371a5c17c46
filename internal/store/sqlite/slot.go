// Package sqlite implements store.Store over a single-slot key/value
// table: the whole persisted meetings collection lives in one row as a
// JSON array, rewritten wholesale on every upsert. A concurrent read
// therefore sees either the old or the new complete collection, never a
// partial one.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/clovehq/momtrack/internal/events"
	"github.com/clovehq/momtrack/internal/model"
	"github.com/clovehq/momtrack/internal/store"
)

// slotKey is fixed so data written by earlier releases keeps decoding.
const slotKey = "clove_meetings_v1"

const schema = `CREATE TABLE IF NOT EXISTS Slots (
    SlotKey TEXT PRIMARY KEY,
    Value TEXT NOT NULL,
    UpdateTime TIMESTAMP NOT NULL
);`

// SlotStore is the sqlite-backed persistence adapter.
type SlotStore struct {
	db      *sql.DB
	bus     *events.Bus
	watcher *watcher
}

var _ store.Store = (*SlotStore)(nil)

// NewSlotStore opens (or creates) the database at path, ensures the slot
// schema, and starts the cross-process file watcher.
func NewSlotStore(path string) (*SlotStore, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	s, err := NewSlotStoreWithDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	w, err := newWatcher(path, s.bus)
	if err != nil {
		// Cross-process notification is an enhancement; in-process
		// subscribers still work without it.
		log.Warn().Err(err).Str("path", path).Msg("slot file watcher unavailable")
	} else {
		s.watcher = w
	}
	return s, nil
}

// NewSlotStoreWithDB wires the store onto an existing connection (used by
// tests).
func NewSlotStoreWithDB(db *sql.DB) (*SlotStore, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("ensure slot schema: %w", err)
	}
	return &SlotStore{db: db, bus: events.NewBus()}, nil
}

// Load reads and decodes the slot. Decode problems are absorbed: a
// missing row, a non-JSON value, or a non-array value all yield an empty
// collection, and individual undecodable entries are skipped.
func (s *SlotStore) Load(ctx context.Context) ([]model.RawMeeting, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT Value FROM Slots WHERE SlotKey = ?`, slotKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.RawMeeting{}, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSlot([]byte(value)), nil
}

// Upsert replaces the entry with rec's identifier (or appends it) and
// rewrites the slot in a single statement, then broadcasts the change.
// The new record replaces the old one wholesale.
func (s *SlotStore) Upsert(ctx context.Context, rec model.RawMeeting) error {
	if rec.ID == "" {
		return fmt.Errorf("%w: meeting id is required", model.ErrValidation)
	}

	current, err := s.Load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range current {
		if current[i].ID == rec.ID {
			current[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		current = append(current, rec)
	}

	value, err := json.Marshal(current)
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO Slots (SlotKey, Value, UpdateTime) VALUES (?,?,?)
         ON CONFLICT(SlotKey) DO UPDATE SET Value = excluded.Value, UpdateTime = excluded.UpdateTime`,
		slotKey, string(value), time.Now().UTC())
	if err != nil {
		return err
	}

	s.bus.Publish()
	return nil
}

// Subscribe registers a change callback; notifications fan in from
// in-process upserts and from the file watcher.
func (s *SlotStore) Subscribe(fn func()) func() {
	return s.bus.Subscribe(fn)
}

// Close stops the watcher and closes the database.
func (s *SlotStore) Close() error {
	if s.watcher != nil {
		s.watcher.stop()
	}
	return s.db.Close()
}

// decodeSlot applies the fail-soft rules for the slot value.
func decodeSlot(value []byte) []model.RawMeeting {
	var entries []json.RawMessage
	if err := json.Unmarshal(value, &entries); err != nil {
		log.Warn().Err(err).Msg("slot value is not a JSON array, treating as empty")
		return []model.RawMeeting{}
	}
	out := make([]model.RawMeeting, 0, len(entries))
	for i, e := range entries {
		var rec model.RawMeeting
		if err := json.Unmarshal(e, &rec); err != nil {
			log.Warn().Err(err).Int("index", i).Msg("skipping undecodable slot entry")
			continue
		}
		out = append(out, rec)
	}
	return out
}
