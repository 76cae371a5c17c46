// Package store defines the persistence adapter for the user-created
// meetings collection. There is exactly one code path for decoding the
// slot and one for change propagation; every consumer goes through this
// interface rather than reading storage ad hoc.
package store

import (
	"context"

	"github.com/clovehq/momtrack/internal/model"
)

// Store owns the on-disk representation of the persisted collection.
// Implementations live under internal/store/<driver>/.
type Store interface {
	// Load returns the raw persisted records. It fails soft: a missing
	// slot, an undecodable value, or a non-array decoded value yields an
	// empty sequence, never an error. Errors are reserved for I/O
	// failures on the underlying storage.
	Load(ctx context.Context) ([]model.RawMeeting, error)

	// Upsert inserts or replaces the record with the given identifier,
	// rewriting the whole persisted collection atomically, then
	// broadcasts a change notification. The record replaces any previous
	// version wholesale; fields are never merged. A record without an
	// identifier is rejected with model.ErrValidation.
	Upsert(ctx context.Context, rec model.RawMeeting) error

	// Subscribe registers a no-payload change callback and returns its
	// unsubscribe function. Notifications fan in from both in-process
	// writes and out-of-process writes observed on the storage file.
	Subscribe(fn func()) func()

	Close() error
}
