// Package storage persists the tracker state as a single value under a fixed key.
//
// The state is read once when a command starts and written back after each
// mutation. A missing or malformed value is never fatal: it is logged and the
// tracker starts from an empty store.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/etnz/holdem"
	"github.com/rs/zerolog"
)

// Key is the name under which the state is stored.
const Key = "holdemTracker.v1"

// ErrEmpty is returned by Backend.Read when nothing has been stored yet.
var ErrEmpty = errors.New("nothing stored")

// Backend stores a single opaque value.
type Backend interface {
	// Read returns the stored value, or ErrEmpty.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the stored value.
	Write(ctx context.Context, data []byte) error
	Close() error
	String() string
}

// Open returns the backend of the given kind ("json", "sqlite" or "memory") at path.
func Open(kind, path string) (Backend, error) {
	switch kind {
	case "json", "":
		return NewFile(path), nil
	case "sqlite":
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "memory":
		return NewMemory(nil), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// Load reads the state from b into a new store.
//
// When nothing is stored, or when the stored value cannot be read or decoded,
// it logs why and returns an empty store: the user is never locked out of
// the tracker by a broken storage.
func Load(ctx context.Context, b Backend, log zerolog.Logger, opts ...holdem.Option) *holdem.Store {
	s := holdem.NewStore(opts...)
	data, err := b.Read(ctx)
	if errors.Is(err, ErrEmpty) {
		log.Debug().Stringer("backend", b).Msg("no stored state, starting empty")
		return s
	}
	if err != nil {
		log.Warn().Err(err).Stringer("backend", b).Msg("cannot read stored state, starting empty")
		return s
	}
	st, err := holdem.DecodeState(data)
	if err != nil {
		log.Warn().Err(err).Stringer("backend", b).Msg("malformed stored state, starting empty")
		return s
	}
	s.Replace(st)
	log.Debug().Stringer("backend", b).
		Int("accounts", s.Count(holdem.KindAccount)).
		Int("sessions", s.Count(holdem.KindSession)).
		Int("hands", s.Count(holdem.KindHand)).
		Int("players", s.Count(holdem.KindPlayer)).
		Msg("state loaded")
	return s
}

// Save writes the whole state of s to b.
func Save(ctx context.Context, b Backend, s *holdem.Store) error {
	data, err := holdem.EncodeState(s)
	if err != nil {
		return err
	}
	if err := b.Write(ctx, data); err != nil {
		return fmt.Errorf("cannot save state to %v: %w", b, err)
	}
	return nil
}
