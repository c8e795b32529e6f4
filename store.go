package holdem

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrUnknownKind is returned for an entity kind the store does not hold.
	ErrUnknownKind = errors.New("unknown record kind")
	// ErrNotFound is returned when editing a record that does not exist.
	ErrNotFound = errors.New("record not found")
)

// Store owns every record of the tracker.
//
// Collections keep insertion order, readers sort as they need. Foreign keys
// (Hand.SessionID, Hand.OpponentID) are plain lookups and may dangle.
//
// A Store is not safe for concurrent use: it is mutated by a single thread of
// control, and every mutation completes before derived values are recomputed.
type Store struct {
	accounts  []Account
	sessions  []Session
	hands     []Hand
	players   []Player
	ui        UI
	risk      Risk
	createdAt int64

	now   func() time.Time
	newID func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to stamp records.
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }

// WithIDGenerator sets the generator of record ids. It must not repeat itself.
func WithIDGenerator(newID func() string) Option { return func(s *Store) { s.newID = newID } }

// NewStore creates an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.createdAt = s.millis()
	return s
}

// millis returns the current time in unix milliseconds.
func (s *Store) millis() int64 { return s.now().UnixMilli() }

// NewID returns a fresh record id.
func (s *Store) NewID() string { return s.newID() }

// Accounts returns a copy of all accounts in insertion order.
func (s *Store) Accounts() []Account { return slices.Clone(s.accounts) }

// Sessions returns a copy of all sessions in insertion order.
func (s *Store) Sessions() []Session { return slices.Clone(s.sessions) }

// Hands returns a copy of all hands in insertion order.
func (s *Store) Hands() []Hand { return slices.Clone(s.hands) }

// Players returns a copy of all players in insertion order.
func (s *Store) Players() []Player { return slices.Clone(s.players) }

// Count returns the number of records of kind k.
func (s *Store) Count(k Kind) int {
	switch k {
	case KindAccount:
		return len(s.accounts)
	case KindSession:
		return len(s.sessions)
	case KindHand:
		return len(s.hands)
	case KindPlayer:
		return len(s.players)
	}
	return 0
}

func (s *Store) Risk() Risk       { return s.risk }
func (s *Store) SetRisk(r Risk)   { s.risk = r }
func (s *Store) UI() UI           { return s.ui }
func (s *Store) SetUI(ui UI)      { s.ui = ui }
func (s *Store) CreatedAt() int64 { return s.createdAt }

// ToggleHighContrast flips the high contrast display flag and returns its new value.
func (s *Store) ToggleHighContrast() bool {
	s.ui.HighContrast = !s.ui.HighContrast
	return s.ui.HighContrast
}

// upsert replaces the record with the same id, or appends it.
func upsert[T any](list []T, rec T, id func(T) string) []T {
	key := id(rec)
	i := slices.IndexFunc(list, func(x T) bool { return id(x) == key })
	if i < 0 {
		return append(list, rec)
	}
	list[i] = rec
	return list
}

func accountID(a Account) string { return a.ID }
func sessionID(x Session) string { return x.ID }
func handID(h Hand) string       { return h.ID }
func playerID(p Player) string   { return p.ID }

// UpsertAccount stores a, assigning an id if it has none, and returns it.
func (s *Store) UpsertAccount(a Account) Account {
	if a.ID == "" {
		a.ID = s.newID()
	}
	s.accounts = upsert(s.accounts, a, accountID)
	return a
}

// UpsertSession stores x, assigning an id if it has none, and returns it.
func (s *Store) UpsertSession(x Session) Session {
	if x.ID == "" {
		x.ID = s.newID()
	}
	s.sessions = upsert(s.sessions, x, sessionID)
	return x
}

// UpsertHand stores h as is, assigning an id if it has none, and returns it.
// Use RecordHand to also maintain the opponent's counters.
func (s *Store) UpsertHand(h Hand) Hand {
	if h.ID == "" {
		h.ID = s.newID()
	}
	s.hands = upsert(s.hands, h, handID)
	return h
}

// UpsertPlayer stores p as is, assigning an id if it has none, and returns it.
// It does not enforce name uniqueness, see SavePlayer and ResolveOrCreate.
func (s *Store) UpsertPlayer(p Player) Player {
	if p.ID == "" {
		p.ID = s.newID()
	}
	s.players = upsert(s.players, p, playerID)
	return p
}

// Delete removes the record of kind k with the given id and reports whether
// something was removed. Deleting a session also deletes its hands.
func (s *Store) Delete(k Kind, id string) (bool, error) {
	var n int
	switch k {
	case KindAccount:
		n = len(s.accounts)
		s.accounts = slices.DeleteFunc(s.accounts, func(a Account) bool { return a.ID == id })
		return n != len(s.accounts), nil
	case KindSession:
		n = len(s.sessions)
		s.sessions = slices.DeleteFunc(s.sessions, func(x Session) bool { return x.ID == id })
		if n == len(s.sessions) {
			return false, nil
		}
		s.hands = slices.DeleteFunc(s.hands, func(h Hand) bool { return h.SessionID == id })
		return true, nil
	case KindHand:
		n = len(s.hands)
		s.hands = slices.DeleteFunc(s.hands, func(h Hand) bool { return h.ID == id })
		return n != len(s.hands), nil
	case KindPlayer:
		n = len(s.players)
		s.players = slices.DeleteFunc(s.players, func(p Player) bool { return p.ID == id })
		return n != len(s.players), nil
	default:
		return false, ErrUnknownKind
	}
}

func find[T any](list []T, id string, key func(T) string) (T, bool) {
	for _, x := range list {
		if key(x) == id {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Account returns the account with the given id.
func (s *Store) Account(id string) (Account, bool) { return find(s.accounts, id, accountID) }

// Session returns the session with the given id.
func (s *Store) Session(id string) (Session, bool) { return find(s.sessions, id, sessionID) }

// Hand returns the hand with the given id.
func (s *Store) Hand(id string) (Hand, bool) { return find(s.hands, id, handID) }

// Player returns the player with the given id.
func (s *Store) Player(id string) (Player, bool) { return find(s.players, id, playerID) }

// HandSession returns the date and the "location blinds" label of the hand's session,
// or empty strings when the session no longer exists.
func (s *Store) HandSession(h Hand) (date, label string) {
	x, ok := s.Session(h.SessionID)
	if !ok {
		return "", ""
	}
	return x.Date, x.Location + " " + x.Blinds
}

// HandOpponentName returns the name of the hand's opponent, or "" when unknown.
func (s *Store) HandOpponentName(h Hand) string {
	if h.OpponentID == "" {
		return ""
	}
	p, ok := s.Player(h.OpponentID)
	if !ok {
		return ""
	}
	return p.Name
}

// Reset drops every record and restores default settings.
func (s *Store) Reset() {
	s.accounts, s.sessions, s.hands, s.players = nil, nil, nil, nil
	s.ui, s.risk = UI{}, Risk{}
	s.createdAt = s.millis()
}
