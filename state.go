package holdem

import (
	"encoding/json"
	"fmt"
	"slices"
)

// State is the persisted form of a Store: a single JSON object.
type State struct {
	Accounts  []Account `json:"accounts"`
	Sessions  []Session `json:"sessions"`
	Hands     []Hand    `json:"hands"`
	Players   []Player  `json:"players"`
	UI        UI        `json:"ui"`
	Risk      Risk      `json:"risk"`
	CreatedAt int64     `json:"createdAt"` // unix milliseconds
}

// DecodeState parses a persisted state. Missing properties take their
// default value, there is no stricter schema validation.
func DecodeState(data []byte) (*State, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("cannot decode state: %w", err)
	}
	st.normalize()
	return &st, nil
}

// normalize replaces nil collections by empty ones so that they encode as [].
func (st *State) normalize() {
	if st.Accounts == nil {
		st.Accounts = []Account{}
	}
	if st.Sessions == nil {
		st.Sessions = []Session{}
	}
	if st.Hands == nil {
		st.Hands = []Hand{}
	}
	if st.Players == nil {
		st.Players = []Player{}
	}
}

// Snapshot returns the current state of the store. It shares nothing with the store.
func (s *Store) Snapshot() *State {
	st := &State{
		Accounts:  slices.Clone(s.accounts),
		Sessions:  slices.Clone(s.sessions),
		Hands:     slices.Clone(s.hands),
		Players:   slices.Clone(s.players),
		UI:        s.ui,
		Risk:      s.risk,
		CreatedAt: s.createdAt,
	}
	st.normalize()
	return st
}

// Replace swaps all the store content for st. A state without creation time
// is stamped with the current time.
func (s *Store) Replace(st *State) {
	s.accounts = slices.Clone(st.Accounts)
	s.sessions = slices.Clone(st.Sessions)
	s.hands = slices.Clone(st.Hands)
	s.players = slices.Clone(st.Players)
	s.ui = st.UI
	s.risk = st.Risk
	s.createdAt = st.CreatedAt
	if s.createdAt == 0 {
		s.createdAt = s.millis()
	}
}

// EncodeState returns the compact JSON form of the store.
func EncodeState(s *Store) ([]byte, error) {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("cannot encode state: %w", err)
	}
	return data, nil
}
