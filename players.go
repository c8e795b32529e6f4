package holdem

import (
	"cmp"
	"errors"
	"slices"
	"strings"
)

// ErrMissingName is returned when a player is saved without a name.
var ErrMissingName = errors.New("player name is required")

// normalizeName is the identity of a player name: trimmed and case folded.
func normalizeName(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// FindPlayerByName returns the player whose name matches, ignoring case and surrounding spaces.
func (s *Store) FindPlayerByName(name string) (Player, bool) {
	i := s.playerIndexByName(name)
	if i < 0 {
		return Player{}, false
	}
	return s.players[i], true
}

func (s *Store) playerIndexByName(name string) int {
	n := normalizeName(name)
	if n == "" {
		return -1
	}
	return slices.IndexFunc(s.players, func(p Player) bool { return normalizeName(p.Name) == n })
}

// ResolveOrCreate returns the player named name, creating it with default
// styling and zeroed counters when there is none. The existing player is
// returned untouched.
//
// A blank name resolves to no player: ok is false and nothing is created.
func (s *Store) ResolveOrCreate(name string) (p Player, ok bool) {
	if strings.TrimSpace(name) == "" {
		return Player{}, false
	}
	if p, ok := s.FindPlayerByName(name); ok {
		return p, true
	}
	now := s.millis()
	p = Player{
		ID:        s.newID(),
		Name:      strings.TrimSpace(name),
		Color:     DefaultPlayerColor,
		CreatedAt: now,
		LastSeen:  now,
	}
	s.players = append(s.players, p)
	return p, true
}

// PlayerInput is the editable part of a player.
type PlayerInput struct {
	ID    string // edit this player when set
	Name  string
	Site  string
	Tags  string
	Color string
	Notes string
}

func (in PlayerInput) applyTo(p *Player) {
	p.Name = strings.TrimSpace(in.Name)
	p.Site = strings.TrimSpace(in.Site)
	p.Tags = strings.TrimSpace(in.Tags)
	p.Notes = strings.TrimSpace(in.Notes)
	p.Color = in.Color
	if p.Color == "" {
		p.Color = DefaultPlayerColor
	}
}

// SavePlayer creates or edits a player.
//
// With an ID it edits that player. Without, it updates the player with the
// same normalized name if any, or creates a new one with zeroed counters.
func (s *Store) SavePlayer(in PlayerInput) (Player, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Player{}, ErrMissingName
	}
	i := -1
	if in.ID != "" {
		i = slices.IndexFunc(s.players, func(p Player) bool { return p.ID == in.ID })
		if i < 0 {
			return Player{}, ErrNotFound
		}
	} else {
		i = s.playerIndexByName(in.Name)
	}
	if i >= 0 {
		in.applyTo(&s.players[i])
		return s.players[i], nil
	}
	now := s.millis()
	p := Player{ID: s.newID(), CreatedAt: now, LastSeen: now}
	in.applyTo(&p)
	s.players = append(s.players, p)
	return p, nil
}

// HandInput is a hand as entered, with the opponent given by name.
type HandInput struct {
	SessionID    string
	Hole         string
	Position     string
	Line         string
	Pot          Amount
	Result       Amount
	Tags         string
	Notes        string
	OpponentName string
}

// RecordHand stores a new hand.
//
// The opponent is resolved by name (and created if needed); its HandCount is
// incremented and LastSeen set to now. These counters are not reverted when
// hands are deleted, RecountPlayers reconciles them.
func (s *Store) RecordHand(in HandInput) Hand {
	now := s.millis()
	h := Hand{
		ID:        s.newID(),
		SessionID: in.SessionID,
		Hole:      strings.TrimSpace(in.Hole),
		Position:  strings.TrimSpace(in.Position),
		Line:      strings.TrimSpace(in.Line),
		Pot:       in.Pot,
		Result:    in.Result,
		Tags:      strings.TrimSpace(in.Tags),
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: now,
	}
	if p, ok := s.ResolveOrCreate(in.OpponentName); ok {
		i := slices.IndexFunc(s.players, func(x Player) bool { return x.ID == p.ID })
		s.players[i].LastSeen = now
		s.players[i].HandCount++
		h.OpponentID = p.ID
	}
	s.hands = append(s.hands, h)
	return h
}

// RecountPlayers recomputes every player's HandCount and LastSeen from the
// hands that reference it, and returns how many players were corrected.
// A player without hands was last seen when created.
func (s *Store) RecountPlayers() int {
	counts := make(map[string]int, len(s.players))
	seen := make(map[string]int64, len(s.players))
	for _, h := range s.hands {
		if h.OpponentID == "" {
			continue
		}
		counts[h.OpponentID]++
		seen[h.OpponentID] = max(seen[h.OpponentID], h.CreatedAt)
	}
	fixed := 0
	for i := range s.players {
		p := &s.players[i]
		last, ok := seen[p.ID]
		if !ok {
			last = p.CreatedAt
		}
		if counts[p.ID] != p.HandCount || last != p.LastSeen {
			p.HandCount, p.LastSeen = counts[p.ID], last
			fixed++
		}
	}
	return fixed
}

// SearchPlayers returns the players whose name, site, tags or notes contain
// query (case insensitive), most recently seen first.
func (s *Store) SearchPlayers(query string) []Player {
	q := strings.ToLower(strings.TrimSpace(query))
	var res []Player
	for _, p := range s.players {
		hay := strings.ToLower(strings.Join([]string{p.Name, p.Site, p.Tags, p.Notes}, " "))
		if q != "" && !strings.Contains(hay, q) {
			continue
		}
		res = append(res, p)
	}
	slices.SortStableFunc(res, func(a, b Player) int { return cmp.Compare(b.LastSeen, a.LastSeen) })
	return res
}

// PlayerNames returns all player names sorted alphabetically.
func (s *Store) PlayerNames() []string {
	names := make([]string, 0, len(s.players))
	for _, p := range s.players {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	return names
}
