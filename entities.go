package holdem

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind names one of the entity collections held by a Store.
type Kind int

const (
	KindAccount Kind = iota
	KindSession
	KindHand
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindAccount:
		return "account"
	case KindSession:
		return "session"
	case KindHand:
		return "hand"
	case KindPlayer:
		return "player"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind parses a kind name, singular or plural.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "account", "accounts":
		return KindAccount, nil
	case "session", "sessions":
		return KindSession, nil
	case "hand", "hands":
		return KindHand, nil
	case "player", "players":
		return KindPlayer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// AccountType is either a cash wallet or a poker site balance.
type AccountType string

const (
	AccountCash AccountType = "cash"
	AccountSite AccountType = "site"
)

// Account is a place where the bankroll is kept.
type Account struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Type    AccountType `json:"type"`
	Balance Amount      `json:"balance"`
}

// Session is a single sitting at a table.
//
// Date is kept as recorded ("2024-01-05"); an empty date is allowed.
type Session struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Location string `json:"location"`
	GameType string `json:"gameType"`
	Blinds   string `json:"blinds"`
	BuyIn    Amount `json:"buyIn"`
	CashOut  Amount `json:"cashOut"`
	Hours    Hours  `json:"hours"`
	Notes    string `json:"notes"`
}

// Profit is the net result of the session, CashOut - BuyIn.
func (s Session) Profit() Amount { return s.CashOut - s.BuyIn }

// Hand is a notable hand played during a session.
type Hand struct {
	ID         string `json:"id"`
	SessionID  string `json:"sessionId"`
	Hole       string `json:"hole"`
	Position   string `json:"position"`
	Line       string `json:"line"`
	Pot        Amount `json:"pot"`
	Result     Amount `json:"result"`
	Tags       string `json:"tags"`
	Notes      string `json:"notes"`
	OpponentID string `json:"opponentId"` // empty when there is no known opponent
	CreatedAt  int64  `json:"createdAt"`  // unix milliseconds
}

// UnmarshalJSON also accepts the legacy "pos" and "opp" property names.
func (h *Hand) UnmarshalJSON(data []byte) error {
	type plain Hand
	var j struct {
		plain
		Pos        *string `json:"pos"`
		Opp        *string `json:"opp"`
		OpponentID *string `json:"opponentId"`
	}
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	*h = Hand(j.plain)
	if h.Position == "" && j.Pos != nil {
		h.Position = *j.Pos
	}
	switch {
	case j.OpponentID != nil:
		h.OpponentID = *j.OpponentID
	case j.Opp != nil:
		h.OpponentID = *j.Opp
	}
	return nil
}

// MarshalJSON writes a null opponentId when the hand has no opponent.
func (h Hand) MarshalJSON() ([]byte, error) {
	type plain Hand
	var opp *string
	if h.OpponentID != "" {
		opp = &h.OpponentID
	}
	return json.Marshal(struct {
		plain
		OpponentID *string `json:"opponentId"`
	}{plain(h), opp})
}

// TagList splits the comma separated tags, trimming and dropping empty ones.
func (h Hand) TagList() []string {
	return splitTags(h.Tags)
}

func splitTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// DefaultPlayerColor is the badge color of players created without one.
const DefaultPlayerColor = "#3a6ff8"

// Player is an opponent met at the tables.
//
// HandCount and LastSeen are maintained when hands are recorded, see Store.RecordHand.
type Player struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Site      string `json:"site"`
	Tags      string `json:"tags"`
	Notes     string `json:"notes"`
	Color     string `json:"color"`
	CreatedAt int64  `json:"createdAt"`
	LastSeen  int64  `json:"lastSeen"`
	HandCount int    `json:"handCount"`
}

// Risk holds the loss thresholds. A zero threshold is disabled.
type Risk struct {
	StopLoss  Amount `json:"stopLoss"`
	DailyLoss Amount `json:"dailyLoss"`
}

// UI holds display preferences.
type UI struct {
	HighContrast bool `json:"hc"`
}
