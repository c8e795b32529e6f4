package holdem

import (
	"github.com/etnz/holdem/date"
)

// AddSampleData fills the store with a few records to try the tracker out:
// two accounts when there are none, three sessions on the three previous
// days, and one hand per session.
func (s *Store) AddSampleData() {
	if len(s.accounts) == 0 {
		s.UpsertAccount(Account{Name: "Wallet", Type: AccountCash, Balance: 1000000})
		s.UpsertAccount(Account{Name: "Poker room A", Type: AccountSite, Balance: 300000})
	}
	today := date.Of(s.now())
	s1 := s.UpsertSession(Session{
		Date: today.Add(-3).String(), Location: "Incheon pub", GameType: "cash", Blinds: "1/2",
		BuyIn: 200000, CashOut: 350000, Hours: H(4.5), Notes: "value against short stacks",
	})
	s2 := s.UpsertSession(Session{
		Date: today.Add(-2).String(), Location: "Seoul card room", GameType: "cash", Blinds: "2/5",
		BuyIn: 500000, CashOut: 300000, Hours: H(5), Notes: "too many flop calls",
	})
	s3 := s.UpsertSession(Session{
		Date: today.Add(-1).String(), Location: "Incheon pub", GameType: "cash", Blinds: "1/2",
		BuyIn: 200000, CashOut: 260000, Hours: H(3), Notes: "bluff frequency adjusted",
	})
	now := s.millis()
	s.UpsertHand(Hand{SessionID: s1.ID, Hole: "As Ks", Position: "BTN", Line: "3bet pot, flop cbet",
		Pot: 120000, Result: 80000, Tags: "value bet thin", Notes: "called down", CreatedAt: now})
	s.UpsertHand(Hand{SessionID: s2.ID, Hole: "Qh Qd", Position: "SB", Line: "multiway, board high",
		Pot: 200000, Result: -150000, Tags: "overplay TPTK", Notes: "overrated the board", CreatedAt: now})
	s.UpsertHand(Hand{SessionID: s3.ID, Hole: "9c 8c", Position: "CO", Line: "SRP, turn semi-bluff jam",
		Pot: 90000, Result: 60000, Tags: "good bluff spot", Notes: "villain folded", CreatedAt: now})
}
