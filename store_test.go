package holdem

import (
	"errors"
	"slices"
	"testing"
)

func TestUpsert(t *testing.T) {
	s := newTestStore()

	a := s.UpsertAccount(Account{Name: "Wallet", Type: AccountCash, Balance: 1000})
	if a.ID != "id1" {
		t.Fatalf("UpsertAccount() assigned id %q, want %q", a.ID, "id1")
	}
	s.UpsertAccount(Account{Name: "Site", Type: AccountSite, Balance: 50})

	a.Balance = 2000
	s.UpsertAccount(a)

	accounts := s.Accounts()
	if len(accounts) != 2 {
		t.Fatalf("len(Accounts()) = %d, want 2", len(accounts))
	}
	if accounts[0].ID != a.ID || accounts[0].Balance != 2000 {
		t.Errorf("Accounts()[0] = %+v, want the updated account in place", accounts[0])
	}

	// returned collections are copies.
	accounts[0].Balance = 0
	if got, _ := s.Account(a.ID); got.Balance != 2000 {
		t.Errorf("modifying Accounts() result changed the store")
	}
}

func TestDeleteSessionCascades(t *testing.T) {
	s := newTestStore()
	s1 := s.UpsertSession(session("2024-01-05", 0, 10, 1))
	s2 := s.UpsertSession(session("2024-01-06", 0, 10, 1))
	s.UpsertHand(Hand{SessionID: s1.ID, Hole: "AA"})
	kept := s.UpsertHand(Hand{SessionID: s2.ID, Hole: "KK"})
	s.UpsertHand(Hand{SessionID: s1.ID, Hole: "QQ"})
	orphan := s.UpsertHand(Hand{SessionID: "gone", Hole: "JJ"})

	ok, err := s.Delete(KindSession, s1.ID)
	if err != nil || !ok {
		t.Fatalf("Delete(session) = %v, %v, want true, nil", ok, err)
	}

	var ids []string
	for _, h := range s.Hands() {
		ids = append(ids, h.ID)
	}
	if want := []string{kept.ID, orphan.ID}; !slices.Equal(ids, want) {
		t.Errorf("hands after delete = %v, want %v", ids, want)
	}
	if _, ok := s.Session(s1.ID); ok {
		t.Errorf("Session(%q) still exists after delete", s1.ID)
	}
}

func TestDeleteHasNoOtherCascade(t *testing.T) {
	s := newTestStore()
	x := s.UpsertSession(session("2024-01-05", 0, 10, 1))
	h := s.RecordHand(HandInput{SessionID: x.ID, OpponentName: "Alice"})

	if ok, _ := s.Delete(KindPlayer, h.OpponentID); !ok {
		t.Fatalf("Delete(player) = false, want true")
	}
	if got := s.Count(KindHand); got != 1 {
		t.Errorf("Count(hand) = %d after deleting a player, want 1", got)
	}
	// the dangling opponent resolves to nothing.
	if got := s.HandOpponentName(h); got != "" {
		t.Errorf("HandOpponentName() = %q, want empty", got)
	}

	if ok, _ := s.Delete(KindHand, h.ID); !ok {
		t.Fatalf("Delete(hand) = false, want true")
	}
	if got := s.Count(KindSession); got != 1 {
		t.Errorf("Count(session) = %d after deleting a hand, want 1", got)
	}
}

func TestDeleteUnknown(t *testing.T) {
	s := newTestStore()
	if ok, err := s.Delete(KindAccount, "missing"); ok || err != nil {
		t.Errorf("Delete(missing) = %v, %v, want false, nil", ok, err)
	}
	if _, err := s.Delete(Kind(42), "x"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Delete(Kind(42)) error = %v, want %v", err, ErrUnknownKind)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindAccount, KindSession, KindHand, KindPlayer} {
		got, err := ParseKind(k.String() + "s")
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", k.String()+"s", got, err, k)
		}
	}
	if _, err := ParseKind("deck"); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("ParseKind(deck) error = %v, want %v", err, ErrUnknownKind)
	}
}

func TestHandSessionDangling(t *testing.T) {
	s := newTestStore()
	x := s.UpsertSession(Session{Date: "2024-01-05", Location: "Pub", Blinds: "1/2"})
	h := s.UpsertHand(Hand{SessionID: x.ID})

	d, label := s.HandSession(h)
	if d != "2024-01-05" || label != "Pub 1/2" {
		t.Errorf("HandSession() = %q, %q, want %q, %q", d, label, "2024-01-05", "Pub 1/2")
	}
	d, label = s.HandSession(Hand{SessionID: "gone"})
	if d != "" || label != "" {
		t.Errorf("HandSession(dangling) = %q, %q, want empty", d, label)
	}
}

func TestResetAndSample(t *testing.T) {
	s := newTestStore()
	s.AddSampleData()
	if s.Count(KindAccount) != 2 || s.Count(KindSession) != 3 || s.Count(KindHand) != 3 {
		t.Fatalf("AddSampleData() created %d accounts, %d sessions, %d hands, want 2, 3, 3",
			s.Count(KindAccount), s.Count(KindSession), s.Count(KindHand))
	}
	// accounts are only added to an empty store.
	s.AddSampleData()
	if s.Count(KindAccount) != 2 || s.Count(KindSession) != 6 {
		t.Errorf("second AddSampleData() gives %d accounts, %d sessions, want 2, 6",
			s.Count(KindAccount), s.Count(KindSession))
	}
	// sample sessions are the three previous days.
	if got, want := s.Sessions()[0].Date, "2024-01-07"; got != want {
		t.Errorf("first sample session date = %q, want %q", got, want)
	}

	s.SetRisk(Risk{StopLoss: 10})
	s.ToggleHighContrast()
	s.Reset()
	for _, k := range []Kind{KindAccount, KindSession, KindHand, KindPlayer} {
		if n := s.Count(k); n != 0 {
			t.Errorf("Count(%v) = %d after Reset(), want 0", k, n)
		}
	}
	if s.Risk() != (Risk{}) || s.UI() != (UI{}) {
		t.Errorf("Reset() kept settings %+v %+v", s.Risk(), s.UI())
	}
}
