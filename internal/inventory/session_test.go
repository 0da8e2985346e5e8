package inventory

import (
	"errors"
	"testing"
)

// memorySessions is a recording SessionStore for tests.
type memorySessions struct {
	userID string
	saves  int
}

func (m *memorySessions) Save(userID string) error {
	m.userID = userID
	m.saves++
	return nil
}

func (m *memorySessions) Load() (string, error) { return m.userID, nil }

func (m *memorySessions) Clear() error {
	m.userID = ""
	return nil
}

func TestLoginLogout(t *testing.T) {
	sessions := &memorySessions{}
	s := NewService(SeedFixtures(), nil, sessions)

	user, err := s.Login("USR002")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Name != "Dan Distributor" {
		t.Errorf("unexpected user %+v", user)
	}
	if current := s.CurrentUser(); current == nil || current.ID != "USR002" {
		t.Errorf("current user not set: %+v", current)
	}
	if sessions.userID != "USR002" {
		t.Errorf("session not persisted: %q", sessions.userID)
	}

	if err := s.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.CurrentUser() != nil {
		t.Error("current user survived logout")
	}
	if sessions.userID != "" {
		t.Errorf("persisted session survived logout: %q", sessions.userID)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	sessions := &memorySessions{}
	s := NewService(SeedFixtures(), nil, sessions)

	_, err := s.Login("USR999")
	if !errors.Is(err, ErrUnknownUser) {
		t.Fatalf("expected ErrUnknownUser, got %v", err)
	}
	if s.CurrentUser() != nil {
		t.Error("current user set after failed login")
	}
	if sessions.saves != 0 {
		t.Errorf("failed login persisted a record (%d saves)", sessions.saves)
	}
}

func TestRestoreSession(t *testing.T) {
	sessions := &memorySessions{userID: "USR001"}
	s := NewService(SeedFixtures(), nil, sessions)

	if err := s.RestoreSession(); err != nil {
		t.Fatalf("RestoreSession: %v", err)
	}
	if current := s.CurrentUser(); current == nil || current.ID != "USR001" {
		t.Errorf("session not restored: %+v", current)
	}
}

func TestRestoreSessionDiscardsUnknownID(t *testing.T) {
	sessions := &memorySessions{userID: "USR999"}
	s := NewService(SeedFixtures(), nil, sessions)

	if err := s.RestoreSession(); err != nil {
		t.Fatalf("RestoreSession: %v", err)
	}
	if s.CurrentUser() != nil {
		t.Error("unknown persisted id restored a session")
	}
	if sessions.userID != "" {
		t.Errorf("stale record not cleared: %q", sessions.userID)
	}
}

func TestRequesterDefaultsToCurrentUser(t *testing.T) {
	s := NewService(SeedFixtures(), nil, nil)

	// Without a session the fallback label is used.
	id, err := s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00001",
		FromLocation: "MAIN_WAREHOUSE",
		ToLocation:   "STORE_001",
	})
	if err != nil {
		t.Fatalf("CreateTransferRequest: %v", err)
	}
	if got := s.TransferRequestByID(id).RequestedBy; got != "System" {
		t.Errorf("expected System requester, got %q", got)
	}

	if _, err := s.Login("USR002"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	id, err = s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00002",
		FromLocation: "MAIN_WAREHOUSE",
		ToLocation:   "STORE_002",
	})
	if err != nil {
		t.Fatalf("CreateTransferRequest: %v", err)
	}
	if got := s.TransferRequestByID(id).RequestedBy; got != "Dan Distributor" {
		t.Errorf("expected current user as requester, got %q", got)
	}
}
