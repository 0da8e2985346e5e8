package inventory

import (
	"fmt"

	"github.com/prajjwalps/laptrack/internal/model"
)

// Users returns the fixed user roster.
func (s *Service) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...)
}

// UserByID returns a roster user by id, or nil.
func (s *Service) UserByID(id string) *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userByIDLocked(id)
}

func (s *Service) userByIDLocked(id string) *model.User {
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// Login sets the current session to the roster user with the given id
// and persists the session record. Unknown ids fail and persist nothing.
func (s *Service) Login(userID string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.userByIDLocked(userID)
	if user == nil {
		s.announce("Login Failed", fmt.Sprintf("No user with id %s.", userID), model.SeverityError)
		return nil, fmt.Errorf("logging in %s: %w", userID, ErrUnknownUser)
	}

	if s.sessions != nil {
		if err := s.sessions.Save(user.ID); err != nil {
			return nil, fmt.Errorf("persisting session for %s: %w", userID, err)
		}
	}

	s.current = user
	s.announce("Logged In", fmt.Sprintf("Welcome back, %s.", user.Name), model.SeveritySuccess)
	return user, nil
}

// Logout clears the current session and its persisted record. Logging
// out without a session is a no-op.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}

	if s.sessions != nil {
		if err := s.sessions.Clear(); err != nil {
			return fmt.Errorf("clearing persisted session: %w", err)
		}
	}

	name := s.current.Name
	s.current = nil
	s.announce("Logged Out", fmt.Sprintf("%s signed out.", name), model.SeverityInfo)
	return nil
}

// CurrentUser returns the current session user, or nil.
func (s *Service) CurrentUser() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// RestoreSession loads the persisted user id and restores the session if
// the id is still in the roster. Unknown or missing ids are discarded.
func (s *Service) RestoreSession() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sessions == nil {
		return nil
	}

	id, err := s.sessions.Load()
	if err != nil {
		return fmt.Errorf("loading persisted session: %w", err)
	}
	if id == "" {
		return nil
	}

	user := s.userByIDLocked(id)
	if user == nil {
		// Stale record for a user no longer in the roster.
		return s.sessions.Clear()
	}

	s.current = user
	return nil
}
