package inventory

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prajjwalps/laptrack/internal/model"
)

// Announcer is the presentation sink for ephemeral acknowledgements of
// lifecycle operations. Implementations must not call back into the
// Service.
type Announcer interface {
	Announce(title, description, severity string)
}

// SessionStore persists the single durable record of the application:
// the current session's user id, keyed under a fixed name.
type SessionStore interface {
	Save(userID string) error
	Load() (string, error)
	Clear() error
}

// Service owns all entity collections for the lifetime of the process.
// Every mutation flows through its methods; a single mutex serializes
// them so concurrent HTTP sessions cannot break the status/location
// invariant.
type Service struct {
	mu sync.Mutex

	laptops       []model.Laptop
	stores        []model.Store
	requests      []model.TransferRequest
	notifications []model.Notification
	users         []model.User
	photos        map[string][]byte

	current *model.User
	nextSeq int

	announcer Announcer
	sessions  SessionStore
	now       func() time.Time
}

// NewService creates a service seeded with fixtures. announcer and
// sessions may be nil (announcements dropped, session not persisted).
func NewService(fx Fixtures, announcer Announcer, sessions SessionStore) *Service {
	s := &Service{
		laptops:       append([]model.Laptop(nil), fx.Laptops...),
		stores:        append([]model.Store(nil), fx.Stores...),
		requests:      append([]model.TransferRequest(nil), fx.Requests...),
		notifications: append([]model.Notification(nil), fx.Notifications...),
		users:         append([]model.User(nil), fx.Users...),
		photos:        make(map[string][]byte),
		announcer:     announcer,
		sessions:      sessions,
		now:           time.Now,
	}
	s.nextSeq = highestRequestSeq(s.requests) + 1
	return s
}

// announce forwards to the sink if one is configured.
func (s *Service) announce(title, description, severity string) {
	if s.announcer != nil {
		s.announcer.Announce(title, description, severity)
	}
}

// Laptops returns a snapshot of all laptops.
func (s *Service) Laptops() []model.Laptop {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Laptop(nil), s.laptops...)
}

// LaptopBySerial returns the laptop with the given serial number, or nil.
func (s *Service) LaptopBySerial(serial string) *model.Laptop {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.laptopIndex(serial); i >= 0 {
		l := s.laptops[i]
		return &l
	}
	return nil
}

// Stores returns a snapshot of all stores.
func (s *Service) Stores() []model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Store(nil), s.stores...)
}

// StoreByID returns the store with the given id, or nil.
func (s *Service) StoreByID(id string) *model.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeByIDLocked(id)
}

func (s *Service) storeByIDLocked(id string) *model.Store {
	for i := range s.stores {
		if s.stores[i].ID == id {
			st := s.stores[i]
			return &st
		}
	}
	return nil
}

// LocationName resolves a location id to a display name. The warehouse
// id is a distinguished constant; unknown ids resolve to a sentinel name
// instead of failing.
func (s *Service) LocationName(id string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locationNameLocked(id)
}

func (s *Service) locationNameLocked(id string) string {
	if id == model.WarehouseID {
		return model.WarehouseName
	}
	if st := s.storeByIDLocked(id); st != nil {
		return st.Name
	}
	return model.UnknownLocationName
}

// TransferRequests returns all transfer requests, newest first.
func (s *Service) TransferRequests() []model.TransferRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TransferRequest(nil), s.requests...)
}

// TransferRequestByID returns the request with the given id, or nil.
func (s *Service) TransferRequestByID(id string) *model.TransferRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.requestIndex(id); i >= 0 {
		r := s.requests[i]
		return &r
	}
	return nil
}

// PendingRequestsFor returns pending requests destined for a location,
// newest first. This is the receive queue for that location.
func (s *Service) PendingRequestsFor(locationID string) []model.TransferRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	var pending []model.TransferRequest
	for _, r := range s.requests {
		if r.Status == model.TransferPending && r.ToLocation == locationID {
			pending = append(pending, r)
		}
	}
	return pending
}

// Notifications returns notifications newest first. If read is non-nil,
// only notifications with a matching read flag are returned.
func (s *Service) Notifications(read *bool) []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Notification
	for _, n := range s.notifications {
		if read == nil || n.Read == *read {
			out = append(out, n)
		}
	}
	return out
}

// MarkNotificationRead marks a notification as read. Unknown ids and
// already-read notifications are no-ops.
func (s *Service) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return
		}
	}
}

// SetLaptopPhoto attaches an intake photo to a laptop.
func (s *Service) SetLaptopPhoto(serial string, data []byte, mime string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.laptopIndex(serial)
	if i < 0 {
		return fmt.Errorf("setting photo for %s: %w", serial, ErrLaptopNotFound)
	}
	s.photos[s.laptops[i].SerialNumber] = data
	s.laptops[i].PhotoMime = mime
	return nil
}

// LaptopPhoto returns a laptop's photo data and MIME type, or nil data
// if the laptop has no photo.
func (s *Service) LaptopPhoto(serial string) ([]byte, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.laptopIndex(serial)
	if i < 0 {
		return nil, ""
	}
	return s.photos[s.laptops[i].SerialNumber], s.laptops[i].PhotoMime
}

// laptopIndex finds a laptop by serial number. The serial is both the
// primary key and the business identifier.
func (s *Service) laptopIndex(serial string) int {
	for i := range s.laptops {
		if s.laptops[i].SerialNumber == serial {
			return i
		}
	}
	return -1
}

func (s *Service) requestIndex(id string) int {
	for i := range s.requests {
		if s.requests[i].ID == id {
			return i
		}
	}
	return -1
}

// pushNotification prepends a notification so lists stay newest-first.
func (s *Service) pushNotification(message, severity, transferID string) {
	s.notifications = append([]model.Notification{{
		ID:                uuid.NewString(),
		Message:           message,
		CreatedAt:         s.now(),
		Severity:          severity,
		RelatedTransferID: transferID,
	}}, s.notifications...)
}
