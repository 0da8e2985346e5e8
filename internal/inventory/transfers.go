package inventory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/prajjwalps/laptrack/internal/model"
)

// requestIDPrefix prefixes the sequential, human-readable request ids.
const requestIDPrefix = "TRN"

// TransferInput describes a new transfer request. RequestedBy is
// optional; when empty the current session user's name is used, falling
// back to "System".
type TransferInput struct {
	LaptopSerial string
	FromLocation string
	ToLocation   string
	RequestedBy  string
}

// CreateTransferRequest validates the input, records a pending request
// and optimistically moves the laptop to the destination. On success it
// returns the new request id and emits one info notification. Failed
// calls mutate nothing.
func (s *Service) CreateTransferRequest(in TransferInput) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.LaptopSerial == "" || in.FromLocation == "" || in.ToLocation == "" {
		return "", fmt.Errorf("creating transfer: missing required field: %w", ErrInvalidInput)
	}
	if in.FromLocation == in.ToLocation {
		return "", fmt.Errorf("creating transfer: same source and destination: %w", ErrInvalidInput)
	}

	i := s.laptopIndex(in.LaptopSerial)
	if i < 0 {
		return "", fmt.Errorf("creating transfer for %s: %w", in.LaptopSerial, ErrLaptopNotFound)
	}
	laptop := &s.laptops[i]

	if laptop.Status == model.StatusInTransit {
		return "", fmt.Errorf("creating transfer for %s: %w", in.LaptopSerial, ErrLaptopInTransit)
	}
	if laptop.CurrentLocation != in.FromLocation {
		return "", fmt.Errorf("creating transfer for %s: stated source %s, recorded %s: %w",
			in.LaptopSerial, in.FromLocation, laptop.CurrentLocation, ErrLocationMismatch)
	}

	requestedBy := in.RequestedBy
	if requestedBy == "" {
		if s.current != nil {
			requestedBy = s.current.Name
		} else {
			requestedBy = "System"
		}
	}

	id := fmt.Sprintf("%s%03d", requestIDPrefix, s.nextSeq)
	s.nextSeq++

	request := model.TransferRequest{
		ID:           id,
		LaptopSerial: laptop.SerialNumber,
		SerialNumber: laptop.SerialNumber,
		ModelNumber:  laptop.ModelNumber,
		FromLocation: in.FromLocation,
		ToLocation:   in.ToLocation,
		RequestedAt:  s.now(),
		Status:       model.TransferPending,
		RequestedBy:  requestedBy,
	}
	s.requests = append([]model.TransferRequest{request}, s.requests...)

	// Optimistic move: the laptop already shows its destination while the
	// request is pending.
	laptop.Status = model.StatusInTransit
	laptop.CurrentLocation = in.ToLocation
	laptop.LastTransferID = id

	fromName := s.locationNameLocked(in.FromLocation)
	toName := s.locationNameLocked(in.ToLocation)

	s.pushNotification(
		fmt.Sprintf("Laptop %s transfer from %s to %s is pending approval.", laptop.SerialNumber, fromName, toName),
		model.SeverityInfo, id,
	)
	s.announce("Transfer Request Created",
		fmt.Sprintf("Request for %s (SN: %s) to %s has been submitted.", laptop.ModelNumber, laptop.SerialNumber, toName),
		model.SeverityInfo)

	return id, nil
}

// ResolveTransferRequest moves a pending request to a terminal status and
// settles the laptop: accepted or completed requests leave it received at
// the destination, rejected requests return it to the source. actor is
// optional; when empty the current session user's name is used, falling
// back to "System". Resolving a request that is not pending fails and
// mutates nothing.
func (s *Service) ResolveTransferRequest(id, status, actor string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !model.TerminalTransferStatus(status) {
		return fmt.Errorf("resolving %s: status %q is not a terminal status: %w", id, status, ErrInvalidInput)
	}

	i := s.requestIndex(id)
	if i < 0 {
		return fmt.Errorf("resolving %s: %w", id, ErrRequestNotFound)
	}
	request := &s.requests[i]

	if request.Status != model.TransferPending {
		return fmt.Errorf("resolving %s: already %s: %w", id, request.Status, ErrInvalidStateTransition)
	}

	if actor == "" {
		if s.current != nil {
			actor = s.current.Name
		} else {
			actor = "System"
		}
	}

	resolvedAt := s.now()
	request.Status = status
	request.ApprovedBy = actor
	request.ResolvedAt = &resolvedAt

	// Settle the laptop using the request's endpoints, not the laptop's
	// transient in-transit state.
	if li := s.laptopIndex(request.LaptopSerial); li >= 0 {
		laptop := &s.laptops[li]
		switch status {
		case model.TransferAccepted, model.TransferCompleted:
			laptop.Status = model.StatusReceived
			laptop.CurrentLocation = request.ToLocation
		case model.TransferRejected:
			if request.FromLocation == model.WarehouseID {
				laptop.Status = model.StatusInWarehouse
			} else {
				laptop.Status = model.StatusInStore
			}
			laptop.CurrentLocation = request.FromLocation
		}
	}

	fromName := s.locationNameLocked(request.FromLocation)
	toName := s.locationNameLocked(request.ToLocation)

	severity := model.SeveritySuccess
	if status == model.TransferRejected {
		severity = model.SeverityError
	}

	s.pushNotification(
		fmt.Sprintf("Laptop %s transfer from %s to %s was %s.", request.SerialNumber, fromName, toName, status),
		severity, id,
	)
	s.announce("Transfer "+titleWord(status),
		fmt.Sprintf("Transfer of %s (SN: %s) to %s has been %s.", request.ModelNumber, request.SerialNumber, toName, status),
		severity)

	return nil
}

// AddLaptop adds a laptop to the warehouse inventory. Serial numbers are
// the primary key, so duplicates are rejected and leave the inventory
// unchanged.
func (s *Service) AddLaptop(serial, modelNumber string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if serial == "" || modelNumber == "" {
		return fmt.Errorf("adding laptop: missing serial or model number: %w", ErrInvalidInput)
	}
	if s.laptopIndex(serial) >= 0 {
		return fmt.Errorf("adding laptop %s: %w", serial, ErrDuplicateSerial)
	}

	s.laptops = append(s.laptops, model.Laptop{
		SerialNumber:    serial,
		ModelNumber:     modelNumber,
		Status:          model.StatusInWarehouse,
		CurrentLocation: model.WarehouseID,
	})

	s.announce("Laptop Added",
		fmt.Sprintf("%s (SN: %s) added to %s.", modelNumber, serial, model.WarehouseName),
		model.SeveritySuccess)

	return nil
}

// titleWord upper-cases the first letter of an ASCII status word.
func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// highestRequestSeq returns the largest numeric suffix among seeded
// request ids so newly allocated ids never collide with fixtures.
func highestRequestSeq(requests []model.TransferRequest) int {
	highest := 0
	for _, r := range requests {
		n, err := strconv.Atoi(strings.TrimPrefix(r.ID, requestIDPrefix))
		if err == nil && n > highest {
			highest = n
		}
	}
	return highest
}
