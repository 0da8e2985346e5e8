package inventory

import (
	"errors"
	"testing"

	"github.com/prajjwalps/laptrack/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(SeedFixtures(), nil, nil)
}

// checkTransitInvariant verifies that a laptop is in transit exactly when
// one pending request references it.
func checkTransitInvariant(t *testing.T, s *Service) {
	t.Helper()
	for _, l := range s.Laptops() {
		pending := 0
		for _, r := range s.TransferRequests() {
			if r.Status == model.TransferPending && r.LaptopSerial == l.SerialNumber {
				pending++
			}
		}
		if l.Status == model.StatusInTransit && pending != 1 {
			t.Errorf("laptop %s in transit with %d pending requests", l.SerialNumber, pending)
		}
		if l.Status != model.StatusInTransit && pending != 0 {
			t.Errorf("laptop %s not in transit but has %d pending requests", l.SerialNumber, pending)
		}
	}
}

func TestSeedFixturesSatisfyInvariant(t *testing.T) {
	checkTransitInvariant(t, newTestService(t))
}

func TestCreateTransferOptimisticMove(t *testing.T) {
	s := newTestService(t)

	id, err := s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00001",
		FromLocation: model.WarehouseID,
		ToLocation:   "STORE_003",
	})
	if err != nil {
		t.Fatalf("CreateTransferRequest: %v", err)
	}

	laptop := s.LaptopBySerial("SN00001")
	if laptop.Status != model.StatusInTransit {
		t.Errorf("expected status %s, got %s", model.StatusInTransit, laptop.Status)
	}
	if laptop.CurrentLocation != "STORE_003" {
		t.Errorf("expected location STORE_003, got %s", laptop.CurrentLocation)
	}
	if laptop.LastTransferID != id {
		t.Errorf("expected last transfer %s, got %s", id, laptop.LastTransferID)
	}

	request := s.TransferRequestByID(id)
	if request == nil {
		t.Fatal("request not recorded")
	}
	if request.Status != model.TransferPending {
		t.Errorf("expected pending request, got %s", request.Status)
	}
	if request.FromLocation != model.WarehouseID || request.ToLocation != "STORE_003" {
		t.Errorf("unexpected endpoints %s -> %s", request.FromLocation, request.ToLocation)
	}

	// Exactly one new info notification referencing the request.
	var related []model.Notification
	for _, n := range s.Notifications(nil) {
		if n.RelatedTransferID == id {
			related = append(related, n)
		}
	}
	if len(related) != 1 {
		t.Fatalf("expected 1 notification for %s, got %d", id, len(related))
	}
	if related[0].Severity != model.SeverityInfo {
		t.Errorf("expected info notification, got %s", related[0].Severity)
	}

	checkTransitInvariant(t, s)
}

func TestCreateTransferSequentialIDs(t *testing.T) {
	s := newTestService(t)

	// Fixtures already hold TRN001 and TRN002.
	id, err := s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00001",
		FromLocation: model.WarehouseID,
		ToLocation:   "STORE_001",
	})
	if err != nil {
		t.Fatalf("CreateTransferRequest: %v", err)
	}
	if id != "TRN003" {
		t.Errorf("expected TRN003, got %s", id)
	}
}

func TestCreateTransferValidation(t *testing.T) {
	tests := []struct {
		name    string
		input   TransferInput
		wantErr error
	}{
		{
			"missing serial",
			TransferInput{FromLocation: model.WarehouseID, ToLocation: "STORE_001"},
			ErrInvalidInput,
		},
		{
			"same source and destination",
			TransferInput{LaptopSerial: "SN00001", FromLocation: model.WarehouseID, ToLocation: model.WarehouseID},
			ErrInvalidInput,
		},
		{
			"laptop not found",
			TransferInput{LaptopSerial: "SN99999", FromLocation: model.WarehouseID, ToLocation: "STORE_001"},
			ErrLaptopNotFound,
		},
		{
			"laptop already in transit",
			TransferInput{LaptopSerial: "SN00006", FromLocation: "STORE_003", ToLocation: "STORE_004"},
			ErrLaptopInTransit,
		},
		{
			"location mismatch",
			TransferInput{LaptopSerial: "SN00001", FromLocation: "STORE_005", ToLocation: "STORE_001"},
			ErrLocationMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)
			before := s.LaptopBySerial("SN00001")
			requests := len(s.TransferRequests())
			notifications := len(s.Notifications(nil))

			_, err := s.CreateTransferRequest(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}

			// Failed calls must not mutate any state.
			after := s.LaptopBySerial("SN00001")
			if *after != *before {
				t.Errorf("laptop mutated by failed create: %+v -> %+v", before, after)
			}
			if got := len(s.TransferRequests()); got != requests {
				t.Errorf("request count changed: %d -> %d", requests, got)
			}
			if got := len(s.Notifications(nil)); got != notifications {
				t.Errorf("notification count changed: %d -> %d", notifications, got)
			}
		})
	}
}

func TestResolveAccepted(t *testing.T) {
	s := newTestService(t)

	id, err := s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00001",
		FromLocation: model.WarehouseID,
		ToLocation:   "STORE_003",
	})
	if err != nil {
		t.Fatalf("CreateTransferRequest: %v", err)
	}

	if err := s.ResolveTransferRequest(id, model.TransferAccepted, "Manager C3"); err != nil {
		t.Fatalf("ResolveTransferRequest: %v", err)
	}

	laptop := s.LaptopBySerial("SN00001")
	if laptop.Status != model.StatusReceived {
		t.Errorf("expected status %s, got %s", model.StatusReceived, laptop.Status)
	}
	if laptop.CurrentLocation != "STORE_003" {
		t.Errorf("expected location STORE_003, got %s", laptop.CurrentLocation)
	}

	request := s.TransferRequestByID(id)
	if request.Status != model.TransferAccepted {
		t.Errorf("expected accepted, got %s", request.Status)
	}
	if request.ApprovedBy != "Manager C3" {
		t.Errorf("expected approver Manager C3, got %s", request.ApprovedBy)
	}
	if request.ResolvedAt == nil || request.ResolvedAt.Before(request.RequestedAt) {
		t.Errorf("resolution timestamp %v predates request %v", request.ResolvedAt, request.RequestedAt)
	}

	// One success notification for the resolution.
	success := 0
	for _, n := range s.Notifications(nil) {
		if n.RelatedTransferID == id && n.Severity == model.SeveritySuccess {
			success++
		}
	}
	if success != 1 {
		t.Errorf("expected 1 success notification, got %d", success)
	}

	checkTransitInvariant(t, s)
}

func TestResolveRejectedRevertsToOrigin(t *testing.T) {
	tests := []struct {
		name       string
		serial     string
		from       string
		to         string
		wantStatus string
	}{
		{"from warehouse", "SN00001", model.WarehouseID, "STORE_003", model.StatusInWarehouse},
		{"from store", "SN00004", "STORE_001", "STORE_002", model.StatusInStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestService(t)

			id, err := s.CreateTransferRequest(TransferInput{
				LaptopSerial: tt.serial,
				FromLocation: tt.from,
				ToLocation:   tt.to,
			})
			if err != nil {
				t.Fatalf("CreateTransferRequest: %v", err)
			}

			if err := s.ResolveTransferRequest(id, model.TransferRejected, ""); err != nil {
				t.Fatalf("ResolveTransferRequest: %v", err)
			}

			laptop := s.LaptopBySerial(tt.serial)
			if laptop.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, laptop.Status)
			}
			if laptop.CurrentLocation != tt.from {
				t.Errorf("expected location %s, got %s", tt.from, laptop.CurrentLocation)
			}

			// Rejection emits one error notification.
			errs := 0
			for _, n := range s.Notifications(nil) {
				if n.RelatedTransferID == id && n.Severity == model.SeverityError {
					errs++
				}
			}
			if errs != 1 {
				t.Errorf("expected 1 error notification, got %d", errs)
			}

			checkTransitInvariant(t, s)
		})
	}
}

func TestResolveTwiceFails(t *testing.T) {
	s := newTestService(t)

	id, _ := s.CreateTransferRequest(TransferInput{
		LaptopSerial: "SN00001",
		FromLocation: model.WarehouseID,
		ToLocation:   "STORE_003",
	})
	if err := s.ResolveTransferRequest(id, model.TransferAccepted, ""); err != nil {
		t.Fatalf("first resolve: %v", err)
	}

	before := *s.LaptopBySerial("SN00001")
	notifications := len(s.Notifications(nil))

	err := s.ResolveTransferRequest(id, model.TransferRejected, "")
	if !errors.Is(err, ErrInvalidStateTransition) {
		t.Fatalf("expected ErrInvalidStateTransition, got %v", err)
	}

	if after := *s.LaptopBySerial("SN00001"); after != before {
		t.Errorf("laptop mutated by failed resolve: %+v -> %+v", before, after)
	}
	if got := len(s.Notifications(nil)); got != notifications {
		t.Errorf("second resolve emitted a notification: %d -> %d", notifications, got)
	}

	request := s.TransferRequestByID(id)
	if request.Status != model.TransferAccepted {
		t.Errorf("terminal status changed to %s", request.Status)
	}
}

func TestResolveValidation(t *testing.T) {
	s := newTestService(t)

	if err := s.ResolveTransferRequest("TRN999", model.TransferAccepted, ""); !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("expected ErrRequestNotFound, got %v", err)
	}
	if err := s.ResolveTransferRequest("TRN001", model.TransferPending, ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for pending target, got %v", err)
	}
	if err := s.ResolveTransferRequest("TRN001", "bogus", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for bogus target, got %v", err)
	}
}

func TestAddLaptop(t *testing.T) {
	s := newTestService(t)

	if err := s.AddLaptop("SN00011", "ZenBook 14"); err != nil {
		t.Fatalf("AddLaptop: %v", err)
	}

	laptop := s.LaptopBySerial("SN00011")
	if laptop == nil {
		t.Fatal("laptop not added")
	}
	if laptop.Status != model.StatusInWarehouse || laptop.CurrentLocation != model.WarehouseID {
		t.Errorf("expected new laptop in warehouse, got %s at %s", laptop.Status, laptop.CurrentLocation)
	}
}

func TestAddLaptopDuplicateSerial(t *testing.T) {
	s := newTestService(t)
	count := len(s.Laptops())

	err := s.AddLaptop("SN00001", "Different Model")
	if !errors.Is(err, ErrDuplicateSerial) {
		t.Fatalf("expected ErrDuplicateSerial, got %v", err)
	}
	if got := len(s.Laptops()); got != count {
		t.Errorf("inventory changed on duplicate add: %d -> %d", count, got)
	}
	if l := s.LaptopBySerial("SN00001"); l.ModelNumber != "Latitude 7400" {
		t.Errorf("existing laptop overwritten: %s", l.ModelNumber)
	}
}
