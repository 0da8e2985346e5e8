package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/prajjwalps/laptrack/internal/model"
)

// Fixtures is the seed data a Service starts from. There is no durable
// entity store; every process starts from these collections.
type Fixtures struct {
	Laptops       []model.Laptop
	Stores        []model.Store
	Requests      []model.TransferRequest
	Notifications []model.Notification
	Users         []model.User
}

// SeedFixtures builds the standard demo dataset: 30 stores, 10 laptops
// (one of them mid-transfer), the matching pending request, and the
// fixed user roster.
func SeedFixtures() Fixtures {
	stores := make([]model.Store, 30)
	for i := range stores {
		stores[i] = model.Store{
			ID:      fmt.Sprintf("STORE_%03d", i+1),
			Name:    fmt.Sprintf("Store %03d", i+1),
			Manager: fmt.Sprintf("Manager %c%d", 'A'+rune(i%26), i+1),
		}
	}

	laptops := []model.Laptop{
		{SerialNumber: "SN00001", ModelNumber: "Latitude 7400", Status: model.StatusInWarehouse, CurrentLocation: model.WarehouseID},
		{SerialNumber: "SN00002", ModelNumber: "XPS 13", Status: model.StatusInWarehouse, CurrentLocation: model.WarehouseID},
		{SerialNumber: "SN00003", ModelNumber: "MacBook Pro 16", Status: model.StatusInWarehouse, CurrentLocation: model.WarehouseID},
		{SerialNumber: "SN00004", ModelNumber: "ThinkPad X1", Status: model.StatusInStore, CurrentLocation: stores[0].ID},
		{SerialNumber: "SN00005", ModelNumber: "Surface Laptop 4", Status: model.StatusInStore, CurrentLocation: stores[1].ID},
		{SerialNumber: "SN00006", ModelNumber: "Latitude 7400", Status: model.StatusInTransit, CurrentLocation: stores[2].ID, LastTransferID: "TRN001"},
		{SerialNumber: "SN00007", ModelNumber: "XPS 15", Status: model.StatusInWarehouse, CurrentLocation: model.WarehouseID},
		{SerialNumber: "SN00008", ModelNumber: "MacBook Air M2", Status: model.StatusInWarehouse, CurrentLocation: model.WarehouseID},
		{SerialNumber: "SN00009", ModelNumber: "ThinkPad T14", Status: model.StatusInStore, CurrentLocation: stores[3].ID},
		{SerialNumber: "SN00010", ModelNumber: "Surface Pro 8", Status: model.StatusInStore, CurrentLocation: stores[4].ID},
	}

	now := time.Now()
	completedAt := now.Add(-22 * time.Hour)

	requests := []model.TransferRequest{
		{
			ID:           "TRN001",
			LaptopSerial: "SN00006",
			SerialNumber: "SN00006",
			ModelNumber:  "Latitude 7400",
			FromLocation: model.WarehouseID,
			ToLocation:   stores[2].ID,
			RequestedAt:  now.Add(-time.Hour),
			Status:       model.TransferPending,
			RequestedBy:  "Warehouse Manager",
		},
		{
			ID:           "TRN002",
			LaptopSerial: "SN00004",
			SerialNumber: "SN00004",
			ModelNumber:  "ThinkPad X1",
			FromLocation: model.WarehouseID,
			ToLocation:   stores[0].ID,
			RequestedAt:  now.Add(-24 * time.Hour),
			ResolvedAt:   &completedAt,
			Status:       model.TransferCompleted,
			RequestedBy:  "Warehouse Manager",
			ApprovedBy:   stores[0].Manager,
		},
	}

	notifications := []model.Notification{
		{
			ID:                uuid.NewString(),
			Message:           fmt.Sprintf("Laptop SN00006 (Latitude 7400) transfer to %s is pending your approval.", stores[2].Name),
			CreatedAt:         now.Add(-time.Hour),
			Severity:          model.SeverityInfo,
			RelatedTransferID: "TRN001",
		},
	}

	users := []model.User{
		{ID: "USR001", Name: "Alice Admin", Role: model.RoleAdmin},
		{ID: "USR002", Name: "Dan Distributor", Role: model.RoleDistributor},
		{ID: "USR003", Name: stores[0].Manager, Role: model.RoleStoreOwner, StoreID: stores[0].ID},
		{ID: "USR004", Name: stores[2].Manager, Role: model.RoleStoreOwner, StoreID: stores[2].ID},
	}

	return Fixtures{
		Laptops:       laptops,
		Stores:        stores,
		Requests:      requests,
		Notifications: notifications,
		Users:         users,
	}
}
