package model

import "testing"

func TestRoleAllows(t *testing.T) {
	tests := []struct {
		role     string
		op       string
		expected bool
	}{
		{RoleAdmin, OpCreateTransfer, true},
		{RoleAdmin, OpResolveTransfer, true},
		{RoleAdmin, OpAddLaptop, true},
		{RoleAdmin, OpViewStores, true},
		{RoleDistributor, OpCreateTransfer, true},
		{RoleDistributor, OpAddLaptop, true},
		{RoleDistributor, OpResolveTransfer, false},
		{RoleDistributor, OpViewStores, false},
		{RoleStoreOwner, OpResolveTransfer, true},
		{RoleStoreOwner, OpCreateTransfer, true},
		{RoleStoreOwner, OpAddLaptop, false},
		// Unknown roles and operations fail-closed.
		{"unknown", OpCreateTransfer, false},
		{RoleAdmin, "unknown", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got := RoleAllows(tt.role, tt.op)
		if got != tt.expected {
			t.Errorf("RoleAllows(%q, %q) = %v, want %v", tt.role, tt.op, got, tt.expected)
		}
	}
}

func TestLandingRoute(t *testing.T) {
	tests := []struct {
		role     string
		expected string
	}{
		{RoleAdmin, "/"},
		{RoleDistributor, "/distributor"},
		{RoleStoreOwner, "/store"},
		{"", "/login"},
		{"unknown", "/login"},
	}

	for _, tt := range tests {
		if got := LandingRoute(tt.role); got != tt.expected {
			t.Errorf("LandingRoute(%q) = %q, want %q", tt.role, got, tt.expected)
		}
	}
}

func TestTerminalTransferStatus(t *testing.T) {
	for _, status := range []string{TransferAccepted, TransferRejected, TransferCompleted} {
		if !TerminalTransferStatus(status) {
			t.Errorf("TerminalTransferStatus(%q) = false, want true", status)
		}
	}
	for _, status := range []string{TransferPending, "", "bogus"} {
		if TerminalTransferStatus(status) {
			t.Errorf("TerminalTransferStatus(%q) = true, want false", status)
		}
	}
}
