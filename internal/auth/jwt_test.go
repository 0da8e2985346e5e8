package auth

import (
	"testing"

	"github.com/prajjwalps/laptrack/internal/model"
)

func TestTokenRoundTrip(t *testing.T) {
	user := &model.User{
		ID:      "USR003",
		Name:    "Manager A1",
		Role:    model.RoleStoreOwner,
		StoreID: "STORE_001",
	}

	token, err := GenerateToken("secret", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken("secret", token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != user.ID || claims.Name != user.Name || claims.Role != user.Role || claims.StoreID != user.StoreID {
		t.Errorf("claims mismatch: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("missing JTI")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	user := &model.User{ID: "USR001", Name: "Alice Admin", Role: model.RoleAdmin}

	token, err := GenerateToken("secret", user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken("other-secret", token); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("secret", "not-a-token"); err == nil {
		t.Error("expected validation failure for garbage token")
	}
}
