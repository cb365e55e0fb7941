package utils

import (
	"testing"

	"furnish-shop/config"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "1h",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Email != "admin@example.com" || claims.Name != "Admin" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken("admin@example.com", "Admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestNewIDUnique(t *testing.T) {
	const n = 1000
	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
