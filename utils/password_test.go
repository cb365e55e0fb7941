package utils

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "admin123" {
		t.Fatal("hash must not equal the clear text")
	}

	ok, err := VerifyPassword(hash, "admin123")
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Error("correct password rejected")
	}

	ok, _ = VerifyPassword(hash, "wrong")
	if ok {
		t.Error("wrong password accepted")
	}
}
