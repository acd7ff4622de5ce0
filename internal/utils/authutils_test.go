package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestIssueAndValidateToken(t *testing.T) {
	secret := []byte("test-secret")
	sub := uuid.NewString()

	token, err := IssueToken(secret, sub, "foo@bar.com")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	data, err := ValidateToken(secret, "Bearer "+token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if data.Sub != sub {
		t.Errorf("Sub = %q, want %q", data.Sub, sub)
	}
	if data.Email != "foo@bar.com" {
		t.Errorf("Email = %q, want foo@bar.com", data.Email)
	}
	if data.Exp == 0 {
		t.Error("Exp claim missing")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken([]byte("secret-a"), uuid.NewString(), "foo@bar.com")
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}

	if _, err = ValidateToken([]byte("secret-b"), token); err == nil {
		t.Error("ValidateToken() accepted a token signed with another secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken([]byte("test-secret"), "not.a.token"); err == nil {
		t.Error("ValidateToken() accepted garbage")
	}
	if _, err := ValidateToken([]byte("test-secret"), ""); err == nil {
		t.Error("ValidateToken() accepted an empty token")
	}
}
