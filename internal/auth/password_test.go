package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	password := "correct-horse-battery-staple"

	hash, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=3,p=1$") {
		t.Errorf("hash = %q, want argon2id PHC prefix", hash)
	}

	ok, err := VerifyPassword(password, hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if !ok {
		t.Error("VerifyPassword() = false for correct password")
	}

	ok, err = VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword() error = %v", err)
	}
	if ok {
		t.Error("VerifyPassword() = true for wrong password")
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, _ := HashPassword("same") //nolint:errcheck // compared below
	h2, _ := HashPassword("same") //nolint:errcheck // compared below
	if h1 == h2 {
		t.Error("two hashes of the same password should differ")
	}
}

func TestVerifyPassword_InvalidFormat(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"not PHC", "plaintext"},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA"},
		{"too few parts", "$argon2id$v=19$m=65536,t=3,p=1"},
		{"wrong version", "$argon2id$v=16$m=65536,t=3,p=1$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$m=x,t=3,p=1$c2FsdA$aGFzaA"},
		{"bad salt", "$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaA"},
		{"empty hash", "$argon2id$v=19$m=65536,t=3,p=1$c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyPassword("password", tt.hash)
			if !errors.Is(err, ErrInvalidHash) {
				t.Errorf("VerifyPassword() error = %v, want ErrInvalidHash", err)
			}
		})
	}
}

func TestAuthenticator_Login(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	a, err := NewAuthenticator([]config.UserCredential{
		{Username: "ops", PasswordHash: hash, Role: "operator"},
		{Username: "guest", PasswordHash: hash, Role: "viewer"},
	})
	if err != nil {
		t.Fatalf("NewAuthenticator() error = %v", err)
	}

	p, err := a.Login("ops", "s3cret")
	if err != nil {
		t.Fatalf("Login(ops) error = %v", err)
	}
	if p != (Principal{Username: "ops", Role: RoleOperator}) {
		t.Errorf("Login(ops) = %+v", p)
	}

	p, err = a.Login("guest", "s3cret")
	if err != nil || p.Role != RoleViewer {
		t.Errorf("Login(guest) = %+v, %v", p, err)
	}

	if _, err := a.Login("ops", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
	if _, err := a.Login("nobody", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login(unknown user) error = %v, want ErrInvalidCredentials", err)
	}
}

func TestNewAuthenticator_RejectsBadAccounts(t *testing.T) {
	hash, _ := HashPassword("x") //nolint:errcheck // used only as valid input

	tests := []struct {
		name string
		user config.UserCredential
	}{
		{"unknown role", config.UserCredential{Username: "a", PasswordHash: hash, Role: "root"}},
		{"plaintext password", config.UserCredential{Username: "a", PasswordHash: "hunter2", Role: "viewer"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewAuthenticator([]config.UserCredential{tt.user}); err == nil {
				t.Error("NewAuthenticator() error = nil")
			}
		})
	}
}
