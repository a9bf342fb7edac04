package auth

import (
	"fmt"

	"github.com/nerrad567/device-inventory/internal/infrastructure/config"
)

type account struct {
	hash string
	role Role
}

// Authenticator checks credentials against the accounts in config.
type Authenticator struct {
	accounts map[string]account
	// dummyHash is verified for unknown users so the response time does
	// not reveal which usernames exist.
	dummyHash string
}

// NewAuthenticator builds an authenticator from configured users.
func NewAuthenticator(users []config.UserCredential) (*Authenticator, error) {
	a := &Authenticator{accounts: make(map[string]account, len(users))}

	for _, u := range users {
		role := Role(u.Role)
		if !IsValidRole(role) {
			return nil, fmt.Errorf("user %q: unknown role %q", u.Username, u.Role)
		}
		if _, err := decodePHC(u.PasswordHash); err != nil {
			return nil, fmt.Errorf("user %q: %w", u.Username, err)
		}
		a.accounts[u.Username] = account{hash: u.PasswordHash, role: role}
	}

	dummy, err := HashPassword("unused-dummy-password")
	if err != nil {
		return nil, err
	}
	a.dummyHash = dummy

	return a, nil
}

// Login returns the principal for valid credentials, or ErrInvalidCredentials.
func (a *Authenticator) Login(username, password string) (Principal, error) {
	acct, ok := a.accounts[username]
	hash := acct.hash
	if !ok {
		hash = a.dummyHash
	}

	match, err := VerifyPassword(password, hash)
	if err != nil {
		return Principal{}, fmt.Errorf("verifying password: %w", err)
	}
	if !ok || !match {
		return Principal{}, ErrInvalidCredentials
	}

	return Principal{Username: username, Role: acct.role}, nil
}
