package auth

import "errors"

// Role is an authorisation tier.
type Role string

const (
	// RoleViewer may read the inventory.
	RoleViewer Role = "viewer"

	// RoleOperator may read and change the inventory.
	RoleOperator Role = "operator"
)

// IsValidRole reports whether r is a known role.
func IsValidRole(r Role) bool {
	return r == RoleViewer || r == RoleOperator
}

// Principal is the authenticated caller attached to a request.
type Principal struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Sentinel errors.
var (
	// ErrInvalidCredentials covers both unknown users and wrong passwords.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrTokenInvalid is returned for unparsable, expired or forged tokens.
	ErrTokenInvalid = errors.New("auth: token invalid")

	// ErrInvalidHash is returned for password hashes not in Argon2id PHC form.
	ErrInvalidHash = errors.New("auth: invalid password hash")
)
