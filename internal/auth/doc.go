// Package auth provides authentication and authorisation for the inventory API.
//
// It implements a two-tier role model (viewer, operator) with:
//   - Argon2id password hashing in PHC string format
//   - HS256 JWT access tokens carrying the caller's role
//   - Static role-permission mapping (no database lookup)
//
// Accounts come from security.auth.users in config; passwords are stored
// only as hashes (inventoryctl hashpw produces them).
package auth
