// Package api implements the HTTP REST API and WebSocket server for the
// device inventory.
//
// This package provides:
//   - REST endpoints for device create, get, list, update, delete and stats
//   - A WebSocket hub broadcasting committed device changes
//   - JWT authentication with viewer and operator roles
//   - Middleware stack (request ID, logging, recovery, CORS, body limit)
//   - TLS support for production deployments
//
// # Architecture
//
// Handlers decode requests into device.Manager calls and map the device
// package's sentinel errors onto status codes:
//
//	ErrDeviceNotFound             404 not_found
//	ErrInvalidInput               400 invalid_input
//	ErrInvalidState               400 invalid_state
//	ErrFieldLockedWhileInUse      400 field_locked
//	ErrDeletionBlockedWhileInUse  400 deletion_blocked
//	anything else                 500 internal_error (logged, not echoed)
//
// # Security
//
// With security.auth.enabled, POST /api/v1/auth/login issues a bearer token
// and every other route except /health requires one. Viewers may only read.
// With auth disabled every caller is treated as an operator.
package api
