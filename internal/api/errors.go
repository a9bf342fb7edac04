package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/device-inventory/internal/device"
)

// Error is the standard API error response body.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes.
const (
	ErrCodeBadRequest      = "bad_request"
	ErrCodeNotFound        = "not_found"
	ErrCodeInvalidInput    = "invalid_input"
	ErrCodeInvalidState    = "invalid_state"
	ErrCodeFieldLocked     = "field_locked"
	ErrCodeDeletionBlocked = "deletion_blocked"
	ErrCodeConflict        = "conflict"
	ErrCodeUnauthorized    = "unauthorised"
	ErrCodeForbidden       = "forbidden"
	ErrCodeInternal        = "internal_error"
	ErrCodeUnavailable     = "unavailable"
)

// deviceErrors maps device sentinels to status and code. Order matters
// only in that each error wraps at most one sentinel.
var deviceErrors = []struct {
	err    error
	status int
	code   string
}{
	{device.ErrDeviceNotFound, http.StatusNotFound, ErrCodeNotFound},
	{device.ErrInvalidInput, http.StatusBadRequest, ErrCodeInvalidInput},
	{device.ErrInvalidState, http.StatusBadRequest, ErrCodeInvalidState},
	{device.ErrFieldLockedWhileInUse, http.StatusBadRequest, ErrCodeFieldLocked},
	{device.ErrDeletionBlockedWhileInUse, http.StatusBadRequest, ErrCodeDeletionBlocked},
	{device.ErrDeviceExists, http.StatusConflict, ErrCodeConflict},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Error{
		Status:  status,
		Code:    code,
		Message: message,
	})
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, ErrCodeBadRequest, message)
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnauthorized, ErrCodeUnauthorized, message)
}

func writeForbidden(w http.ResponseWriter, message string) {
	writeError(w, http.StatusForbidden, ErrCodeForbidden, message)
}

func writeInternalError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, ErrCodeInternal, message)
}

// writeDeviceError maps a Manager error onto the response. Anything that is
// not a device sentinel is logged and reported as a bare 500 so storage
// details never reach the client.
func (s *Server) writeDeviceError(w http.ResponseWriter, r *http.Request, err error) {
	for _, m := range deviceErrors {
		if errors.Is(err, m.err) {
			writeError(w, m.status, m.code, err.Error())
			return
		}
	}

	s.logger.Error("device operation failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
		"request_id", r.Context().Value(ctxKeyRequestID),
	)
	writeInternalError(w, "internal server error")
}
