package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nerrad567/device-inventory/internal/device"
)

// createDeviceRequest is the body of POST /devices. id and created_at are
// not fields here, so clients cannot set them.
type createDeviceRequest struct {
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	State *string `json:"state"`
}

// handleListDevices returns devices, optionally filtered.
//
// Query parameters (brand wins when both are given):
//   - brand: exact brand match
//   - state: AVAILABLE, IN_USE or INACTIVE, case-insensitive
//
// A parameter that is present but empty still counts as a filter.
func (s *Server) handleListDevices(w http.ResponseWriter, r *http.Request) {
	var filter device.Filter
	q := r.URL.Query()
	if q.Has("brand") {
		brand := q.Get("brand")
		filter.Brand = &brand
	}
	if q.Has("state") {
		state := q.Get("state")
		filter.State = &state
	}

	devices, err := s.manager.List(r.Context(), filter)
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"devices": devices, "count": len(devices)})
}

func (s *Server) handleCreateDevice(w http.ResponseWriter, r *http.Request) {
	var req createDeviceRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	created, err := s.manager.Create(r.Context(), req.Name, req.Brand, req.State)
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/devices/"+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) handleGetDevice(w http.ResponseWriter, r *http.Request) {
	d, err := s.manager.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// handleUpdateDevice applies a partial update. Absent and null fields are
// left alone; an empty body is an empty update.
func (s *Server) handleUpdateDevice(w http.ResponseWriter, r *http.Request) {
	var changes device.Changes
	if !decodeBody(w, r, &changes, true) {
		return
	}

	updated, err := s.manager.Update(r.Context(), chi.URLParam(r, "id"), changes)
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteDevice(w http.ResponseWriter, r *http.Request) {
	if err := s.manager.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeDeviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeviceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.manager.Stats(r.Context())
	if err != nil {
		s.writeDeviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// decodeBody decodes a JSON request body into v, writing the error response
// itself and returning false on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, v any, allowEmpty bool) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "request body too large")
		return false
	}
	writeBadRequest(w, "invalid JSON body")
	return false
}
