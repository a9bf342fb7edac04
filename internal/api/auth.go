package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nerrad567/device-inventory/internal/auth"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Role        string `json:"role"`
}

// handleLogin exchanges configured credentials for an access token.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if !s.secCfg.Auth.Enabled {
		writeError(w, http.StatusNotFound, ErrCodeNotFound, "authentication is disabled")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeBadRequest(w, "username and password are required")
		return
	}

	principal, err := s.authn.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			s.logger.Warn("login failed", "username", req.Username, "remote_addr", r.RemoteAddr)
			writeUnauthorized(w, "invalid credentials")
			return
		}
		s.logger.Error("login error", "username", req.Username, "error", err)
		writeInternalError(w, "internal server error")
		return
	}

	ttl := s.secCfg.JWT.TTL()
	token, _, err := auth.IssueToken(principal, []byte(s.secCfg.JWT.Secret), ttl)
	if err != nil {
		s.logger.Error("issuing token", "username", req.Username, "error", err)
		writeInternalError(w, "failed to generate token")
		return
	}

	if ttl <= 0 {
		ttl = auth.DefaultTokenTTL
	}
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
		Role:        string(principal.Role),
	})
}
