package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/syllabify/internal/config"
	"github.com/jonathan/syllabify/internal/types"
	"go.uber.org/zap"
)

// AuthHandler exchanges the admin password for a bearer token.
type AuthHandler struct {
	passwords  *config.PasswordConfig
	jwtService *JWTService
	logger     *zap.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(passwords *config.PasswordConfig, jwtService *JWTService, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		passwords:  passwords,
		jwtService: jwtService,
		logger:     logger,
	}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req types.TokenRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": validationError(err).Error()})
		return
	}

	if !h.passwords.VerifyAdmin(req.Password) {
		h.logger.Warn("admin login failed", zap.String("remote", r.RemoteAddr))
		err := &ErrInvalidCredentials{}
		h.writeJSON(w, HTTPStatus(err), map[string]string{"error": err.Error()})
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(RoleAdmin, RoleAdmin)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to generate token"})
		return
	}

	h.writeJSON(w, http.StatusOK, types.TokenResponse{Token: token, ExpiresAt: expiresAt})
}

func (h *AuthHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}
