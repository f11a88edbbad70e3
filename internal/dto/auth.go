package dto

import (
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// LoginRequest carries the username and password of a login attempt.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Account   AccountResponse `json:"account"`
}

// MeResponse is the fresh identity snapshot of the caller with their resolved capabilities.
type MeResponse struct {
	Account      AccountResponse `json:"account"`
	Capabilities map[string]bool `json:"capabilities"`
}

// ToCapabilityMap flattens a matrix for JSON output.
func ToCapabilityMap(m domain.CapabilityMatrix) map[string]bool {
	out := make(map[string]bool, len(m))
	for c, ok := range m {
		out[string(c)] = ok
	}
	return out
}
