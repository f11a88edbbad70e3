package dto

import (
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// Live frame types.
const (
	FrameSnapshot = "snapshot"
	FrameRevoked  = "revoked"
)

// LiveFrame is one message of the live feed. Every snapshot is complete, so a client
// can replace its state with the latest frame.
type LiveFrame struct {
	Type         string                     `json:"type"`
	Account      *AccountResponse           `json:"account,omitempty"`
	Capabilities map[string]bool            `json:"capabilities,omitempty"`
	Policy       *domain.GlobalPolicy       `json:"policy,omitempty"`
	Presence     map[string]domain.Presence `json:"presence,omitempty"`
	Markets      []domain.Market            `json:"markets,omitempty"`
	SentAt       time.Time                  `json:"sentAt"`
}
