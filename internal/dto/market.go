package dto

import "github.com/SscSPs/fieldops_console/internal/core/domain"

// CreateMarketRequest adds a market to the shared catalogue.
type CreateMarketRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// ListMarketsResponse wraps the market catalogue.
type ListMarketsResponse struct {
	Markets []domain.Market `json:"markets"`
}
