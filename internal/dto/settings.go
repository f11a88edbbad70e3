package dto

import "github.com/SscSPs/fieldops_console/internal/core/domain"

// UpdateTickerRequest is the partial ticker of a settings update.
type UpdateTickerRequest struct {
	Text      *string `json:"text" binding:"omitempty,max=500"`
	ShowSales *bool   `json:"showSales"`
	Active    *bool   `json:"active"`
}

// UpdateVisibilityRequest is the partial set of visibility switches of a settings update.
type UpdateVisibilityRequest struct {
	SalesLog          *bool `json:"salesLog"`
	InventoryLog      *bool `json:"inventoryLog"`
	CompetitorReports *bool `json:"competitorReports"`
}

// UpdateSettingsRequest is a partial update of the global policy. Absent fields are left as stored.
type UpdateSettingsRequest struct {
	Title           *string                  `json:"title" binding:"omitempty,min=1,max=120"`
	ContactWhatsApp *string                  `json:"contactWhatsApp" binding:"omitempty,max=32"`
	Ticker          *UpdateTickerRequest     `json:"ticker"`
	Visibility      *UpdateVisibilityRequest `json:"visibility"`
}

// ToPolicyPatch converts the request into a domain patch.
func (r UpdateSettingsRequest) ToPolicyPatch() domain.PolicyPatch {
	patch := domain.PolicyPatch{
		Title:           r.Title,
		ContactWhatsApp: r.ContactWhatsApp,
	}
	if r.Ticker != nil {
		patch.Ticker = &domain.TickerPatch{
			Text:      r.Ticker.Text,
			ShowSales: r.Ticker.ShowSales,
			Active:    r.Ticker.Active,
		}
	}
	if r.Visibility != nil {
		patch.Visibility = &domain.VisibilityPatch{
			SalesLog:          r.Visibility.SalesLog,
			InventoryLog:      r.Visibility.InventoryLog,
			CompetitorReports: r.Visibility.CompetitorReports,
		}
	}
	return patch
}
