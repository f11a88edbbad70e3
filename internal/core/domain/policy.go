package domain

// Category is a data category whose log view can be switched off for all members at once.
type Category string

const (
	CategorySalesLog          Category = "salesLog"
	CategoryInventoryLog      Category = "inventoryLog"
	CategoryCompetitorReports Category = "competitorReports"
)

// Ticker is the scrolling announcement shown in the console header.
type Ticker struct {
	Text      string `json:"text"`
	ShowSales bool   `json:"showSales"`
	Active    bool   `json:"active"`
}

// Visibility holds the global per-category switches.
type Visibility struct {
	SalesLog          bool `json:"salesLog"`
	InventoryLog      bool `json:"inventoryLog"`
	CompetitorReports bool `json:"competitorReports"`
}

// Enabled returns the switch for category c. Unknown categories are visible.
func (v Visibility) Enabled(c Category) bool {
	switch c {
	case CategorySalesLog:
		return v.SalesLog
	case CategoryInventoryLog:
		return v.InventoryLog
	case CategoryCompetitorReports:
		return v.CompetitorReports
	}
	return true
}

// GlobalPolicy is the singleton administrative configuration. Readers always get a
// complete value; see MergePolicy.
type GlobalPolicy struct {
	Title           string     `json:"title"`
	ContactWhatsApp string     `json:"contactWhatsApp"`
	Ticker          Ticker     `json:"ticker"`
	Visibility      Visibility `json:"visibility"`
}

// DefaultGlobalPolicy is the policy in force before an administrator saves anything.
func DefaultGlobalPolicy() GlobalPolicy {
	return GlobalPolicy{
		Title:  "Soft Rose Modern Trade",
		Ticker: Ticker{ShowSales: true, Active: true},
		Visibility: Visibility{
			SalesLog:          true,
			InventoryLog:      true,
			CompetitorReports: true,
		},
	}
}

// TickerPatch is the partial form of Ticker.
type TickerPatch struct {
	Text      *string `json:"text,omitempty"`
	ShowSales *bool   `json:"showSales,omitempty"`
	Active    *bool   `json:"active,omitempty"`
}

// VisibilityPatch is the partial form of Visibility.
type VisibilityPatch struct {
	SalesLog          *bool `json:"salesLog,omitempty"`
	InventoryLog      *bool `json:"inventoryLog,omitempty"`
	CompetitorReports *bool `json:"competitorReports,omitempty"`
}

// PolicyPatch is the policy as it is stored: any field may be absent.
type PolicyPatch struct {
	Title           *string          `json:"title,omitempty"`
	ContactWhatsApp *string          `json:"contactWhatsApp,omitempty"`
	Ticker          *TickerPatch     `json:"ticker,omitempty"`
	Visibility      *VisibilityPatch `json:"visibility,omitempty"`
}

// MergePolicy applies every present field of patch over base.
func MergePolicy(base GlobalPolicy, patch PolicyPatch) GlobalPolicy {
	out := base
	if patch.Title != nil {
		out.Title = *patch.Title
	}
	if patch.ContactWhatsApp != nil {
		out.ContactWhatsApp = *patch.ContactWhatsApp
	}
	if t := patch.Ticker; t != nil {
		if t.Text != nil {
			out.Ticker.Text = *t.Text
		}
		if t.ShowSales != nil {
			out.Ticker.ShowSales = *t.ShowSales
		}
		if t.Active != nil {
			out.Ticker.Active = *t.Active
		}
	}
	if v := patch.Visibility; v != nil {
		if v.SalesLog != nil {
			out.Visibility.SalesLog = *v.SalesLog
		}
		if v.InventoryLog != nil {
			out.Visibility.InventoryLog = *v.InventoryLog
		}
		if v.CompetitorReports != nil {
			out.Visibility.CompetitorReports = *v.CompetitorReports
		}
	}
	return out
}

// ResolvePolicy turns a stored (possibly nil or partial) record into a complete policy.
func ResolvePolicy(stored *PolicyPatch) GlobalPolicy {
	if stored == nil {
		return DefaultGlobalPolicy()
	}
	return MergePolicy(DefaultGlobalPolicy(), *stored)
}

// CombinePatches layers next over prev field by field, so a later partial update never
// erases fields an earlier one set.
func CombinePatches(prev, next PolicyPatch) PolicyPatch {
	out := prev
	if next.Title != nil {
		out.Title = next.Title
	}
	if next.ContactWhatsApp != nil {
		out.ContactWhatsApp = next.ContactWhatsApp
	}
	if next.Ticker != nil {
		t := TickerPatch{}
		if prev.Ticker != nil {
			t = *prev.Ticker
		}
		if next.Ticker.Text != nil {
			t.Text = next.Ticker.Text
		}
		if next.Ticker.ShowSales != nil {
			t.ShowSales = next.Ticker.ShowSales
		}
		if next.Ticker.Active != nil {
			t.Active = next.Ticker.Active
		}
		out.Ticker = &t
	}
	if next.Visibility != nil {
		v := VisibilityPatch{}
		if prev.Visibility != nil {
			v = *prev.Visibility
		}
		if next.Visibility.SalesLog != nil {
			v.SalesLog = next.Visibility.SalesLog
		}
		if next.Visibility.InventoryLog != nil {
			v.InventoryLog = next.Visibility.InventoryLog
		}
		if next.Visibility.CompetitorReports != nil {
			v.CompetitorReports = next.Visibility.CompetitorReports
		}
		out.Visibility = &v
	}
	return out
}
