package domain

// Capability is a named right whose value is derived from role, grants and global policy.
// The set is closed; add a case to capabilityValue when adding a constant here.
type Capability string

const (
	CapViewSalesLog          Capability = "VIEW_SALES_LOG"
	CapViewInventoryLog      Capability = "VIEW_INVENTORY_LOG"
	CapViewCompetitorReports Capability = "VIEW_COMPETITOR_REPORTS"
	CapViewAllSales          Capability = "VIEW_ALL_SALES"
	CapViewOthersSales       Capability = "VIEW_OTHERS_SALES"
	CapManageSettings        Capability = "MANAGE_SETTINGS"
	CapManageAccounts        Capability = "MANAGE_ACCOUNTS"
	CapManageLedger          Capability = "MANAGE_LEDGER"
	CapViewPresence          Capability = "VIEW_PRESENCE"
)

// AllCapabilities lists every capability; a resolved matrix always has exactly these keys.
var AllCapabilities = []Capability{
	CapViewSalesLog,
	CapViewInventoryLog,
	CapViewCompetitorReports,
	CapViewAllSales,
	CapViewOthersSales,
	CapManageSettings,
	CapManageAccounts,
	CapManageLedger,
	CapViewPresence,
}

// Valid reports whether c is a known capability.
func (c Capability) Valid() bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

// CapabilityMatrix is the resolved answer to "may this account do X". It is derived on
// demand and never persisted.
type CapabilityMatrix map[Capability]bool

// Allows returns the matrix entry for c; unknown capabilities are denied.
func (m CapabilityMatrix) Allows(c Capability) bool {
	return m[c]
}

// Resolve computes the capability matrix for account under policy. It is total: a nil
// account resolves to all-false.
func Resolve(account *Account, policy GlobalPolicy) CapabilityMatrix {
	matrix := make(CapabilityMatrix, len(AllCapabilities))
	for _, c := range AllCapabilities {
		matrix[c] = capabilityValue(c, account, policy)
	}
	return matrix
}

func capabilityValue(c Capability, account *Account, policy GlobalPolicy) bool {
	if account == nil {
		return false
	}
	if account.IsAdmin() {
		return true
	}
	g := account.Grants
	v := policy.Visibility
	switch c {
	case CapViewSalesLog:
		return v.SalesLog && g.CanViewSalesLog
	case CapViewInventoryLog:
		return v.InventoryLog && g.CanViewInventoryLog
	case CapViewCompetitorReports:
		return v.CompetitorReports && g.CanViewCompetitorReports
	case CapViewAllSales:
		return g.CanViewAllSales
	case CapViewOthersSales:
		return g.CanViewOthersSales
	case CapManageSettings, CapManageAccounts, CapManageLedger, CapViewPresence:
		return false
	}
	return false
}
