package models

// Role mirrors the role column.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Account is a row of the accounts table. Grants and leave pools are plain columns so
// each writer can update its own slice of the row.
type Account struct {
	AccountID        string `db:"account_id"`
	Username         string `db:"username"`
	CredentialSecret string `db:"credential_secret"`
	Role             Role   `db:"role"`
	DisplayName      string `db:"display_name"`
	EmployeeCode     string `db:"employee_code"`
	Phone            string `db:"phone"`

	CanViewSalesLog          bool `db:"can_view_sales_log"`
	CanViewInventoryLog      bool `db:"can_view_inventory_log"`
	CanViewCompetitorReports bool `db:"can_view_competitor_reports"`
	CanViewAllSales          bool `db:"can_view_all_sales"`
	CanViewOthersSales       bool `db:"can_view_others_sales"`

	AnnualBalance int `db:"annual_balance"`
	CasualBalance int `db:"casual_balance"`
	SickBalance   int `db:"sick_balance"`
	ExamBalance   int `db:"exam_balance"`

	CustomProducts []string `db:"custom_products"` // text[]
	AuditFields
}
