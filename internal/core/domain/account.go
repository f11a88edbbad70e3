package domain

import "fmt"

// Role decides whether an account is subject to grants and policy switches at all.
type Role string

const (
	RoleAdmin  Role = "ADMIN"
	RoleMember Role = "MEMBER"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Grants are the per-account capability switches an administrator opts an account into.
// A missing grant is the zero value, i.e. not granted.
type Grants struct {
	CanViewSalesLog          bool `json:"canViewSalesLog"`
	CanViewInventoryLog      bool `json:"canViewInventoryLog"`
	CanViewCompetitorReports bool `json:"canViewCompetitorReports"`
	CanViewAllSales          bool `json:"canViewAllSales"`
	CanViewOthersSales       bool `json:"canViewOthersSales"`
}

// DefaultMemberGrants returns the grants a newly created member starts with.
func DefaultMemberGrants() Grants {
	return Grants{
		CanViewSalesLog:          true,
		CanViewInventoryLog:      true,
		CanViewCompetitorReports: true,
	}
}

// Pool identifies one of the four typed leave balances.
type Pool string

const (
	PoolAnnual Pool = "annual"
	PoolCasual Pool = "casual"
	PoolSick   Pool = "sick"
	PoolExam   Pool = "exams"
)

// AllPools lists the pools in display order.
var AllPools = []Pool{PoolAnnual, PoolCasual, PoolSick, PoolExam}

// Valid reports whether p names a known pool.
func (p Pool) Valid() bool {
	switch p {
	case PoolAnnual, PoolCasual, PoolSick, PoolExam:
		return true
	}
	return false
}

// LeaveBalance holds the remaining days of each pool. Every value is >= 0.
type LeaveBalance struct {
	Annual int `json:"annual"`
	Casual int `json:"casual"`
	Sick   int `json:"sick"`
	Exam   int `json:"exams"`
}

// DefaultLeaveBalance is the balance a freshly created account receives.
func DefaultLeaveBalance() LeaveBalance {
	return LeaveBalance{Annual: 21, Casual: 7, Sick: 15, Exam: 0}
}

// Get returns the remaining days in pool p.
func (b LeaveBalance) Get(p Pool) (int, error) {
	switch p {
	case PoolAnnual:
		return b.Annual, nil
	case PoolCasual:
		return b.Casual, nil
	case PoolSick:
		return b.Sick, nil
	case PoolExam:
		return b.Exam, nil
	}
	return 0, fmt.Errorf("unknown leave pool %q", p)
}

// With returns a copy of b with pool p set to days.
func (b LeaveBalance) With(p Pool, days int) (LeaveBalance, error) {
	switch p {
	case PoolAnnual:
		b.Annual = days
	case PoolCasual:
		b.Casual = days
	case PoolSick:
		b.Sick = days
	case PoolExam:
		b.Exam = days
	default:
		return b, fmt.Errorf("unknown leave pool %q", p)
	}
	return b, nil
}

// NonNegative reports whether every pool is >= 0.
func (b LeaveBalance) NonNegative() bool {
	return b.Annual >= 0 && b.Casual >= 0 && b.Sick >= 0 && b.Exam >= 0
}

// MaxCustomProducts caps the per-account custom product list.
const MaxCustomProducts = 50

// Account is a staff member of the console: identity, role, grants and leave balances.
type Account struct {
	AccountID        string       `json:"accountID"`
	Username         string       `json:"username"`
	CredentialSecret string       `json:"-"` // bcrypt hash, never serialised
	Role             Role         `json:"role"`
	DisplayName      string       `json:"displayName"`
	EmployeeCode     string       `json:"employeeCode"`
	Phone            string       `json:"phone"`
	Grants           Grants       `json:"grants"`
	Balance          LeaveBalance `json:"balance"`
	CustomProducts   []string     `json:"customProducts"`
	AuditFields
}

// IsAdmin reports whether the account holds the administrator role.
func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
