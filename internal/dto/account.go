package dto

import (
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a new staff account.
type CreateAccountRequest struct {
	Username     string               `json:"username" binding:"required,min=3,max=64"`
	Password     string               `json:"password" binding:"required,min=4,max=72"`
	Role         domain.Role          `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"` // defaults to MEMBER
	DisplayName  string               `json:"displayName" binding:"required,max=128"`
	EmployeeCode string               `json:"employeeCode" binding:"max=32"`
	Phone        string               `json:"phone" binding:"max=32"`
	Grants       *domain.Grants       `json:"grants"`  // Optional, defaults apply when nil
	Balance      *domain.LeaveBalance `json:"balance"` // Optional, defaults apply when nil
}

// UpdateAccountRequest defines the profile fields an administrator may change.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	DisplayName  *string      `json:"displayName" binding:"omitempty,min=1,max=128"`
	EmployeeCode *string      `json:"employeeCode" binding:"omitempty,max=32"`
	Phone        *string      `json:"phone" binding:"omitempty,max=32"`
	Role         *domain.Role `json:"role" binding:"omitempty,oneof=ADMIN MEMBER"`
}

// UpdateGrantsRequest replaces every grant of an account.
type UpdateGrantsRequest struct {
	CanViewSalesLog          bool `json:"canViewSalesLog"`
	CanViewInventoryLog      bool `json:"canViewInventoryLog"`
	CanViewCompetitorReports bool `json:"canViewCompetitorReports"`
	CanViewAllSales          bool `json:"canViewAllSales"`
	CanViewOthersSales       bool `json:"canViewOthersSales"`
}

// ToGrants converts the request into domain grants.
func (r UpdateGrantsRequest) ToGrants() domain.Grants {
	return domain.Grants(r)
}

// UpdateCredentialRequest replaces an account's password.
type UpdateCredentialRequest struct {
	Password string `json:"password" binding:"required,min=4,max=72"`
}

// SetBalanceRequest overwrites all leave pools of an account.
type SetBalanceRequest struct {
	Annual int `json:"annual" binding:"gte=0,lte=366"`
	Casual int `json:"casual" binding:"gte=0,lte=366"`
	Sick   int `json:"sick" binding:"gte=0,lte=366"`
	Exam   int `json:"exams" binding:"gte=0,lte=366"`
}

// ToLeaveBalance converts the request into a domain balance.
func (r SetBalanceRequest) ToLeaveBalance() domain.LeaveBalance {
	return domain.LeaveBalance{Annual: r.Annual, Casual: r.Casual, Sick: r.Sick, Exam: r.Exam}
}

// AddCustomProductRequest appends a product name to the caller's own list.
type AddCustomProductRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// CustomProductsResponse wraps the caller's custom product list.
type CustomProductsResponse struct {
	Products []string `json:"products"`
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account without the credential secret.
type AccountResponse struct {
	AccountID      string              `json:"accountID"`
	Username       string              `json:"username"`
	Role           domain.Role         `json:"role"`
	DisplayName    string              `json:"displayName"`
	EmployeeCode   string              `json:"employeeCode"`
	Phone          string              `json:"phone"`
	Grants         domain.Grants       `json:"grants"`
	Balance        domain.LeaveBalance `json:"balance"`
	CustomProducts []string            `json:"customProducts"`
	CreatedAt      time.Time           `json:"createdAt"`
	CreatedBy      string              `json:"createdBy"`
	LastUpdatedAt  time.Time           `json:"lastUpdatedAt"`
	LastUpdatedBy  string              `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	products := acc.CustomProducts
	if products == nil {
		products = []string{}
	}
	return AccountResponse{
		AccountID:      acc.AccountID,
		Username:       acc.Username,
		Role:           acc.Role,
		DisplayName:    acc.DisplayName,
		EmployeeCode:   acc.EmployeeCode,
		Phone:          acc.Phone,
		Grants:         acc.Grants,
		Balance:        acc.Balance,
		CustomProducts: products,
		CreatedAt:      acc.CreatedAt,
		CreatedBy:      acc.CreatedBy,
		LastUpdatedAt:  acc.LastUpdatedAt,
		LastUpdatedBy:  acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
