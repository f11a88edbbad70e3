package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	products := d.CustomProducts
	if products == nil {
		products = []string{}
	}
	return models.Account{
		AccountID:        d.AccountID,
		Username:         d.Username,
		CredentialSecret: d.CredentialSecret,
		Role:             models.Role(d.Role),
		DisplayName:      d.DisplayName,
		EmployeeCode:     d.EmployeeCode,
		Phone:            d.Phone,

		CanViewSalesLog:          d.Grants.CanViewSalesLog,
		CanViewInventoryLog:      d.Grants.CanViewInventoryLog,
		CanViewCompetitorReports: d.Grants.CanViewCompetitorReports,
		CanViewAllSales:          d.Grants.CanViewAllSales,
		CanViewOthersSales:       d.Grants.CanViewOthersSales,

		AnnualBalance: d.Balance.Annual,
		CasualBalance: d.Balance.Casual,
		SickBalance:   d.Balance.Sick,
		ExamBalance:   d.Balance.Exam,

		CustomProducts: products,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:        m.AccountID,
		Username:         m.Username,
		CredentialSecret: m.CredentialSecret,
		Role:             domain.Role(m.Role),
		DisplayName:      m.DisplayName,
		EmployeeCode:     m.EmployeeCode,
		Phone:            m.Phone,
		Grants: domain.Grants{
			CanViewSalesLog:          m.CanViewSalesLog,
			CanViewInventoryLog:      m.CanViewInventoryLog,
			CanViewCompetitorReports: m.CanViewCompetitorReports,
			CanViewAllSales:          m.CanViewAllSales,
			CanViewOthersSales:       m.CanViewOthersSales,
		},
		Balance: domain.LeaveBalance{
			Annual: m.AnnualBalance,
			Casual: m.CasualBalance,
			Sick:   m.SickBalance,
			Exam:   m.ExamBalance,
		},
		CustomProducts: m.CustomProducts,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
