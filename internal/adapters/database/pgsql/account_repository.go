package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/SscSPs/fieldops_console/internal/models"
	"github.com/SscSPs/fieldops_console/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `account_id, username, credential_secret, role, display_name, employee_code, phone,
	can_view_sales_log, can_view_inventory_log, can_view_competitor_reports, can_view_all_sales, can_view_others_sales,
	annual_balance, casual_balance, sick_balance, exam_balance, custom_products,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// NewPgxAccountRepository creates a new repository for account data.
func NewPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func (r *PgxAccountRepository) findOne(ctx context.Context, where string, arg any) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE ` + where
	rows, err := r.Pool.Query(ctx, query, arg)
	if err != nil {
		return nil, mapError(err, "failed to query account")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err, "failed to scan account")
	}
	acc := mapping.ToDomainAccount(m)
	return &acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findOne(ctx, "account_id = $1", accountID)
}

// FindAccountByUsername retrieves an account by its login name.
func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, "username = $1", username)
}

// ListAccounts retrieves every account ordered by display name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY display_name, account_id`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, mapError(err, "failed to list accounts")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapError(err, "failed to scan accounts")
	}
	return mapping.ToDomainAccountSlice(ms), nil
}

func (r *PgxAccountRepository) CountAdmins(ctx context.Context) (int, error) {
	var n int
	err := r.Pool.QueryRow(ctx, `SELECT count(*) FROM accounts WHERE role = $1`, models.RoleAdmin).Scan(&n)
	if err != nil {
		return 0, mapError(err, "failed to count admins")
	}
	return n, nil
}

// SaveAccount inserts a new account. A taken ID or username is reported as ErrDuplicate.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.AccountID, m.Username, m.CredentialSecret, m.Role, m.DisplayName, m.EmployeeCode, m.Phone,
		m.CanViewSalesLog, m.CanViewInventoryLog, m.CanViewCompetitorReports, m.CanViewAllSales, m.CanViewOthersSales,
		m.AnnualBalance, m.CasualBalance, m.SickBalance, m.ExamBalance, m.CustomProducts,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapError(err, fmt.Sprintf("failed to save account %s", m.AccountID))
	}
	return nil
}

func (r *PgxAccountRepository) exec(ctx context.Context, msg string, query string, args ...any) error {
	tag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, msg)
	}
	return expectOne(tag)
}

// UpdateProfile overwrites the descriptive fields and role of an account.
func (r *PgxAccountRepository) UpdateProfile(ctx context.Context, account domain.Account) error {
	return r.exec(ctx, "failed to update account profile", `
		UPDATE accounts
		SET display_name = $2, employee_code = $3, phone = $4, role = $5, last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1`,
		account.AccountID, account.DisplayName, account.EmployeeCode, account.Phone, string(account.Role),
		account.LastUpdatedAt, account.LastUpdatedBy,
	)
}

func (r *PgxAccountRepository) UpdateGrants(ctx context.Context, accountID string, grants domain.Grants, updatedBy string, now time.Time) error {
	return r.exec(ctx, "failed to update account grants", `
		UPDATE accounts
		SET can_view_sales_log = $2, can_view_inventory_log = $3, can_view_competitor_reports = $4,
			can_view_all_sales = $5, can_view_others_sales = $6, last_updated_at = $7, last_updated_by = $8
		WHERE account_id = $1`,
		accountID, grants.CanViewSalesLog, grants.CanViewInventoryLog, grants.CanViewCompetitorReports,
		grants.CanViewAllSales, grants.CanViewOthersSales, now, updatedBy,
	)
}

func (r *PgxAccountRepository) UpdateCredential(ctx context.Context, accountID string, secret string, updatedBy string, now time.Time) error {
	return r.exec(ctx, "failed to update credential", `
		UPDATE accounts SET credential_secret = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $1`,
		accountID, secret, now, updatedBy,
	)
}

// SetBalance overwrites all four pools in one statement.
func (r *PgxAccountRepository) SetBalance(ctx context.Context, accountID string, balance domain.LeaveBalance, updatedBy string, now time.Time) error {
	return r.exec(ctx, "failed to set leave balance", `
		UPDATE accounts
		SET annual_balance = $2, casual_balance = $3, sick_balance = $4, exam_balance = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE account_id = $1`,
		accountID, balance.Annual, balance.Casual, balance.Sick, balance.Exam, now, updatedBy,
	)
}

func (r *PgxAccountRepository) SetCustomProducts(ctx context.Context, accountID string, products []string, now time.Time) error {
	if products == nil {
		products = []string{}
	}
	return r.exec(ctx, "failed to set custom products", `
		UPDATE accounts SET custom_products = $2, last_updated_at = $3 WHERE account_id = $1`,
		accountID, products, now,
	)
}

// DeleteAccount removes the account. Presence rows go with it through ON DELETE CASCADE.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	return r.exec(ctx, "failed to delete account", `DELETE FROM accounts WHERE account_id = $1`, accountID)
}
