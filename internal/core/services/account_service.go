package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	clock       clock.Clock
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(repo portsrepo.AccountRepositoryFacade, clk clock.Clock, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: newBase(options),
		accountRepo: repo,
		clock:       clk,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, actorID string) (*domain.Account, error) {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}
	grants := domain.DefaultMemberGrants()
	if req.Grants != nil {
		grants = *req.Grants
	}
	balance := domain.DefaultLeaveBalance()
	if req.Balance != nil {
		if !req.Balance.NonNegative() {
			return nil, fmt.Errorf("%w: leave balance must not be negative", apperrors.ErrValidation)
		}
		balance = *req.Balance
	}

	secret, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.clock.Now()
	account := domain.Account{
		AccountID:        uuid.NewString(),
		Username:         strings.TrimSpace(req.Username),
		CredentialSecret: secret,
		Role:             role,
		DisplayName:      strings.TrimSpace(req.DisplayName),
		EmployeeCode:     req.EmployeeCode,
		Phone:            req.Phone,
		Grants:           grants,
		Balance:          balance,
		CustomProducts:   []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save account", slog.String("username", account.Username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("role", string(account.Role)))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, actorID string) (*domain.Account, error) {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		account.DisplayName = strings.TrimSpace(*req.DisplayName)
	}
	if req.EmployeeCode != nil {
		account.EmployeeCode = *req.EmployeeCode
	}
	if req.Phone != nil {
		account.Phone = *req.Phone
	}
	if req.Role != nil && *req.Role != account.Role {
		if account.Role == domain.RoleAdmin {
			if err := s.ensureAnotherAdmin(ctx); err != nil {
				return nil, err
			}
		}
		account.Role = *req.Role
	}
	account.LastUpdatedAt = s.clock.Now()
	account.LastUpdatedBy = actorID

	if err := s.accountRepo.UpdateProfile(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	s.Publish(realtime.AccountTopic(accountID))

	s.LogInfo(ctx, "Account updated successfully", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) UpdateGrants(ctx context.Context, accountID string, grants domain.Grants, actorID string) (*domain.Account, error) {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	if err := s.accountRepo.UpdateGrants(ctx, accountID, grants, actorID, s.clock.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update grants", slog.String("account_id", accountID))
		}
		return nil, err
	}
	s.Publish(realtime.AccountTopic(accountID))
	s.LogInfo(ctx, "Account grants updated", slog.String("account_id", accountID))
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) UpdateCredential(ctx context.Context, accountID string, password string, actorID string) error {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return err
	}
	if err := validateStruct(dto.UpdateCredentialRequest{Password: password}); err != nil {
		return err
	}
	secret, err := utils.HashPassword(password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.accountRepo.UpdateCredential(ctx, accountID, secret, actorID, s.clock.Now()); err != nil {
		return err
	}
	s.LogInfo(ctx, "Account credential replaced", slog.String("account_id", accountID))
	return nil
}

// SetBalance overwrites the pools. It is also how an administrator re-credits days after
// voiding a transaction.
func (s *accountService) SetBalance(ctx context.Context, accountID string, balance domain.LeaveBalance, actorID string) (*domain.Account, error) {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return nil, err
	}
	if !balance.NonNegative() {
		return nil, fmt.Errorf("%w: leave balance must not be negative", apperrors.ErrValidation)
	}
	if err := s.accountRepo.SetBalance(ctx, accountID, balance, actorID, s.clock.Now()); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to set balance", slog.String("account_id", accountID))
		}
		return nil, err
	}
	s.Publish(realtime.AccountTopic(accountID))
	s.LogInfo(ctx, "Leave balance set",
		slog.String("account_id", accountID),
		slog.Any("balance", balance))
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string, actorID string) error {
	if _, err := s.Authorize(ctx, actorID, domain.CapManageAccounts); err != nil {
		return err
	}
	if accountID == actorID {
		return fmt.Errorf("%w: an account cannot delete itself", apperrors.ErrValidation)
	}
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return err
	}
	s.Publish(realtime.AccountTopic(accountID))
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) ListCustomProducts(ctx context.Context, accountID string) ([]string, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.CustomProducts == nil {
		return []string{}, nil
	}
	return account.CustomProducts, nil
}

// AddCustomProduct appends name to the caller's own list. There is no way to write another
// account's list.
func (s *accountService) AddCustomProduct(ctx context.Context, accountID string, name string) ([]string, error) {
	name = strings.TrimSpace(name)
	if err := validateStruct(dto.AddCustomProductRequest{Name: name}); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	for _, p := range account.CustomProducts {
		if strings.EqualFold(p, name) {
			return nil, fmt.Errorf("%w: product %q already in list", apperrors.ErrDuplicate, name)
		}
	}
	if len(account.CustomProducts) >= domain.MaxCustomProducts {
		return nil, fmt.Errorf("%w: at most %d custom products", apperrors.ErrValidation, domain.MaxCustomProducts)
	}

	products := append(append([]string{}, account.CustomProducts...), name)
	if err := s.accountRepo.SetCustomProducts(ctx, accountID, products, s.clock.Now()); err != nil {
		s.LogError(ctx, err, "Failed to save custom products", slog.String("account_id", accountID))
		return nil, err
	}
	s.Publish(realtime.AccountTopic(accountID))
	return products, nil
}

// ensureAnotherAdmin refuses to demote the last administrator.
func (s *accountService) ensureAnotherAdmin(ctx context.Context) error {
	n, err := s.accountRepo.CountAdmins(ctx)
	if err != nil {
		return err
	}
	if n <= 1 {
		return fmt.Errorf("%w: the last administrator cannot be demoted", apperrors.ErrValidation)
	}
	return nil
}
