package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/SscSPs/fieldops_console/internal/platform/config"
	"github.com/SscSPs/fieldops_console/internal/utils"
	"github.com/google/uuid"
)

// authService checks credentials against the account directory and issues JWTs whose
// subject is the account ID. Tokens carry no role or grants; those are resolved per request.
type authService struct {
	BaseService
	cfg         *config.Config
	accountRepo portsrepo.AccountRepositoryFacade
	presence    portssvc.PresenceSvc
	clock       clock.Clock
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, repo portsrepo.AccountRepositoryFacade, presence portssvc.PresenceSvc, clk clock.Clock) portssvc.AuthSvc {
	return &authService{
		cfg:         cfg,
		accountRepo: repo,
		presence:    presence,
		clock:       clk,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, username, password string) (string, time.Time, *domain.Account, error) {
	username = strings.TrimSpace(username)
	account, err := s.accountRepo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login attempt for unknown username", slog.String("username", username))
			return "", time.Time{}, nil, apperrors.ErrAuthentication
		}
		s.LogError(ctx, err, "Failed to look up account for login", slog.String("username", username))
		return "", time.Time{}, nil, err
	}

	if !utils.CheckPasswordHash(password, account.CredentialSecret) {
		s.LogInfo(ctx, "Login attempt with wrong password", slog.String("account_id", account.AccountID))
		return "", time.Time{}, nil, apperrors.ErrAuthentication
	}

	token, expiresAt, err := utils.GenerateJWT(account.AccountID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("account_id", account.AccountID))
		return "", time.Time{}, nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	s.LogInfo(ctx, "Account logged in", slog.String("account_id", account.AccountID))
	return token, expiresAt, account, nil
}

func (s *authService) Logout(ctx context.Context, accountID string) error {
	return s.presence.Logout(ctx, accountID)
}

// EnsureBootstrapAdmin creates the first administrator so a fresh deployment can be
// configured. It does nothing once any admin exists or when no password is configured.
func (s *authService) EnsureBootstrapAdmin(ctx context.Context, username, password string) error {
	n, err := s.accountRepo.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count administrators: %w", err)
	}
	if n > 0 {
		return nil
	}
	if password == "" {
		s.LogWarn(ctx, "No administrator exists and no bootstrap password is configured")
		return nil
	}
	if username == "" {
		username = "admin"
	}

	secret, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}
	now := s.clock.Now()
	admin := domain.Account{
		AccountID:        uuid.NewString(),
		Username:         username,
		CredentialSecret: secret,
		Role:             domain.RoleAdmin,
		DisplayName:      "Administrator",
		Balance:          domain.DefaultLeaveBalance(),
		CustomProducts:   []string{},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.accountRepo.SaveAccount(ctx, admin); err != nil {
		return fmt.Errorf("failed to create bootstrap administrator: %w", err)
	}
	s.LogInfo(ctx, "Bootstrap administrator created",
		slog.String("account_id", admin.AccountID),
		slog.String("username", username))
	return nil
}
