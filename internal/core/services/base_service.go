package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fieldops_console/internal/apperrors"
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portssvc "github.com/SscSPs/fieldops_console/internal/core/ports/services"
	"github.com/SscSPs/fieldops_console/internal/middleware"
	"github.com/SscSPs/fieldops_console/internal/platform/realtime"
	"github.com/go-playground/validator/v10"
)

// validate checks write intents against the same tags gin binds requests with.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// validateStruct runs struct validation and wraps failures as apperrors.ErrValidation.
func validateStruct(req any) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}

// BaseService provides common functionality for all services
type BaseService struct {
	Permissions portssvc.PermissionSvc
	Events      realtime.Publisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogWarn logs a warning with consistent formatting
func (s *BaseService) LogWarn(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Warn(msg, keyvals...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Authorize resolves the caller's live capabilities and fails with apperrors.ErrForbidden
// unless c is granted. Without a resolver every check is denied.
func (s *BaseService) Authorize(ctx context.Context, accountID string, c domain.Capability) (*domain.Account, error) {
	if s.Permissions == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "No permission resolver configured",
			slog.String("account_id", accountID),
			slog.String("capability", string(c)))
		return nil, apperrors.ErrForbidden
	}
	account, _, err := s.Permissions.Require(ctx, accountID, c)
	if err != nil {
		s.LogDebug(ctx, "Capability check failed",
			slog.String("account_id", accountID),
			slog.String("capability", string(c)),
			slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

// Publish notifies live subscribers that topics changed.
func (s *BaseService) Publish(topics ...string) {
	if s.Events == nil {
		return
	}
	for _, t := range topics {
		s.Events.Publish(t)
	}
}

// ServiceOption is a functional option for configuring the shared parts of a service
type ServiceOption func(*BaseService)

// WithPermissions adds the capability resolver used by Authorize
func WithPermissions(p portssvc.PermissionSvc) ServiceOption {
	return func(s *BaseService) {
		s.Permissions = p
	}
}

// WithPublisher adds the change hub services publish to after a write
func WithPublisher(p realtime.Publisher) ServiceOption {
	return func(s *BaseService) {
		s.Events = p
	}
}

func newBase(options []ServiceOption) BaseService {
	var b BaseService
	for _, option := range options {
		option(&b)
	}
	return b
}
