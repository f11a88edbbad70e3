package pgsql

import (
	"context"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/SscSPs/fieldops_console/internal/models"
	"github.com/SscSPs/fieldops_console/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	BaseRepository
}

func NewPgxNotificationRepository(pool *pgxpool.Pool) *PgxNotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepository = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	m := mapping.ToModelNotification(n)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO notifications (notification_id, target_account_id, message, sender_name, sent_at, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.NotificationID, m.TargetAccountID, m.Message, m.SenderName, m.SentAt, m.IsRead,
	)
	if err != nil {
		return mapError(err, "failed to save notification")
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByTarget(ctx context.Context, accountID string) ([]domain.Notification, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT notification_id, target_account_id, message, sender_name, sent_at, is_read
		FROM notifications WHERE target_account_id = $1 ORDER BY sent_at DESC`, accountID)
	if err != nil {
		return nil, mapError(err, "failed to list notifications")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Notification])
	if err != nil {
		return nil, mapError(err, "failed to scan notifications")
	}
	return mapping.ToDomainNotificationSlice(ms), nil
}

// MarkNotificationRead only matches rows addressed to accountID, so marking someone
// else's notification reads as not found.
func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID string, accountID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND target_account_id = $2`,
		notificationID, accountID)
	if err != nil {
		return mapError(err, "failed to mark notification read")
	}
	return expectOne(tag)
}
