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

type PgxPresenceRepository struct {
	BaseRepository
}

func NewPgxPresenceRepository(pool *pgxpool.Pool) *PgxPresenceRepository {
	return &PgxPresenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PresenceRepository = (*PgxPresenceRepository)(nil)

// SetPresence upserts the latest value for the account.
func (r *PgxPresenceRepository) SetPresence(ctx context.Context, p domain.Presence) error {
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO presence (account_id, online, updated_at) VALUES ($1, $2, $3)
		ON CONFLICT (account_id) DO UPDATE SET online = EXCLUDED.online, updated_at = EXCLUDED.updated_at`,
		p.AccountID, p.Online, p.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "failed to set presence")
	}
	return nil
}

func (r *PgxPresenceRepository) GetPresence(ctx context.Context, accountID string) (*domain.Presence, error) {
	rows, err := r.Pool.Query(ctx, `SELECT account_id, online, updated_at FROM presence WHERE account_id = $1`, accountID)
	if err != nil {
		return nil, mapError(err, "failed to query presence")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Presence])
	if err != nil {
		return nil, mapError(err, "failed to scan presence")
	}
	p := mapping.ToDomainPresence(m)
	return &p, nil
}

func (r *PgxPresenceRepository) ListPresence(ctx context.Context) ([]domain.Presence, error) {
	rows, err := r.Pool.Query(ctx, `SELECT account_id, online, updated_at FROM presence`)
	if err != nil {
		return nil, mapError(err, "failed to list presence")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Presence])
	if err != nil {
		return nil, mapError(err, "failed to scan presence")
	}
	out := make([]domain.Presence, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainPresence(m)
	}
	return out, nil
}
