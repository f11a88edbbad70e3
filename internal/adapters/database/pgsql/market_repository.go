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

type PgxMarketRepository struct {
	BaseRepository
}

func NewPgxMarketRepository(pool *pgxpool.Pool) *PgxMarketRepository {
	return &PgxMarketRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.MarketRepository = (*PgxMarketRepository)(nil)

// SaveMarket relies on the unique index over lower(name) for duplicate detection.
func (r *PgxMarketRepository) SaveMarket(ctx context.Context, d domain.Market) error {
	m := mapping.ToModelMarket(d)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO markets (market_id, name, created_by, created_at)
		VALUES ($1, $2, $3, $4)`,
		m.MarketID, m.Name, m.CreatedBy, m.CreatedAt,
	)
	if err != nil {
		return mapError(err, "failed to save market")
	}
	return nil
}

func (r *PgxMarketRepository) ListMarkets(ctx context.Context) ([]domain.Market, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT market_id, name, created_by, created_at
		FROM markets ORDER BY created_at, name`)
	if err != nil {
		return nil, mapError(err, "failed to list markets")
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Market])
	if err != nil {
		return nil, mapError(err, "failed to scan markets")
	}
	return mapping.ToDomainMarketSlice(ms), nil
}
