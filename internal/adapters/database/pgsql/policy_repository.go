package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// policyRowID is the key of the only row in app_policy.
const policyRowID = 1

// PgxPolicyRepository stores the policy patch as JSONB in a single-row table.
type PgxPolicyRepository struct {
	BaseRepository
}

func NewPgxPolicyRepository(pool *pgxpool.Pool) *PgxPolicyRepository {
	return &PgxPolicyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PolicyRepository = (*PgxPolicyRepository)(nil)

func (r *PgxPolicyRepository) GetPolicy(ctx context.Context) (*domain.PolicyPatch, error) {
	var patch domain.PolicyPatch
	err := r.Pool.QueryRow(ctx, `SELECT patch FROM app_policy WHERE id = $1`, policyRowID).Scan(&patch)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err, "failed to read policy")
	}
	return &patch, nil
}

// SavePolicy merges patch over the stored patch under a row lock so concurrent partial
// updates never drop each other's fields.
func (r *PgxPolicyRepository) SavePolicy(ctx context.Context, patch domain.PolicyPatch, updatedBy string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `INSERT INTO app_policy (id, patch) VALUES ($1, '{}'::jsonb) ON CONFLICT (id) DO NOTHING`, policyRowID); err != nil {
		return mapError(err, "failed to initialise policy row")
	}

	var prev domain.PolicyPatch
	if err := tx.QueryRow(ctx, `SELECT patch FROM app_policy WHERE id = $1 FOR UPDATE`, policyRowID).Scan(&prev); err != nil {
		return mapError(err, "failed to lock policy row")
	}

	merged := domain.CombinePatches(prev, patch)
	if _, err := tx.Exec(ctx, `UPDATE app_policy SET patch = $2, last_updated_at = $3, last_updated_by = $4 WHERE id = $1`,
		policyRowID, merged, now, updatedBy); err != nil {
		return mapError(err, "failed to save policy")
	}
	return r.Commit(ctx, tx)
}
