package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/fieldops_console/internal/core/domain"
	portsrepo "github.com/SscSPs/fieldops_console/internal/core/ports/repositories"
	"github.com/SscSPs/fieldops_console/internal/models"
	"github.com/SscSPs/fieldops_console/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordAuditColumns = `record_date, recorded_at, created_by, created_by_name`

// PgxRecordRepository persists the three field-record collections. Line items live in a
// JSONB column next to the record.
type PgxRecordRepository struct {
	BaseRepository
}

func NewPgxRecordRepository(pool *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.SaleRepository            = (*PgxRecordRepository)(nil)
	_ portsrepo.InventoryRepository       = (*PgxRecordRepository)(nil)
	_ portsrepo.CompetitorPriceRepository = (*PgxRecordRepository)(nil)
)

// filterClause renders f as a WHERE clause with positional arguments.
func filterClause(f portsrepo.RecordFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Month != "" {
		args = append(args, f.Month)
		conds = append(conds, fmt.Sprintf("to_char(record_date, 'YYYY-MM') = $%d", len(args)))
	}
	if f.Market != "" {
		args = append(args, f.Market)
		conds = append(conds, fmt.Sprintf("market = $%d", len(args)))
	}
	if f.CreatedByName != "" {
		args = append(args, f.CreatedByName)
		conds = append(conds, fmt.Sprintf("created_by_name = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func listRecords[M any](ctx context.Context, r *PgxRecordRepository, table, columns string, f portsrepo.RecordFilter) ([]M, error) {
	where, args := filterClause(f)
	query := `SELECT ` + columns + ` FROM ` + table + where + ` ORDER BY record_date DESC, recorded_at DESC`
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, "failed to list "+table)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[M])
	if err != nil {
		return nil, mapError(err, "failed to scan "+table)
	}
	return ms, nil
}

func (r *PgxRecordRepository) deleteRecord(ctx context.Context, table, recordID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM `+table+` WHERE record_id = $1`, recordID)
	if err != nil {
		return mapError(err, "failed to delete from "+table)
	}
	return expectOne(tag)
}

const saleColumns = `record_id, market, items, total, ` + recordAuditColumns

func (r *PgxRecordRepository) SaveSale(ctx context.Context, rec domain.SaleRecord) error {
	m := mapping.ToModelSaleRecord(rec)
	_, err := r.Pool.Exec(ctx, `INSERT INTO sale_records (`+saleColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.RecordID, m.Market, m.Items, m.Total, m.RecordDate, m.RecordedAt, m.CreatedBy, m.CreatedByName)
	if err != nil {
		return mapError(err, "failed to save sale")
	}
	return nil
}

func (r *PgxRecordRepository) ListSales(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.SaleRecord, error) {
	ms, err := listRecords[models.SaleRecord](ctx, r, "sale_records", saleColumns, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.SaleRecord, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainSaleRecord(m)
	}
	return out, nil
}

func (r *PgxRecordRepository) FindSaleByID(ctx context.Context, recordID string) (*domain.SaleRecord, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+saleColumns+` FROM sale_records WHERE record_id = $1`, recordID)
	if err != nil {
		return nil, mapError(err, "failed to query sale")
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.SaleRecord])
	if err != nil {
		return nil, mapError(err, "failed to scan sale")
	}
	rec := mapping.ToDomainSaleRecord(m)
	return &rec, nil
}

func (r *PgxRecordRepository) DeleteSale(ctx context.Context, recordID string) error {
	return r.deleteRecord(ctx, "sale_records", recordID)
}

const inventoryColumns = `record_id, market, items, ` + recordAuditColumns

func (r *PgxRecordRepository) SaveInventory(ctx context.Context, rec domain.InventoryRecord) error {
	m := mapping.ToModelInventoryRecord(rec)
	_, err := r.Pool.Exec(ctx, `INSERT INTO inventory_records (`+inventoryColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.RecordID, m.Market, m.Items, m.RecordDate, m.RecordedAt, m.CreatedBy, m.CreatedByName)
	if err != nil {
		return mapError(err, "failed to save inventory count")
	}
	return nil
}

func (r *PgxRecordRepository) ListInventory(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.InventoryRecord, error) {
	ms, err := listRecords[models.InventoryRecord](ctx, r, "inventory_records", inventoryColumns, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.InventoryRecord, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainInventoryRecord(m)
	}
	return out, nil
}

func (r *PgxRecordRepository) DeleteInventory(ctx context.Context, recordID string) error {
	return r.deleteRecord(ctx, "inventory_records", recordID)
}

const competitorColumns = `record_id, market, company, items, ` + recordAuditColumns

func (r *PgxRecordRepository) SaveCompetitorPrice(ctx context.Context, rec domain.CompetitorPriceRecord) error {
	m := mapping.ToModelCompetitorPriceRecord(rec)
	_, err := r.Pool.Exec(ctx, `INSERT INTO competitor_price_records (`+competitorColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.RecordID, m.Market, m.Company, m.Items, m.RecordDate, m.RecordedAt, m.CreatedBy, m.CreatedByName)
	if err != nil {
		return mapError(err, "failed to save competitor prices")
	}
	return nil
}

func (r *PgxRecordRepository) ListCompetitorPrices(ctx context.Context, filter portsrepo.RecordFilter) ([]domain.CompetitorPriceRecord, error) {
	ms, err := listRecords[models.CompetitorPriceRecord](ctx, r, "competitor_price_records", competitorColumns, filter)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CompetitorPriceRecord, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainCompetitorPriceRecord(m)
	}
	return out, nil
}

func (r *PgxRecordRepository) DeleteCompetitorPrice(ctx context.Context, recordID string) error {
	return r.deleteRecord(ctx, "competitor_price_records", recordID)
}
