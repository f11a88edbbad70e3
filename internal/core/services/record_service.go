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
	"github.com/SscSPs/fieldops_console/internal/dto"
	"github.com/SscSPs/fieldops_console/internal/platform/clock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// recordService captures field records and filters listings per viewer. Repositories
// return whole collections; visibility is decided here, record by record.
type recordService struct {
	BaseService
	sales       portsrepo.SaleRepository
	inventory   portsrepo.InventoryRepository
	competitors portsrepo.CompetitorPriceRepository
	clock       clock.Clock
	ownCompany  string
}

// NewRecordService creates a new RecordSvcFacade. ownCompany names the company whose
// competitor-price rows every account may see.
func NewRecordService(
	sales portsrepo.SaleRepository,
	inventory portsrepo.InventoryRepository,
	competitors portsrepo.CompetitorPriceRepository,
	clk clock.Clock,
	ownCompany string,
	options ...ServiceOption,
) portssvc.RecordSvcFacade {
	return &recordService{
		BaseService: newBase(options),
		sales:       sales,
		inventory:   inventory,
		competitors: competitors,
		clock:       clk,
		ownCompany:  ownCompany,
	}
}

var _ portssvc.RecordSvcFacade = (*recordService)(nil)

func (s *recordService) viewer(ctx context.Context, accountID string) (*domain.Account, domain.CapabilityMatrix, error) {
	if s.Permissions == nil {
		return nil, nil, apperrors.ErrForbidden
	}
	return s.Permissions.MatrixFor(ctx, accountID)
}

func (s *recordService) requireAdmin(ctx context.Context, accountID string) error {
	account, _, err := s.viewer(ctx, accountID)
	if err != nil {
		return err
	}
	if !account.IsAdmin() {
		return fmt.Errorf("%w: only administrators delete field records", apperrors.ErrForbidden)
	}
	return nil
}

func (s *recordService) audit(ctx context.Context, actorID string, date string) (domain.RecordAudit, error) {
	actor, _, err := s.viewer(ctx, actorID)
	if err != nil {
		return domain.RecordAudit{}, err
	}
	now := s.clock.Now()
	d, err := time.ParseInLocation(dto.DateLayout, date, now.Location())
	if err != nil {
		return domain.RecordAudit{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, date)
	}
	return domain.RecordAudit{
		Date:          d,
		Timestamp:     now,
		CreatedBy:     actor.AccountID,
		CreatedByName: actor.DisplayName,
	}, nil
}

func checkPrice(product string, price decimal.Decimal) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price of %q must not be negative", apperrors.ErrValidation, product)
	}
	return nil
}

func recordFilter(params dto.ListRecordsParams) portsrepo.RecordFilter {
	return portsrepo.RecordFilter{
		Month:  params.Month,
		Market: strings.TrimSpace(params.Market),
	}
}

func (s *recordService) CreateSale(ctx context.Context, actorID string, req dto.CreateSaleRequest) (*domain.SaleRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	items := make([]domain.SaleItem, 0, len(req.Items))
	for _, it := range req.Items {
		if err := checkPrice(it.Product, it.Price); err != nil {
			return nil, err
		}
		items = append(items, domain.SaleItem{
			Product:  strings.TrimSpace(it.Product),
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	audit, err := s.audit(ctx, actorID, req.Date)
	if err != nil {
		return nil, err
	}

	rec := domain.SaleRecord{
		RecordID:    uuid.NewString(),
		Market:      strings.TrimSpace(req.Market),
		Items:       items,
		Total:       domain.ComputeTotal(items),
		RecordAudit: audit,
	}
	if err := s.sales.SaveSale(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save sale", slog.String("market", rec.Market))
		return nil, err
	}
	s.LogInfo(ctx, "Sale recorded",
		slog.String("record_id", rec.RecordID),
		slog.String("market", rec.Market),
		slog.String("total", rec.Total.String()))
	return &rec, nil
}

func (s *recordService) ListSales(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.SaleRecord, error) {
	viewer, matrix, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if !matrix.Allows(domain.CapViewSalesLog) {
		return nil, fmt.Errorf("%w: missing capability %s", apperrors.ErrForbidden, domain.CapViewSalesLog)
	}

	filter := recordFilter(params)
	if params.CreatedBy != "" {
		if matrix.Allows(domain.CapViewOthersSales) {
			filter.CreatedByName = strings.TrimSpace(params.CreatedBy)
		} else {
			s.LogDebug(ctx, "Ignoring creator filter without capability", slog.String("account_id", viewerID))
		}
	}

	all, err := s.sales.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, err
	}
	out := make([]domain.SaleRecord, 0, len(all))
	for _, rec := range all {
		if domain.CanViewRecord(viewer, matrix, rec.Meta(), s.ownCompany) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *recordService) SummariseSales(ctx context.Context, viewerID string, params dto.ListRecordsParams) (*domain.SalesSummary, error) {
	records, err := s.ListSales(ctx, viewerID, params)
	if err != nil {
		return nil, err
	}
	summary := domain.SummariseSales(records)
	return &summary, nil
}

func (s *recordService) DeleteSale(ctx context.Context, actorID string, recordID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.logDelete(ctx, "sale", recordID, s.sales.DeleteSale(ctx, recordID))
}

func (s *recordService) CreateInventory(ctx context.Context, actorID string, req dto.CreateInventoryRequest) (*domain.InventoryRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	items := make([]domain.InventoryItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.InventoryItem{Product: strings.TrimSpace(it.Product), Quantity: it.Quantity})
	}
	audit, err := s.audit(ctx, actorID, req.Date)
	if err != nil {
		return nil, err
	}

	rec := domain.InventoryRecord{
		RecordID:    uuid.NewString(),
		Market:      strings.TrimSpace(req.Market),
		Items:       items,
		RecordAudit: audit,
	}
	if err := s.inventory.SaveInventory(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save inventory count", slog.String("market", rec.Market))
		return nil, err
	}
	s.LogInfo(ctx, "Inventory count recorded", slog.String("record_id", rec.RecordID))
	return &rec, nil
}

func (s *recordService) ListInventory(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.InventoryRecord, error) {
	viewer, matrix, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	all, err := s.inventory.ListInventory(ctx, recordFilter(params))
	if err != nil {
		s.LogError(ctx, err, "Failed to list inventory counts")
		return nil, err
	}
	out := make([]domain.InventoryRecord, 0, len(all))
	for _, rec := range all {
		if domain.CanViewRecord(viewer, matrix, rec.Meta(), s.ownCompany) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *recordService) DeleteInventory(ctx context.Context, actorID string, recordID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.logDelete(ctx, "inventory", recordID, s.inventory.DeleteInventory(ctx, recordID))
}

func (s *recordService) CreateCompetitorPrice(ctx context.Context, actorID string, req dto.CreateCompetitorPriceRequest) (*domain.CompetitorPriceRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	items := make([]domain.CompetitorItem, 0, len(req.Items))
	for _, it := range req.Items {
		if err := checkPrice(it.Product, it.Price); err != nil {
			return nil, err
		}
		items = append(items, domain.CompetitorItem{Product: strings.TrimSpace(it.Product), Price: it.Price})
	}
	audit, err := s.audit(ctx, actorID, req.Date)
	if err != nil {
		return nil, err
	}

	rec := domain.CompetitorPriceRecord{
		RecordID:    uuid.NewString(),
		Market:      strings.TrimSpace(req.Market),
		Company:     strings.TrimSpace(req.Company),
		Items:       items,
		RecordAudit: audit,
	}
	if err := s.competitors.SaveCompetitorPrice(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to save competitor prices", slog.String("company", rec.Company))
		return nil, err
	}
	s.LogInfo(ctx, "Competitor prices recorded",
		slog.String("record_id", rec.RecordID),
		slog.String("company", rec.Company))
	return &rec, nil
}

func (s *recordService) ListCompetitorPrices(ctx context.Context, viewerID string, params dto.ListRecordsParams) ([]domain.CompetitorPriceRecord, error) {
	viewer, matrix, err := s.viewer(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	all, err := s.competitors.ListCompetitorPrices(ctx, recordFilter(params))
	if err != nil {
		s.LogError(ctx, err, "Failed to list competitor prices")
		return nil, err
	}
	out := make([]domain.CompetitorPriceRecord, 0, len(all))
	for _, rec := range all {
		if domain.CanViewRecord(viewer, matrix, rec.Meta(), s.ownCompany) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (s *recordService) DeleteCompetitorPrice(ctx context.Context, actorID string, recordID string) error {
	if err := s.requireAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.logDelete(ctx, "competitor_price", recordID, s.competitors.DeleteCompetitorPrice(ctx, recordID))
}

func (s *recordService) logDelete(ctx context.Context, kind, recordID string, err error) error {
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete field record",
				slog.String("kind", kind),
				slog.String("record_id", recordID))
		}
		return err
	}
	s.LogInfo(ctx, "Field record deleted",
		slog.String("kind", kind),
		slog.String("record_id", recordID))
	return nil
}
