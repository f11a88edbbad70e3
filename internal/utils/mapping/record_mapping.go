package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

// ToModelSaleRecord converts a domain SaleRecord to its row form.
func ToModelSaleRecord(d domain.SaleRecord) models.SaleRecord {
	items := make([]models.SaleItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.SaleItem{Product: it.Product, Price: it.Price, Quantity: it.Quantity}
	}
	return models.SaleRecord{
		RecordID:    d.RecordID,
		Market:      d.Market,
		Items:       items,
		Total:       d.Total,
		RecordAudit: toModelRecordAudit(d.RecordAudit),
	}
}

// ToDomainSaleRecord converts a sale row to the domain type.
func ToDomainSaleRecord(m models.SaleRecord) domain.SaleRecord {
	items := make([]domain.SaleItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.SaleItem{Product: it.Product, Price: it.Price, Quantity: it.Quantity}
	}
	return domain.SaleRecord{
		RecordID:    m.RecordID,
		Market:      m.Market,
		Items:       items,
		Total:       m.Total,
		RecordAudit: toDomainRecordAudit(m.RecordAudit),
	}
}

func ToModelInventoryRecord(d domain.InventoryRecord) models.InventoryRecord {
	items := make([]models.InventoryItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.InventoryItem{Product: it.Product, Quantity: it.Quantity}
	}
	return models.InventoryRecord{
		RecordID:    d.RecordID,
		Market:      d.Market,
		Items:       items,
		RecordAudit: toModelRecordAudit(d.RecordAudit),
	}
}

func ToDomainInventoryRecord(m models.InventoryRecord) domain.InventoryRecord {
	items := make([]domain.InventoryItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.InventoryItem{Product: it.Product, Quantity: it.Quantity}
	}
	return domain.InventoryRecord{
		RecordID:    m.RecordID,
		Market:      m.Market,
		Items:       items,
		RecordAudit: toDomainRecordAudit(m.RecordAudit),
	}
}

func ToModelCompetitorPriceRecord(d domain.CompetitorPriceRecord) models.CompetitorPriceRecord {
	items := make([]models.CompetitorItem, len(d.Items))
	for i, it := range d.Items {
		items[i] = models.CompetitorItem{Product: it.Product, Price: it.Price}
	}
	return models.CompetitorPriceRecord{
		RecordID:    d.RecordID,
		Market:      d.Market,
		Company:     d.Company,
		Items:       items,
		RecordAudit: toModelRecordAudit(d.RecordAudit),
	}
}

func ToDomainCompetitorPriceRecord(m models.CompetitorPriceRecord) domain.CompetitorPriceRecord {
	items := make([]domain.CompetitorItem, len(m.Items))
	for i, it := range m.Items {
		items[i] = domain.CompetitorItem{Product: it.Product, Price: it.Price}
	}
	return domain.CompetitorPriceRecord{
		RecordID:    m.RecordID,
		Market:      m.Market,
		Company:     m.Company,
		Items:       items,
		RecordAudit: toDomainRecordAudit(m.RecordAudit),
	}
}
