package mapping

import (
	"github.com/SscSPs/fieldops_console/internal/core/domain"
	"github.com/SscSPs/fieldops_console/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

func toModelRecordAudit(d domain.RecordAudit) models.RecordAudit {
	return models.RecordAudit{
		RecordDate:    d.Date,
		RecordedAt:    d.Timestamp,
		CreatedBy:     d.CreatedBy,
		CreatedByName: d.CreatedByName,
	}
}

func toDomainRecordAudit(m models.RecordAudit) domain.RecordAudit {
	return domain.RecordAudit{
		Date:          m.RecordDate,
		Timestamp:     m.RecordedAt,
		CreatedBy:     m.CreatedBy,
		CreatedByName: m.CreatedByName,
	}
}
