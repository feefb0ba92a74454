package audit_logs

import (
	"time"

	audit_logs_models "vazifa/internal/features/audit_logs/models"
	"vazifa/internal/storage"

	"github.com/google/uuid"
)

type AuditLogRepository struct{}

func (r *AuditLogRepository) Create(auditLog *audit_logs_models.AuditLog) error {
	if auditLog.ID == uuid.Nil {
		auditLog.ID = uuid.New()
	}

	return storage.GetDb().Create(auditLog).Error
}

func (r *AuditLogRepository) GetByProject(
	projectID uuid.UUID,
	limit, offset int,
	beforeDate *time.Time,
) ([]*audit_logs_models.AuditLog, error) {
	auditLogs := make([]*audit_logs_models.AuditLog, 0)

	query := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset)

	if beforeDate != nil {
		query = query.Where("created_at < ?", *beforeDate)
	}

	err := query.Find(&auditLogs).Error

	return auditLogs, err
}
