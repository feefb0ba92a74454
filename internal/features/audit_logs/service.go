package audit_logs

import (
	"log/slog"
	"time"

	audit_logs_models "vazifa/internal/features/audit_logs/models"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	logger             *slog.Logger
}

// WriteAuditLog is fire-and-forget: a failed audit write must never fail
// the operation that produced it.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	projectID *uuid.UUID,
) {
	auditLog := &audit_logs_models.AuditLog{
		UserID:    userID,
		ProjectID: projectID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.auditLogRepository.Create(auditLog); err != nil {
		s.logger.Error("failed to create audit log", "error", err)
	}
}

func (s *AuditLogService) GetProjectAuditLogs(
	projectID uuid.UUID,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByProject(projectID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Limit:     limit,
		Offset:    offset,
	}, nil
}
