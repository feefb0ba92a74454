package audit_logs

import (
	"time"

	audit_logs_models "vazifa/internal/features/audit_logs/models"
)

type GetAuditLogsRequest struct {
	Limit      int        `form:"limit"`
	Offset     int        `form:"offset"`
	BeforeDate *time.Time `form:"beforeDate"`
}

type GetAuditLogsResponse struct {
	AuditLogs []*audit_logs_models.AuditLog `json:"auditLogs"`
	Limit     int                           `json:"limit"`
	Offset    int                           `json:"offset"`
}
