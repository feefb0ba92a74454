package audit_logs

import (
	"vazifa/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}

var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
	logger:             logger.GetLogger(),
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}
