package users_services

import (
	audit_logs "vazifa/internal/features/audit_logs"
	users_repositories "vazifa/internal/features/users/repositories"
)

var secretKeyRepository = &users_repositories.SecretKeyRepository{}
var userRepository = &users_repositories.UserRepository{}

var userService = &UserService{
	userRepository:      userRepository,
	secretKeyRepository: secretKeyRepository,
	auditLogService:     audit_logs.GetAuditLogService(),
}

func GetUserService() *UserService {
	return userService
}
