package projects_services

import (
	"vazifa/internal/cache"
	"vazifa/internal/config"
	audit_logs "vazifa/internal/features/audit_logs"
	projects_models "vazifa/internal/features/projects/models"
	projects_repositories "vazifa/internal/features/projects/repositories"
	users_services "vazifa/internal/features/users/services"
	cache_utils "vazifa/internal/util/cache"
)

var projectRepository = &projects_repositories.ProjectRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var projectService = &ProjectService{
	projectRepository:    projectRepository,
	membershipRepository: membershipRepository,
	auditLogService:      audit_logs.GetAuditLogService(),
	projectCache:         makeProjectCache(),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	userService:          users_services.GetUserService(),
	auditLogService:      audit_logs.GetAuditLogService(),
	projectService:       projectService,
}

func GetProjectService() *ProjectService {
	return projectService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func makeProjectCache() *cache_utils.CacheUtil[projects_models.Project] {
	envVariables := config.GetEnv()

	// Tests and valkey-less deployments fall back to direct DB reads
	if envVariables.IsTesting || envVariables.ValkeyHost == "" {
		return nil
	}

	return cache_utils.NewCacheUtil[projects_models.Project](cache.GetCache(), "project:")
}
