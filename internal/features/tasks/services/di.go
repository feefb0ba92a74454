package tasks_services

import (
	audit_logs "vazifa/internal/features/audit_logs"
	projects_repositories "vazifa/internal/features/projects/repositories"
	projects_services "vazifa/internal/features/projects/services"
	tasks_repositories "vazifa/internal/features/tasks/repositories"
	users_services "vazifa/internal/features/users/services"
)

var taskRepository = &tasks_repositories.TaskRepository{}
var taskCollaboratorRepository = &tasks_repositories.TaskCollaboratorRepository{}
var membershipRepository = &projects_repositories.MembershipRepository{}

var taskService = &TaskService{
	taskRepository:  taskRepository,
	projectService:  projects_services.GetProjectService(),
	auditLogService: audit_logs.GetAuditLogService(),
}

var collaboratorService = &CollaboratorService{
	taskRepository:             taskRepository,
	taskCollaboratorRepository: taskCollaboratorRepository,
	membershipRepository:       membershipRepository,
	projectService:             projects_services.GetProjectService(),
	userService:                users_services.GetUserService(),
	auditLogService:            audit_logs.GetAuditLogService(),
}

func GetTaskService() *TaskService {
	return taskService
}

func GetCollaboratorService() *CollaboratorService {
	return collaboratorService
}
