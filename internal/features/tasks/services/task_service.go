package tasks_services

import (
	"fmt"
	"time"

	audit_logs "vazifa/internal/features/audit_logs"
	projects_models "vazifa/internal/features/projects/models"
	projects_services "vazifa/internal/features/projects/services"
	tasks_dto "vazifa/internal/features/tasks/dto"
	tasks_enums "vazifa/internal/features/tasks/enums"
	tasks_models "vazifa/internal/features/tasks/models"
	tasks_repositories "vazifa/internal/features/tasks/repositories"
	users_models "vazifa/internal/features/users/models"
	"vazifa/internal/util/apperrors"

	"github.com/google/uuid"
)

type TaskService struct {
	taskRepository  *tasks_repositories.TaskRepository
	projectService  *projects_services.ProjectService
	auditLogService *audit_logs.AuditLogService
}

func (s *TaskService) CreateTask(
	projectID uuid.UUID,
	request *tasks_dto.CreateTaskRequestDTO,
	user *users_models.User,
) (*tasks_models.Task, error) {
	project, err := s.requireProject(projectID)
	if err != nil {
		return nil, err
	}

	canMutate, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canMutate {
		return nil, apperrors.Forbidden("task mutation requires active membership")
	}

	status := request.Status
	if status == "" {
		status = tasks_enums.TaskStatusTodo
	}
	if !status.IsValid() {
		return nil, apperrors.Validation("status must be one of: TODO, IN_PROGRESS, DONE")
	}

	now := time.Now().UTC()
	task := &tasks_models.Task{
		ID:          uuid.New(),
		ProjectID:   projectID,
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		DueDate:     request.DueDate,
		CreatedBy:   user.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepository.CreateTask(task); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to create task: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task created: %s", task.Title),
		&user.ID,
		&projectID,
	)

	return task, nil
}

func (s *TaskService) GetProjectTasks(
	projectID uuid.UUID,
	user *users_models.User,
) (*tasks_dto.ListTasksResponseDTO, error) {
	project, err := s.requireProject(projectID)
	if err != nil {
		return nil, err
	}

	canAccess, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canAccess {
		return nil, apperrors.Forbidden("insufficient permissions to view project tasks")
	}

	tasks, err := s.taskRepository.GetTasksByProject(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get project tasks: %w", err))
	}

	return &tasks_dto.ListTasksResponseDTO{Tasks: tasks}, nil
}

func (s *TaskService) GetTask(taskID uuid.UUID, user *users_models.User) (*tasks_models.Task, error) {
	task, project, err := s.requireTask(taskID)
	if err != nil {
		return nil, err
	}

	canAccess, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canAccess {
		return nil, apperrors.Forbidden("insufficient permissions to view this task")
	}

	return task, nil
}

func (s *TaskService) UpdateTask(
	taskID uuid.UUID,
	request *tasks_dto.UpdateTaskRequestDTO,
	user *users_models.User,
) (*tasks_models.Task, error) {
	task, project, err := s.requireTask(taskID)
	if err != nil {
		return nil, err
	}

	canMutate, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canMutate {
		return nil, apperrors.Forbidden("task mutation requires active membership")
	}

	if !request.Status.IsValid() {
		return nil, apperrors.Validation("status must be one of: TODO, IN_PROGRESS, DONE")
	}

	task.Title = request.Title
	task.Description = request.Description
	task.Status = request.Status
	task.DueDate = request.DueDate
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepository.UpdateTask(task); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to update task: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task updated: %s", task.Title),
		&user.ID,
		&task.ProjectID,
	)

	return task, nil
}

func (s *TaskService) DeleteTask(taskID uuid.UUID, user *users_models.User) error {
	task, project, err := s.requireTask(taskID)
	if err != nil {
		return err
	}

	canMutate, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return apperrors.Unexpected(err)
	}
	if !canMutate {
		return apperrors.Forbidden("task mutation requires active membership")
	}

	if err := s.taskRepository.DeleteTask(taskID); err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to delete task: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Task deleted: %s", task.Title),
		&user.ID,
		&task.ProjectID,
	)

	return nil
}

func (s *TaskService) requireProject(projectID uuid.UUID) (*projects_models.Project, error) {
	project, err := s.projectService.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	return project, nil
}

func (s *TaskService) requireTask(taskID uuid.UUID) (*tasks_models.Task, *projects_models.Project, error) {
	task, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, nil, apperrors.Unexpected(err)
	}

	if task == nil {
		return nil, nil, apperrors.NotFound("task not found")
	}

	project, err := s.requireProject(task.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	return task, project, nil
}
