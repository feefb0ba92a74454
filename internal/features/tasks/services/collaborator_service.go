package tasks_services

import (
	"fmt"

	audit_logs "vazifa/internal/features/audit_logs"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	projects_repositories "vazifa/internal/features/projects/repositories"
	projects_services "vazifa/internal/features/projects/services"
	tasks_dto "vazifa/internal/features/tasks/dto"
	tasks_models "vazifa/internal/features/tasks/models"
	tasks_repositories "vazifa/internal/features/tasks/repositories"
	users_models "vazifa/internal/features/users/models"
	users_services "vazifa/internal/features/users/services"
	"vazifa/internal/storage"
	"vazifa/internal/util/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollaboratorService struct {
	taskRepository             *tasks_repositories.TaskRepository
	taskCollaboratorRepository *tasks_repositories.TaskCollaboratorRepository
	membershipRepository       *projects_repositories.MembershipRepository
	projectService             *projects_services.ProjectService
	userService                *users_services.UserService
	auditLogService            *audit_logs.AuditLogService
}

// AddCollaborator links a user to a task. The whole operation runs in one
// transaction: when autoInvite creates a pending membership and the link
// insert then fails, the membership insert is rolled back too.
//
// Collaborator operations deliberately accept ANY membership row from the
// caller, not only active ones.
func (s *CollaboratorService) AddCollaborator(
	taskID uuid.UUID,
	request *tasks_dto.AddCollaboratorRequestDTO,
	caller *users_models.User,
) (*tasks_dto.AddCollaboratorResponseDTO, error) {
	var target *users_models.User
	var projectID uuid.UUID

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		task, err := s.taskRepository.GetTaskByIDWithDb(tx, taskID)
		if err != nil {
			return apperrors.Unexpected(err)
		}
		if task == nil {
			return apperrors.NotFound("task not found")
		}

		projectID = task.ProjectID

		callerMembership, err := s.membershipRepository.GetMembershipByUserAndProjectWithDb(
			tx, caller.ID, task.ProjectID)
		if err != nil {
			return apperrors.Unexpected(err)
		}
		if callerMembership == nil && !s.isProjectOwnerWithDb(tx, task.ProjectID, caller.ID) {
			return apperrors.Forbidden("insufficient permissions to manage task collaborators")
		}

		target, err = s.userService.GetUserByID(request.UserID)
		if err != nil {
			return apperrors.Unexpected(err)
		}
		if target == nil {
			return apperrors.NotFound("user not found")
		}

		targetMembership, err := s.membershipRepository.GetMembershipByUserAndProjectWithDb(
			tx, target.ID, task.ProjectID)
		if err != nil {
			return apperrors.Unexpected(err)
		}

		if targetMembership == nil {
			if !request.AutoInvite {
				return apperrors.RequiresInvite(
					"user is not a member of this project",
					map[string]any{
						"requiresInvite": true,
						"user": tasks_dto.CollaboratorProfileDTO{
							ID:    target.ID,
							Name:  target.Name,
							Email: target.Email,
						},
					},
				)
			}

			membership := &projects_models.Membership{
				ProjectID: task.ProjectID,
				UserID:    target.ID,
				Role:      projects_enums.ProjectRoleMember,
				Status:    projects_enums.MembershipStatusPending,
			}

			if err := s.membershipRepository.CreateMembershipWithDb(tx, membership); err != nil {
				return apperrors.Unexpected(fmt.Errorf("failed to create invitation: %w", err))
			}
		}

		existingLink, err := s.taskCollaboratorRepository.GetLinkWithDb(tx, taskID, target.ID)
		if err != nil {
			return apperrors.Unexpected(err)
		}

		// Already a collaborator: no-op
		if existingLink != nil {
			return nil
		}

		if err := s.taskCollaboratorRepository.CreateLinkWithDb(tx, taskID, target.ID); err != nil {
			return apperrors.Unexpected(fmt.Errorf("failed to add collaborator: %w", err))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Collaborator added to task: %s", target.Email),
		&caller.ID,
		&projectID,
	)

	return &tasks_dto.AddCollaboratorResponseDTO{
		Collaborator: tasks_dto.CollaboratorProfileDTO{
			ID:    target.ID,
			Name:  target.Name,
			Email: target.Email,
		},
		Message: "collaborator added",
	}, nil
}

func (s *CollaboratorService) RemoveCollaborator(
	taskID, collaboratorUserID uuid.UUID,
	caller *users_models.User,
) error {
	task, _, err := s.requireTaskForCollaborators(taskID, caller)
	if err != nil {
		return err
	}

	if err := s.taskCollaboratorRepository.DeleteLink(taskID, collaboratorUserID); err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to remove collaborator: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Collaborator removed from task: %s", task.Title),
		&caller.ID,
		&task.ProjectID,
	)

	return nil
}

func (s *CollaboratorService) ListCollaborators(
	taskID uuid.UUID,
	caller *users_models.User,
) (*tasks_dto.ListCollaboratorsResponseDTO, error) {
	_, _, err := s.requireTaskForCollaborators(taskID, caller)
	if err != nil {
		return nil, err
	}

	collaborators, err := s.taskCollaboratorRepository.GetCollaboratorsByTask(taskID)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get collaborators: %w", err))
	}

	return &tasks_dto.ListCollaboratorsResponseDTO{
		Collaborators: collaborators,
	}, nil
}

// requireTaskForCollaborators resolves the task and applies the weaker
// any-membership check used by collaborator operations.
func (s *CollaboratorService) requireTaskForCollaborators(
	taskID uuid.UUID,
	caller *users_models.User,
) (task *tasks_models.Task, project *projects_models.Project, err error) {
	t, err := s.taskRepository.GetTaskByID(taskID)
	if err != nil {
		return nil, nil, apperrors.Unexpected(err)
	}
	if t == nil {
		return nil, nil, apperrors.NotFound("task not found")
	}

	p, err := s.projectService.GetProjectRecord(t.ProjectID)
	if err != nil {
		return nil, nil, apperrors.Unexpected(err)
	}
	if p == nil {
		return nil, nil, apperrors.NotFound("project not found")
	}

	hasMembership, err := s.projectService.HasAnyMembership(t.ProjectID, caller.ID)
	if err != nil {
		return nil, nil, apperrors.Unexpected(err)
	}
	if !hasMembership && p.OwnerID != caller.ID {
		return nil, nil, apperrors.Forbidden("insufficient permissions to manage task collaborators")
	}

	return t, p, nil
}

func (s *CollaboratorService) isProjectOwnerWithDb(tx *gorm.DB, projectID, userID uuid.UUID) bool {
	var count int64

	err := tx.
		Model(&projects_models.Project{}).
		Where("id = ? AND owner_id = ?", projectID, userID).
		Count(&count).Error

	return err == nil && count > 0
}
