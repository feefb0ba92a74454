package projects_services

import (
	"fmt"
	"time"

	audit_logs "vazifa/internal/features/audit_logs"
	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	projects_repositories "vazifa/internal/features/projects/repositories"
	users_models "vazifa/internal/features/users/models"
	"vazifa/internal/storage"
	"vazifa/internal/util/apperrors"
	cache_utils "vazifa/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository    *projects_repositories.ProjectRepository
	membershipRepository *projects_repositories.MembershipRepository
	auditLogService      *audit_logs.AuditLogService

	// projectCache is nil in testing mode (no valkey in unit tests)
	projectCache *cache_utils.CacheUtil[projects_models.Project]
	singleflight singleflight.Group
}

func (s *ProjectService) CreateProject(
	request *projects_dto.CreateProjectRequestDTO,
	creator *users_models.User,
) (*projects_dto.ProjectResponseDTO, error) {
	project := &projects_models.Project{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		OwnerID:     creator.ID,
		CreatedAt:   time.Now().UTC(),
	}

	now := time.Now().UTC()
	membership := &projects_models.Membership{
		ProjectID: project.ID,
		UserID:    creator.ID,
		Role:      projects_enums.ProjectRoleAdmin,
		Status:    projects_enums.MembershipStatusActive,
		InvitedAt: now,
		JoinedAt:  &now,
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.CreateProjectWithDb(tx, project); err != nil {
			return err
		}

		return s.membershipRepository.CreateMembershipWithDb(tx, membership)
	})
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to create project: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project created: %s", project.Name),
		&creator.ID,
		&project.ID,
	)

	ownerRole := projects_enums.ProjectRoleOwner
	return &projects_dto.ProjectResponseDTO{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		OwnerID:     project.OwnerID,
		CreatedAt:   project.CreatedAt,
		UserRole:    &ownerRole,
	}, nil
}

// GetProject conflates missing and invisible projects: callers without
// access get the same not-found as for a nonexistent id.
func (s *ProjectService) GetProject(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, err := s.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	canAccess, err := s.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canAccess {
		return nil, apperrors.NotFound("project not found")
	}

	return project, nil
}

func (s *ProjectService) GetUserProjects(
	user *users_models.User,
) (*projects_dto.ListProjectsResponseDTO, error) {
	projects, err := s.projectRepository.GetProjectsForUser(user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get user projects: %w", err))
	}

	return &projects_dto.ListProjectsResponseDTO{
		Projects: projects,
	}, nil
}

func (s *ProjectService) UpdateProject(
	projectID uuid.UUID,
	request *projects_dto.UpdateProjectRequestDTO,
	user *users_models.User,
) (*projects_models.Project, error) {
	project, err := s.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	if project.OwnerID != user.ID {
		return nil, apperrors.Forbidden("only the project owner can update the project")
	}

	project.Name = request.Name
	project.Description = request.Description

	if err := s.projectRepository.UpdateProject(project); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to update project: %w", err))
	}

	s.invalidateProjectCache(projectID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project updated: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return project, nil
}

func (s *ProjectService) DeleteProject(projectID uuid.UUID, user *users_models.User) error {
	project, err := s.GetProjectRecord(projectID)
	if err != nil {
		return apperrors.Unexpected(err)
	}

	if project == nil {
		return apperrors.NotFound("project not found")
	}

	if project.OwnerID != user.ID {
		return apperrors.Forbidden("only the project owner can delete the project")
	}

	if err := s.projectRepository.DeleteProject(projectID); err != nil {
		return apperrors.Unexpected(fmt.Errorf("failed to delete project: %w", err))
	}

	s.invalidateProjectCache(projectID)

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Project deleted: %s", project.Name),
		&user.ID,
		&projectID,
	)

	return nil
}

func (s *ProjectService) GetProjectActivity(
	projectID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	project, err := s.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	canAccess, err := s.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canAccess {
		return nil, apperrors.Forbidden("insufficient permissions to view project activity")
	}

	response, err := s.auditLogService.GetProjectAuditLogs(projectID, request)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	return response, nil
}

// GetProjectRecord fetches a project without authorization checks, through
// the cache when one is configured. Returns nil when the project does not
// exist.
func (s *ProjectService) GetProjectRecord(projectID uuid.UUID) (*projects_models.Project, error) {
	if s.projectCache == nil {
		return s.projectRepository.GetProjectByID(projectID)
	}

	projectIDStr := projectID.String()

	if cached := s.projectCache.Get(projectIDStr); cached != nil {
		return cached, nil
	}

	// singleflight keeps a herd of identical lookups to one DB call
	result, err, _ := s.singleflight.Do(projectIDStr, func() (any, error) {
		return s.projectRepository.GetProjectByID(projectID)
	})
	if err != nil {
		return nil, err
	}

	project, _ := result.(*projects_models.Project)
	if project != nil {
		s.projectCache.Set(projectIDStr, project)
	}

	return project, nil
}

func (s *ProjectService) invalidateProjectCache(projectID uuid.UUID) {
	if s.projectCache != nil {
		s.projectCache.Invalidate(projectID.String())
	}
}

// Authorization capabilities. Each operation picks one deliberately:
// role-gated writes use HasProjectRole, reads and ordinary writes use
// HasActiveMembership, and collaborator operations use HasAnyMembership.

// HasProjectRole reports whether the user is the project owner or holds an
// ACTIVE membership with one of the given roles.
func (s *ProjectService) HasProjectRole(
	project *projects_models.Project,
	userID uuid.UUID,
	roles ...projects_enums.ProjectRole,
) (bool, error) {
	if project.OwnerID == userID {
		return true, nil
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndProject(userID, project.ID)
	if err != nil {
		return false, err
	}

	if membership == nil || membership.Status != projects_enums.MembershipStatusActive {
		return false, nil
	}

	for _, role := range roles {
		if membership.Role == role {
			return true, nil
		}
	}

	return false, nil
}

// HasActiveMembership reports whether the user is the project owner or an
// ACTIVE member of any role.
func (s *ProjectService) HasActiveMembership(
	project *projects_models.Project,
	userID uuid.UUID,
) (bool, error) {
	if project.OwnerID == userID {
		return true, nil
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndProject(userID, project.ID)
	if err != nil {
		return false, err
	}

	return membership != nil && membership.Status == projects_enums.MembershipStatusActive, nil
}

// HasAnyMembership reports whether any membership row exists, regardless of
// status. This is the deliberately weaker check used by task collaborator
// operations.
func (s *ProjectService) HasAnyMembership(projectID, userID uuid.UUID) (bool, error) {
	return s.membershipRepository.HasAnyMembership(projectID, userID)
}
