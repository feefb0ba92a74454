package projects_repositories

import (
	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	"vazifa/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct{}

func (r *ProjectRepository) CreateProjectWithDb(db *gorm.DB, project *projects_models.Project) error {
	return db.Create(project).Error
}

func (r *ProjectRepository) GetProjectByID(projectID uuid.UUID) (*projects_models.Project, error) {
	var project projects_models.Project

	if err := storage.GetDb().Where("id = ?", projectID).First(&project).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &project, nil
}

func (r *ProjectRepository) UpdateProject(project *projects_models.Project) error {
	return storage.GetDb().
		Model(&projects_models.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]any{
			"name":        project.Name,
			"description": project.Description,
		}).Error
}

// DeleteProject removes the project together with its membership rows.
func (r *ProjectRepository) DeleteProject(projectID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).
			Delete(&projects_models.Membership{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", projectID).
			Delete(&projects_models.Project{}).Error
	})
}

// GetProjectsForUser returns projects the user owns or is an active member
// of, with the caller's role derived (OWNER comes from owner_id, not from a
// membership row).
func (r *ProjectRepository) GetProjectsForUser(userID uuid.UUID) ([]projects_dto.ProjectResponseDTO, error) {
	projects := make([]projects_dto.ProjectResponseDTO, 0)

	err := storage.GetDb().
		Table("projects p").
		Select(`p.id, p.name, p.description, p.owner_id, p.created_at,
			CASE WHEN p.owner_id = ? THEN 'OWNER' ELSE pm.role END AS user_role`, userID).
		Joins("LEFT JOIN memberships pm ON pm.project_id = p.id AND pm.user_id = ?", userID).
		Where("p.owner_id = ? OR pm.status = ?", userID, projects_enums.MembershipStatusActive).
		Order("p.name ASC").
		Scan(&projects).Error

	return projects, err
}
