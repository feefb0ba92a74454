package tasks_repositories

import (
	"time"

	tasks_dto "vazifa/internal/features/tasks/dto"
	tasks_models "vazifa/internal/features/tasks/models"
	"vazifa/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskCollaboratorRepository struct{}

func (r *TaskCollaboratorRepository) GetLinkWithDb(
	db *gorm.DB,
	taskID, userID uuid.UUID,
) (*tasks_models.TaskCollaborator, error) {
	var link tasks_models.TaskCollaborator

	err := db.
		Where("task_id = ? AND user_id = ?", taskID, userID).
		First(&link).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &link, nil
}

func (r *TaskCollaboratorRepository) CreateLinkWithDb(
	db *gorm.DB,
	taskID, userID uuid.UUID,
) error {
	link := &tasks_models.TaskCollaborator{
		ID:        uuid.New(),
		TaskID:    taskID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}

	return db.Create(link).Error
}

// DeleteLink removes the link if present. Deleting a missing link is not an
// error.
func (r *TaskCollaboratorRepository) DeleteLink(taskID, userID uuid.UUID) error {
	return storage.GetDb().
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Delete(&tasks_models.TaskCollaborator{}).Error
}

func (r *TaskCollaboratorRepository) CountByTask(taskID uuid.UUID) (int64, error) {
	var count int64

	err := storage.GetDb().
		Model(&tasks_models.TaskCollaborator{}).
		Where("task_id = ?", taskID).
		Count(&count).Error

	return count, err
}

func (r *TaskCollaboratorRepository) GetCollaboratorsByTask(
	taskID uuid.UUID,
) ([]tasks_dto.TaskCollaboratorResponseDTO, error) {
	collaborators := make([]tasks_dto.TaskCollaboratorResponseDTO, 0)

	err := storage.GetDb().
		Table("task_collaborators tc").
		Select("tc.id, tc.user_id, u.name, u.email, tc.created_at").
		Joins("JOIN users u ON tc.user_id = u.id").
		Where("tc.task_id = ?", taskID).
		Order("tc.created_at ASC").
		Scan(&collaborators).Error

	return collaborators, err
}
