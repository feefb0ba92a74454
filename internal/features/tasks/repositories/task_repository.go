package tasks_repositories

import (
	tasks_models "vazifa/internal/features/tasks/models"
	"vazifa/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepository struct{}

func (r *TaskRepository) CreateTask(task *tasks_models.Task) error {
	return storage.GetDb().Create(task).Error
}

func (r *TaskRepository) GetTaskByID(taskID uuid.UUID) (*tasks_models.Task, error) {
	return r.GetTaskByIDWithDb(storage.GetDb(), taskID)
}

func (r *TaskRepository) GetTaskByIDWithDb(db *gorm.DB, taskID uuid.UUID) (*tasks_models.Task, error) {
	var task tasks_models.Task

	if err := db.Where("id = ?", taskID).First(&task).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &task, nil
}

func (r *TaskRepository) GetTasksByProject(projectID uuid.UUID) ([]tasks_models.Task, error) {
	tasks := make([]tasks_models.Task, 0)

	err := storage.GetDb().
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&tasks).Error

	return tasks, err
}

func (r *TaskRepository) UpdateTask(task *tasks_models.Task) error {
	return storage.GetDb().
		Model(&tasks_models.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]any{
			"title":       task.Title,
			"description": task.Description,
			"status":      task.Status,
			"due_date":    task.DueDate,
			"updated_at":  task.UpdatedAt,
		}).Error
}

// DeleteTask removes the task together with its collaborator links.
func (r *TaskRepository) DeleteTask(taskID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).
			Delete(&tasks_models.TaskCollaborator{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", taskID).
			Delete(&tasks_models.Task{}).Error
	})
}
