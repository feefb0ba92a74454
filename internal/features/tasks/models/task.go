package tasks_models

import (
	"time"

	tasks_enums "vazifa/internal/features/tasks/enums"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey"     json:"id"`
	ProjectID   uuid.UUID              `gorm:"type:uuid;index;not null" json:"projectId"`
	Title       string                 `gorm:"not null"                 json:"title"`
	Description string                 `json:"description"`
	Status      tasks_enums.TaskStatus `gorm:"not null"                 json:"status"`
	DueDate     *time.Time             `json:"dueDate"`
	CreatedBy   uuid.UUID              `gorm:"type:uuid;not null"       json:"createdBy"`
	CreatedAt   time.Time              `gorm:"not null"                 json:"createdAt"`
	UpdatedAt   time.Time              `gorm:"not null"                 json:"updatedAt"`
}

func (Task) TableName() string {
	return "tasks"
}
