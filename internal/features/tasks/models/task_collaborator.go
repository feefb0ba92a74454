package tasks_models

import (
	"time"

	"github.com/google/uuid"
)

// TaskCollaborator links a task to a user independently of the user's
// project membership status. Unique on (task, user).
type TaskCollaborator struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"                                     json:"id"`
	TaskID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_task_collaborators_task_user"   json:"taskId"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_task_collaborators_task_user"   json:"userId"`
	CreatedAt time.Time `gorm:"not null"                                                 json:"createdAt"`
}

func (TaskCollaborator) TableName() string {
	return "task_collaborators"
}
