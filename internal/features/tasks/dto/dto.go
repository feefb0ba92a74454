package tasks_dto

import (
	"time"

	tasks_enums "vazifa/internal/features/tasks/enums"
	tasks_models "vazifa/internal/features/tasks/models"

	"github.com/google/uuid"
)

type CreateTaskRequestDTO struct {
	Title       string                 `json:"title"       binding:"required,min=1,max=255"`
	Description string                 `json:"description" binding:"max=2000"`
	Status      tasks_enums.TaskStatus `json:"status"`
	DueDate     *time.Time             `json:"dueDate"`
}

type UpdateTaskRequestDTO struct {
	Title       string                 `json:"title"       binding:"required,min=1,max=255"`
	Description string                 `json:"description" binding:"max=2000"`
	Status      tasks_enums.TaskStatus `json:"status"      binding:"required"`
	DueDate     *time.Time             `json:"dueDate"`
}

type ListTasksResponseDTO struct {
	Tasks []tasks_models.Task `json:"tasks"`
}

type AddCollaboratorRequestDTO struct {
	UserID     uuid.UUID `json:"userId" binding:"required"`
	AutoInvite bool      `json:"autoInvite"`
}

// CollaboratorProfileDTO is the target user's basic profile, returned both
// on success and inside the requires-invite failure payload.
type CollaboratorProfileDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type AddCollaboratorResponseDTO struct {
	Collaborator CollaboratorProfileDTO `json:"collaborator"`
	Message      string                 `json:"message"`
}

type TaskCollaboratorResponseDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListCollaboratorsResponseDTO struct {
	Collaborators []TaskCollaboratorResponseDTO `json:"collaborators"`
}
