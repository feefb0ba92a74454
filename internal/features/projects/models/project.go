package projects_models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	// OwnerID is the single authority for project ownership; the owner's
	// membership row does not carry the OWNER role.
	OwnerID   uuid.UUID `json:"ownerId"   gorm:"column:owner_id"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Project) TableName() string {
	return "projects"
}
