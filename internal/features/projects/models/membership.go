package projects_models

import (
	"time"

	projects_enums "vazifa/internal/features/projects/enums"

	"github.com/google/uuid"
)

// Membership is the single row per (project, user) pair; re-inviting an
// existing non-active row updates it in place instead of inserting.
type Membership struct {
	ID        uuid.UUID                      `json:"id"        gorm:"column:id"`
	ProjectID uuid.UUID                      `json:"projectId" gorm:"column:project_id;uniqueIndex:idx_memberships_project_user"`
	UserID    uuid.UUID                      `json:"userId"    gorm:"column:user_id;uniqueIndex:idx_memberships_project_user"`
	Role      projects_enums.ProjectRole     `json:"role"      gorm:"column:role"`
	Status    projects_enums.MembershipStatus `json:"status"    gorm:"column:status"`
	InvitedAt time.Time                      `json:"invitedAt" gorm:"column:invited_at"`
	JoinedAt  *time.Time                     `json:"joinedAt"  gorm:"column:joined_at"`
}

func (Membership) TableName() string {
	return "memberships"
}
