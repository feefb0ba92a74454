package projects_dto

import (
	"time"

	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"

	"github.com/google/uuid"
)

type InviteStatus string

const (
	InviteStatusCreated InviteStatus = "CREATED"
	InviteStatusResent  InviteStatus = "RESENT"
)

// Project DTOs
type CreateProjectRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

type UpdateProjectRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
}

type ProjectResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`

	// Caller's role in this project (OWNER is derived from owner_id)
	UserRole *projects_enums.ProjectRole `json:"userRole,omitempty"`
}

type ListProjectsResponseDTO struct {
	Projects []ProjectResponseDTO `json:"projects"`
}

// Invitation DTOs
type InviteMemberRequestDTO struct {
	Email string                     `json:"email" binding:"required,email"`
	Role  projects_enums.ProjectRole `json:"role"`
}

type InviteMemberResponseDTO struct {
	Invite *projects_models.Membership `json:"invite"`
	Status InviteStatus                `json:"status"`
}

type ProjectMemberResponseDTO struct {
	ID        uuid.UUID                       `json:"id"`
	UserID    uuid.UUID                       `json:"userId"`
	Name      string                          `json:"name"`
	Email     string                          `json:"email"`
	Role      projects_enums.ProjectRole      `json:"role"`
	Status    projects_enums.MembershipStatus `json:"status"`
	IsOwner   bool                            `json:"isOwner"`
	InvitedAt time.Time                       `json:"invitedAt"`
	JoinedAt  *time.Time                      `json:"joinedAt"`
}

type GetMembersResponseDTO struct {
	Members []ProjectMemberResponseDTO `json:"members"`
}

type MyInviteResponseDTO struct {
	ID          uuid.UUID                  `json:"id"`
	ProjectID   uuid.UUID                  `json:"projectId"`
	ProjectName string                     `json:"projectName"`
	OwnerEmail  string                     `json:"ownerEmail"`
	Role        projects_enums.ProjectRole `json:"role"`
	InvitedAt   time.Time                  `json:"invitedAt"`
}

type GetMyInvitesResponseDTO struct {
	Invites []MyInviteResponseDTO `json:"invites"`
}
