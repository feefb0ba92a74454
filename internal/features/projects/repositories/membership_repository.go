package projects_repositories

import (
	"time"

	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	"vazifa/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member listing order: project owner first, explicit status rank, newest
// joiners, then newest invitations. Portable across postgres and sqlite.
const memberListOrder = `
	CASE WHEN pm.user_id = p.owner_id THEN 0 ELSE 1 END,
	CASE pm.status WHEN 'PENDING' THEN 0 WHEN 'ACTIVE' THEN 1 WHEN 'DECLINED' THEN 2 ELSE 3 END,
	CASE WHEN pm.joined_at IS NULL THEN 1 ELSE 0 END,
	pm.joined_at DESC,
	pm.invited_at DESC`

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(membership *projects_models.Membership) error {
	return r.CreateMembershipWithDb(storage.GetDb(), membership)
}

// CreateMembershipWithDb allows callers to run the insert inside their own
// transaction.
func (r *MembershipRepository) CreateMembershipWithDb(
	db *gorm.DB,
	membership *projects_models.Membership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.InvitedAt.IsZero() {
		membership.InvitedAt = time.Now().UTC()
	}

	return db.Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByID(id uuid.UUID) (*projects_models.Membership, error) {
	var membership projects_models.Membership

	if err := storage.GetDb().Where("id = ?", id).First(&membership).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetMembershipByUserAndProject(
	userID, projectID uuid.UUID,
) (*projects_models.Membership, error) {
	return r.GetMembershipByUserAndProjectWithDb(storage.GetDb(), userID, projectID)
}

func (r *MembershipRepository) GetMembershipByUserAndProjectWithDb(
	db *gorm.DB,
	userID, projectID uuid.UUID,
) (*projects_models.Membership, error) {
	var membership projects_models.Membership

	err := db.
		Where("user_id = ? AND project_id = ?", userID, projectID).
		First(&membership).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

// Reinvite resets a non-active membership back to pending with a fresh
// invitation timestamp, updating the role in place.
func (r *MembershipRepository) Reinvite(id uuid.UUID, role projects_enums.ProjectRole) error {
	return storage.GetDb().
		Model(&projects_models.Membership{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"role":       role,
			"status":     projects_enums.MembershipStatusPending,
			"invited_at": time.Now().UTC(),
		}).Error
}

func (r *MembershipRepository) Activate(id uuid.UUID) error {
	return storage.GetDb().
		Model(&projects_models.Membership{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    projects_enums.MembershipStatusActive,
			"joined_at": time.Now().UTC(),
		}).Error
}

func (r *MembershipRepository) Decline(id uuid.UUID) error {
	return storage.GetDb().
		Model(&projects_models.Membership{}).
		Where("id = ?", id).
		Update("status", projects_enums.MembershipStatusDeclined).Error
}

func (r *MembershipRepository) HasAnyMembership(projectID, userID uuid.UUID) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&projects_models.Membership{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error

	return count > 0, err
}

func (r *MembershipRepository) GetProjectMembers(
	projectID uuid.UUID,
) ([]*projects_dto.ProjectMemberResponseDTO, error) {
	members := make([]*projects_dto.ProjectMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("memberships pm").
		Select(`pm.id, pm.user_id, u.name, u.email, pm.role, pm.status,
			CASE WHEN pm.user_id = p.owner_id THEN 1 ELSE 0 END AS is_owner,
			pm.invited_at, pm.joined_at`).
		Joins("JOIN users u ON pm.user_id = u.id").
		Joins("JOIN projects p ON pm.project_id = p.id").
		Where("pm.project_id = ?", projectID).
		Order(memberListOrder).
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetPendingInvitesByUser(
	userID uuid.UUID,
) ([]*projects_dto.MyInviteResponseDTO, error) {
	invites := make([]*projects_dto.MyInviteResponseDTO, 0)

	err := storage.GetDb().
		Table("memberships pm").
		Select("pm.id, pm.project_id, p.name AS project_name, u.email AS owner_email, pm.role, pm.invited_at").
		Joins("JOIN projects p ON pm.project_id = p.id").
		Joins("JOIN users u ON p.owner_id = u.id").
		Where("pm.user_id = ? AND pm.status = ?", userID, projects_enums.MembershipStatusPending).
		Order("pm.invited_at DESC").
		Scan(&invites).Error

	return invites, err
}
