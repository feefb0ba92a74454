package projects_services

import (
	"fmt"

	audit_logs "vazifa/internal/features/audit_logs"
	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_models "vazifa/internal/features/projects/models"
	projects_repositories "vazifa/internal/features/projects/repositories"
	users_models "vazifa/internal/features/users/models"
	users_services "vazifa/internal/features/users/services"
	"vazifa/internal/util/apperrors"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *projects_repositories.MembershipRepository
	userService          *users_services.UserService
	auditLogService      *audit_logs.AuditLogService
	projectService       *ProjectService
}

// InviteMember creates or refreshes an invitation. At most one membership
// row exists per (project, user): re-inviting a pending or declined row
// updates it in place instead of inserting a duplicate.
func (s *MembershipService) InviteMember(
	projectID uuid.UUID,
	request *projects_dto.InviteMemberRequestDTO,
	inviter *users_models.User,
) (*projects_dto.InviteMemberResponseDTO, error) {
	project, err := s.projectService.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	role := request.Role
	if role == "" {
		role = projects_enums.ProjectRoleMember
	}
	if !role.IsValid() {
		return nil, apperrors.Validation("role must be one of: OWNER, ADMIN, MEMBER, VIEWER")
	}

	canInvite, err := s.projectService.HasProjectRole(
		project,
		inviter.ID,
		projects_enums.ProjectRoleOwner,
		projects_enums.ProjectRoleAdmin,
	)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canInvite {
		return nil, apperrors.Forbidden("insufficient permissions to invite members")
	}

	targetUser, err := s.userService.GetUserByEmail(request.Email)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to look up user: %w", err))
	}

	if targetUser == nil {
		return nil, apperrors.NotFound("no registered user with this email")
	}

	existingMembership, err := s.membershipRepository.GetMembershipByUserAndProject(targetUser.ID, projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if existingMembership != nil {
		if existingMembership.Status == projects_enums.MembershipStatusActive {
			return nil, apperrors.Conflict("user is already a member of this project")
		}

		// Pending or declined: reset to pending with a fresh invitation
		if err := s.membershipRepository.Reinvite(existingMembership.ID, role); err != nil {
			return nil, apperrors.Unexpected(fmt.Errorf("failed to update invitation: %w", err))
		}

		updated, err := s.membershipRepository.GetMembershipByID(existingMembership.ID)
		if err != nil {
			return nil, apperrors.Unexpected(err)
		}

		s.auditLogService.WriteAuditLog(
			fmt.Sprintf("Invitation resent to %s as %s", targetUser.Email, role),
			&inviter.ID,
			&projectID,
		)

		return &projects_dto.InviteMemberResponseDTO{
			Invite: updated,
			Status: projects_dto.InviteStatusResent,
		}, nil
	}

	membership := &projects_models.Membership{
		ProjectID: projectID,
		UserID:    targetUser.ID,
		Role:      role,
		Status:    projects_enums.MembershipStatusPending,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to create invitation: %w", err))
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("User invited to project: %s as %s", targetUser.Email, role),
		&inviter.ID,
		&projectID,
	)

	return &projects_dto.InviteMemberResponseDTO{
		Invite: membership,
		Status: projects_dto.InviteStatusCreated,
	}, nil
}

func (s *MembershipService) AcceptInvite(inviteID uuid.UUID, user *users_models.User) (*projects_models.Membership, error) {
	membership, err := s.getOwnInvite(inviteID, user)
	if err != nil {
		return nil, err
	}

	switch membership.Status {
	case projects_enums.MembershipStatusActive:
		return nil, apperrors.Conflict("invitation already accepted")
	case projects_enums.MembershipStatusDeclined:
		return nil, apperrors.Conflict("invitation was declined")
	}

	if err := s.membershipRepository.Activate(membership.ID); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to accept invitation: %w", err))
	}

	updated, err := s.membershipRepository.GetMembershipByID(membership.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation accepted by %s", user.Email),
		&user.ID,
		&membership.ProjectID,
	)

	return updated, nil
}

// DeclineInvite has no terminal-state guard: declining an already active
// membership demotes it. This mirrors the long-standing behavior clients
// rely on; see the regression test before changing it.
func (s *MembershipService) DeclineInvite(inviteID uuid.UUID, user *users_models.User) (*projects_models.Membership, error) {
	membership, err := s.getOwnInvite(inviteID, user)
	if err != nil {
		return nil, err
	}

	if err := s.membershipRepository.Decline(membership.ID); err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to decline invitation: %w", err))
	}

	updated, err := s.membershipRepository.GetMembershipByID(membership.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Invitation declined by %s", user.Email),
		&user.ID,
		&membership.ProjectID,
	)

	return updated, nil
}

func (s *MembershipService) GetMembers(
	projectID uuid.UUID,
	user *users_models.User,
) (*projects_dto.GetMembersResponseDTO, error) {
	project, err := s.projectService.GetProjectRecord(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if project == nil {
		return nil, apperrors.NotFound("project not found")
	}

	canAccess, err := s.projectService.HasActiveMembership(project, user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}
	if !canAccess {
		return nil, apperrors.Forbidden("insufficient permissions to view project members")
	}

	members, err := s.membershipRepository.GetProjectMembers(projectID)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get project members: %w", err))
	}

	membersList := make([]projects_dto.ProjectMemberResponseDTO, len(members))
	for i, member := range members {
		membersList[i] = *member
	}

	return &projects_dto.GetMembersResponseDTO{
		Members: membersList,
	}, nil
}

func (s *MembershipService) GetMyInvites(user *users_models.User) (*projects_dto.GetMyInvitesResponseDTO, error) {
	invites, err := s.membershipRepository.GetPendingInvitesByUser(user.ID)
	if err != nil {
		return nil, apperrors.Unexpected(fmt.Errorf("failed to get invitations: %w", err))
	}

	invitesList := make([]projects_dto.MyInviteResponseDTO, len(invites))
	for i, invite := range invites {
		invitesList[i] = *invite
	}

	return &projects_dto.GetMyInvitesResponseDTO{
		Invites: invitesList,
	}, nil
}

// getOwnInvite resolves an invitation id and verifies it belongs to the
// caller; foreign invitations are indistinguishable from missing ones.
func (s *MembershipService) getOwnInvite(
	inviteID uuid.UUID,
	user *users_models.User,
) (*projects_models.Membership, error) {
	membership, err := s.membershipRepository.GetMembershipByID(inviteID)
	if err != nil {
		return nil, apperrors.Unexpected(err)
	}

	if membership == nil || membership.UserID != user.ID {
		return nil, apperrors.NotFound("invitation not found")
	}

	return membership, nil
}
