package projects_controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_testing "vazifa/internal/features/projects/testing"
	users_testing "vazifa/internal/features/users/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// InviteMember Tests

func Test_InviteMember_WhenUserIsProjectOwner_InviteCreated(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Invite Test Project", owner, router)

	response := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	assert.Equal(t, projects_dto.InviteStatusCreated, response.Status)
	assert.Equal(t, projects_enums.MembershipStatusPending, response.Invite.Status)
	assert.Equal(t, projects_enums.ProjectRoleMember, response.Invite.Role)
	assert.Equal(t, invitee.UserID, response.Invite.UserID)
	assert.Nil(t, response.Invite.JoinedAt)
}

func Test_InviteMember_WithDefaultRole_MemberRoleAssigned(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Default Role Project", owner, router)

	request := projects_dto.InviteMemberRequestDTO{Email: invitee.Email}
	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		request,
	)

	require.Equal(t, http.StatusCreated, w.Code)

	var response projects_dto.InviteMemberResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, projects_enums.ProjectRoleMember, response.Invite.Role)
}

func Test_InviteMember_WhenInviteIsPending_UpdatesInPlace(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Reinvite Project", owner, router)

	first := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	second := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleViewer, owner.Token, router)

	assert.Equal(t, projects_dto.InviteStatusCreated, first.Status)
	assert.Equal(t, projects_dto.InviteStatusResent, second.Status)

	// Same row, updated in place with the new role
	assert.Equal(t, first.Invite.ID, second.Invite.ID)
	assert.Equal(t, projects_enums.ProjectRoleViewer, second.Invite.Role)
	assert.Equal(t, projects_enums.MembershipStatusPending, second.Invite.Status)
	assert.False(t, second.Invite.InvitedAt.Before(first.Invite.InvitedAt))

	members := projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)
	assert.Len(t, members.Members, 2) // owner + single invite row
}

func Test_InviteMember_WhenInviteWasDeclined_ResetsToPending(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Declined Reinvite Project", owner, router)

	first := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+first.Invite.ID.String()+"/decline",
		"Bearer "+invitee.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	second := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	assert.Equal(t, projects_dto.InviteStatusResent, second.Status)
	assert.Equal(t, first.Invite.ID, second.Invite.ID)
	assert.Equal(t, projects_enums.MembershipStatusPending, second.Invite.Status)
}

func Test_InviteMember_WhenUserIsAlreadyActiveMember_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Already Member Project", owner, router)
	projects_testing.AddActiveMemberViaAPI(project, member, projects_enums.ProjectRoleMember, owner.Token, router)

	request := projects_dto.InviteMemberRequestDTO{
		Email: member.Email,
		Role:  projects_enums.ProjectRoleMember,
	}
	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		request,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already a member")
}

func Test_InviteMember_WithUnknownEmail_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Unknown Email Project", owner, router)

	request := projects_dto.InviteMemberRequestDTO{
		Email: "nobody-" + uuid.New().String()[:8] + "@test.com",
		Role:  projects_enums.ProjectRoleMember,
	}
	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+owner.Token,
		request,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_InviteMember_WhenUserIsPlainMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Forbidden Invite Project", owner, router)
	projects_testing.AddActiveMemberViaAPI(project, member, projects_enums.ProjectRoleMember, owner.Token, router)

	request := projects_dto.InviteMemberRequestDTO{
		Email: invitee.Email,
		Role:  projects_enums.ProjectRoleMember,
	}
	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/projects/"+project.ID.String()+"/invite",
		"Bearer "+member.Token,
		request,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_InviteMember_WhenUserIsProjectAdmin_InviteCreated(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	admin := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Admin Invite Project", owner, router)
	projects_testing.AddActiveMemberViaAPI(project, admin, projects_enums.ProjectRoleAdmin, owner.Token, router)

	response := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, admin.Token, router)

	assert.Equal(t, projects_dto.InviteStatusCreated, response.Status)
}

// AcceptInvite Tests

func Test_AcceptInvite_WhenInvitePending_ActivatesMembership(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Accept Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/accept",
		"Bearer "+invitee.Token,
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Membership struct {
			Status   projects_enums.MembershipStatus `json:"status"`
			JoinedAt *string                         `json:"joinedAt"`
		} `json:"membership"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, projects_enums.MembershipStatusActive, response.Membership.Status)
	assert.NotNil(t, response.Membership.JoinedAt)
}

func Test_AcceptInvite_WhenAlreadyAccepted_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Double Accept Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	projects_testing.AcceptInviteViaAPI(invite.Invite.ID, invitee.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/accept",
		"Bearer "+invitee.Token,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already accepted")
}

func Test_AcceptInvite_WhenInviteWasDeclined_ReturnsBadRequest(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Declined Accept Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/decline",
		"Bearer "+invitee.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	w = projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/accept",
		"Bearer "+invitee.Token,
		nil,
	)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "declined")
}

func Test_AcceptInvite_WhenInviteBelongsToAnotherUser_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Foreign Invite Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/accept",
		"Bearer "+stranger.Token,
		nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_AcceptInvite_WithNonExistentInvite_ReturnsNotFound(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	user := users_testing.CreateTestUser()

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+uuid.New().String()+"/accept",
		"Bearer "+user.Token,
		nil,
	)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// DeclineInvite Tests

func Test_DeclineInvite_WhenInvitePending_DeclinesMembership(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Decline Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/decline",
		"Bearer "+invitee.Token,
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "DECLINED")
}

func Test_DeclineInvite_WhenAlreadyDeclined_SucceedsIdempotently(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Idempotent Decline Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	for i := 0; i < 2; i++ {
		w := projects_testing.MakeAPIRequest(
			router,
			"POST",
			"/api/v1/invites/"+invite.Invite.ID.String()+"/decline",
			"Bearer "+invitee.Token,
			nil,
		)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

// Declining an accepted invitation demotes the active membership. Existing
// clients depend on this, do not add a terminal-state guard without a
// migration plan.
func Test_DeclineInvite_WhenMembershipIsActive_DemotesToDeclined(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Demote Project", owner, router)
	invite := projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	projects_testing.AcceptInviteViaAPI(invite.Invite.ID, invitee.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+invite.Invite.ID.String()+"/decline",
		"Bearer "+invitee.Token,
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)

	members := projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)
	for _, m := range members.Members {
		if m.UserID == invitee.UserID {
			assert.Equal(t, projects_enums.MembershipStatusDeclined, m.Status)
		}
	}
}

// ListMembers Tests

func Test_GetProjectMembers_WhenUserIsActiveMember_ReturnsMembers(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	member := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Members List Project", owner, router)
	projects_testing.AddActiveMemberViaAPI(project, member, projects_enums.ProjectRoleMember, owner.Token, router)

	response := projects_testing.GetProjectMembersViaAPI(project, member.Token, router)

	assert.Len(t, response.Members, 2)

	memberUserIDs := make([]uuid.UUID, len(response.Members))
	for i, m := range response.Members {
		memberUserIDs[i] = m.UserID
	}
	assert.Contains(t, memberUserIDs, owner.UserID)
	assert.Contains(t, memberUserIDs, member.UserID)
}

func Test_GetProjectMembers_OwnerListedFirst(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	memberA := users_testing.CreateTestUser()
	memberB := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Order Project", owner, router)
	projects_testing.AddActiveMemberViaAPI(project, memberA, projects_enums.ProjectRoleMember, owner.Token, router)
	projects_testing.InviteMemberViaAPI(project, memberB.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	response := projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)

	require.GreaterOrEqual(t, len(response.Members), 3)
	assert.Equal(t, owner.UserID, response.Members[0].UserID)
	assert.True(t, response.Members[0].IsOwner)
}

func Test_GetProjectMembers_IncludesPendingAndDeclined(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	pendingUser := users_testing.CreateTestUser()
	declinedUser := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("All Statuses Project", owner, router)
	projects_testing.InviteMemberViaAPI(
		project, pendingUser.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	declinedInvite := projects_testing.InviteMemberViaAPI(
		project, declinedUser.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+declinedInvite.Invite.ID.String()+"/decline",
		"Bearer "+declinedUser.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	response := projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)

	statuses := make(map[uuid.UUID]projects_enums.MembershipStatus, len(response.Members))
	for _, m := range response.Members {
		statuses[m.UserID] = m.Status
	}
	assert.Equal(t, projects_enums.MembershipStatusPending, statuses[pendingUser.UserID])
	assert.Equal(t, projects_enums.MembershipStatusDeclined, statuses[declinedUser.UserID])
}

func Test_GetProjectMembers_WhenUserIsNotMember_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	stranger := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Private Members Project", owner, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+stranger.Token,
		nil,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_GetProjectMembers_WhenMembershipIsPending_ReturnsForbidden(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	owner := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	project := projects_testing.CreateTestProjectViaAPI("Pending Members Project", owner, router)
	projects_testing.InviteMemberViaAPI(
		project, invitee.Email, projects_enums.ProjectRoleMember, owner.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/projects/"+project.ID.String()+"/members",
		"Bearer "+invitee.Token,
		nil,
	)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

// MyInvites Tests

func Test_GetMyInvites_ReturnsOnlyPendingInvites(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	ownerA := users_testing.CreateTestUser()
	ownerB := users_testing.CreateTestUser()
	invitee := users_testing.CreateTestUser()

	projectA := projects_testing.CreateTestProjectViaAPI("Invites Project A", ownerA, router)
	projectB := projects_testing.CreateTestProjectViaAPI("Invites Project B", ownerB, router)

	pending := projects_testing.InviteMemberViaAPI(
		projectA, invitee.Email, projects_enums.ProjectRoleMember, ownerA.Token, router)
	accepted := projects_testing.InviteMemberViaAPI(
		projectB, invitee.Email, projects_enums.ProjectRoleMember, ownerB.Token, router)
	projects_testing.AcceptInviteViaAPI(accepted.Invite.ID, invitee.Token, router)

	w := projects_testing.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/invites/me",
		"Bearer "+invitee.Token,
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)

	var response projects_dto.GetMyInvitesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Len(t, response.Invites, 1)
	assert.Equal(t, pending.Invite.ID, response.Invites[0].ID)
	assert.Equal(t, "Invites Project A", response.Invites[0].ProjectName)
	assert.Equal(t, ownerA.Email, response.Invites[0].OwnerEmail)
}

func Test_GetMyInvites_WhenNoInvites_ReturnsEmptyList(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())
	user := users_testing.CreateTestUser()

	w := projects_testing.MakeAPIRequest(
		router,
		"GET",
		"/api/v1/invites/me",
		"Bearer "+user.Token,
		nil,
	)

	require.Equal(t, http.StatusOK, w.Code)

	var response projects_dto.GetMyInvitesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Empty(t, response.Invites)
}
