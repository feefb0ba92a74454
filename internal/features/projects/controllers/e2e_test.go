package projects_controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	projects_dto "vazifa/internal/features/projects/dto"
	projects_enums "vazifa/internal/features/projects/enums"
	projects_testing "vazifa/internal/features/projects/testing"
	users_testing "vazifa/internal/features/users/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_MembershipLifecycleE2E_CompletesSuccessfully(t *testing.T) {
	router := projects_testing.CreateTestRouter(GetProjectController(), GetMembershipController())

	// 1. Owner creates a project
	owner := users_testing.CreateTestUser()
	project := projects_testing.CreateTestProjectViaAPI("E2E Membership Project", owner, router)

	// 2. Owner invites two users
	first := users_testing.CreateTestUser()
	second := users_testing.CreateTestUser()

	firstInvite := projects_testing.InviteMemberViaAPI(
		project, first.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	secondInvite := projects_testing.InviteMemberViaAPI(
		project, second.Email, projects_enums.ProjectRoleViewer, owner.Token, router)

	assert.Equal(t, projects_dto.InviteStatusCreated, firstInvite.Status)
	assert.Equal(t, projects_dto.InviteStatusCreated, secondInvite.Status)

	// 3. Both invites appear in the invitees' inboxes
	w := projects_testing.MakeAPIRequest(router, "GET", "/api/v1/invites/me", "Bearer "+first.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var inbox projects_dto.GetMyInvitesResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inbox))
	require.Len(t, inbox.Invites, 1)
	assert.Equal(t, project.ID, inbox.Invites[0].ProjectID)
	assert.Equal(t, owner.Email, inbox.Invites[0].OwnerEmail)

	// 4. First accepts, second declines
	projects_testing.AcceptInviteViaAPI(firstInvite.Invite.ID, first.Token, router)

	w = projects_testing.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/invites/"+secondInvite.Invite.ID.String()+"/decline",
		"Bearer "+second.Token,
		nil,
	)
	require.Equal(t, http.StatusOK, w.Code)

	// 5. Accepted member sees the project in their list
	w = projects_testing.MakeAPIRequest(router, "GET", "/api/v1/projects", "Bearer "+first.Token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var projectList projects_dto.ListProjectsResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &projectList))

	found := false
	for _, p := range projectList.Projects {
		if p.ID == project.ID {
			found = true
			require.NotNil(t, p.UserRole)
			assert.Equal(t, projects_enums.ProjectRoleMember, *p.UserRole)
		}
	}
	assert.True(t, found)

	// 6. Member list shows owner first, then the accepted, then the declined
	members := projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)
	require.Len(t, members.Members, 3)

	assert.Equal(t, owner.UserID, members.Members[0].UserID)
	assert.True(t, members.Members[0].IsOwner)

	statusByUser := make(map[string]projects_enums.MembershipStatus)
	for _, m := range members.Members {
		statusByUser[m.Email] = m.Status
	}
	assert.Equal(t, projects_enums.MembershipStatusActive, statusByUser[first.Email])
	assert.Equal(t, projects_enums.MembershipStatusDeclined, statusByUser[second.Email])

	// Non-owner rows come back ranked by status
	for i := 2; i < len(members.Members); i++ {
		assert.GreaterOrEqual(t,
			members.Members[i].Status.Ordinal(),
			members.Members[i-1].Status.Ordinal(),
		)
	}

	// 7. Declined user is re-invited and the same row goes back to pending
	reinvite := projects_testing.InviteMemberViaAPI(
		project, second.Email, projects_enums.ProjectRoleMember, owner.Token, router)
	assert.Equal(t, projects_dto.InviteStatusResent, reinvite.Status)
	assert.Equal(t, secondInvite.Invite.ID, reinvite.Invite.ID)

	projects_testing.AcceptInviteViaAPI(reinvite.Invite.ID, second.Token, router)

	members = projects_testing.GetProjectMembersViaAPI(project, owner.Token, router)
	require.Len(t, members.Members, 3)
	for _, m := range members.Members {
		assert.Equal(t, projects_enums.MembershipStatusActive, m.Status)
	}
}
