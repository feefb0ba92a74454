package projects_controllers

import (
	"net/http"

	projects_dto "vazifa/internal/features/projects/dto"
	projects_services "vazifa/internal/features/projects/services"
	users_middleware "vazifa/internal/features/users/middleware"
	"vazifa/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MembershipController struct {
	membershipService *projects_services.MembershipService
}

func (c *MembershipController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/invite", c.InviteMember)
	router.GET("/projects/:projectId/members", c.GetMembers)
	router.GET("/invites/me", c.GetMyInvites)
	router.POST("/invites/:inviteId/accept", c.AcceptInvite)
	router.POST("/invites/:inviteId/decline", c.DeclineInvite)
}

func (c *MembershipController) InviteMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid project id"))
		return
	}

	var request projects_dto.InviteMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	response, err := c.membershipService.InviteMember(projectID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	status := http.StatusCreated
	if response.Status == projects_dto.InviteStatusResent {
		status = http.StatusOK
	}

	ctx.JSON(status, response)
}

func (c *MembershipController) GetMembers(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	projectID, err := uuid.Parse(ctx.Param("projectId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid project id"))
		return
	}

	response, err := c.membershipService.GetMembers(projectID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *MembershipController) GetMyInvites(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	response, err := c.membershipService.GetMyInvites(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *MembershipController) AcceptInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid invitation id"))
		return
	}

	membership, err := c.membershipService.AcceptInvite(inviteID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"membership": membership})
}

func (c *MembershipController) DeclineInvite(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	inviteID, err := uuid.Parse(ctx.Param("inviteId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid invitation id"))
		return
	}

	membership, err := c.membershipService.DeclineInvite(inviteID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"membership": membership})
}
