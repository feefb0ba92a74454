package tasks_controllers

import (
	"net/http"

	tasks_dto "vazifa/internal/features/tasks/dto"
	tasks_services "vazifa/internal/features/tasks/services"
	users_middleware "vazifa/internal/features/users/middleware"
	"vazifa/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CollaboratorController struct {
	collaboratorService *tasks_services.CollaboratorService
}

func (c *CollaboratorController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/tasks/:taskId/collaborators", c.ListCollaborators)
	router.POST("/tasks/:taskId/collaborators", c.AddCollaborator)
	router.DELETE("/tasks/:taskId/collaborators/:collaboratorId", c.RemoveCollaborator)
}

func (c *CollaboratorController) AddCollaborator(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid task id"))
		return
	}

	var request tasks_dto.AddCollaboratorRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	response, err := c.collaboratorService.AddCollaborator(taskID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *CollaboratorController) RemoveCollaborator(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid task id"))
		return
	}

	collaboratorID, err := uuid.Parse(ctx.Param("collaboratorId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid collaborator id"))
		return
	}

	if err := c.collaboratorService.RemoveCollaborator(taskID, collaboratorID, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "collaborator removed"})
}

func (c *CollaboratorController) ListCollaborators(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	taskID, err := uuid.Parse(ctx.Param("taskId"))
	if err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid task id"))
		return
	}

	response, err := c.collaboratorService.ListCollaborators(taskID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
