package projects_controllers

import (
	"net/http"

	audit_logs "vazifa/internal/features/audit_logs"
	projects_dto "vazifa/internal/features/projects/dto"
	projects_services "vazifa/internal/features/projects/services"
	users_middleware "vazifa/internal/features/users/middleware"
	"vazifa/internal/util/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectController struct {
	projectService *projects_services.ProjectService
}

func (c *ProjectController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects", c.CreateProject)
	router.GET("/projects", c.ListProjects)
	router.GET("/projects/:projectId", c.GetProject)
	router.PUT("/projects/:projectId", c.UpdateProject)
	router.DELETE("/projects/:projectId", c.DeleteProject)
	router.GET("/projects/:projectId/activity", c.GetProjectActivity)
}

func (c *ProjectController) CreateProject(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	var request projects_dto.CreateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	response, err := c.projectService.CreateProject(&request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"project": response})
}

func (c *ProjectController) ListProjects(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		apperrors.Respond(ctx, apperrors.Unauthenticated("user not authenticated"))
		return
	}

	response, err := c.projectService.GetUserProjects(user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *ProjectController) GetProject(ctx *gin.Context) {
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

	project, err := c.projectService.GetProject(projectID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func (c *ProjectController) UpdateProject(ctx *gin.Context) {
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

	var request projects_dto.UpdateProjectRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	project, err := c.projectService.UpdateProject(projectID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"project": project})
}

func (c *ProjectController) DeleteProject(ctx *gin.Context) {
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

	if err := c.projectService.DeleteProject(projectID, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "project deleted"})
}

func (c *ProjectController) GetProjectActivity(ctx *gin.Context) {
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

	var request audit_logs.GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		apperrors.Respond(ctx, apperrors.Validation("invalid query parameters"))
		return
	}

	response, err := c.projectService.GetProjectActivity(projectID, user, &request)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}
