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

type TaskController struct {
	taskService *tasks_services.TaskService
}

func (c *TaskController) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/projects/:projectId/tasks", c.CreateTask)
	router.GET("/projects/:projectId/tasks", c.ListProjectTasks)
	router.GET("/tasks/:taskId", c.GetTask)
	router.PUT("/tasks/:taskId", c.UpdateTask)
	router.DELETE("/tasks/:taskId", c.DeleteTask)
}

func (c *TaskController) CreateTask(ctx *gin.Context) {
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

	var request tasks_dto.CreateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	task, err := c.taskService.CreateTask(projectID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"task": task})
}

func (c *TaskController) ListProjectTasks(ctx *gin.Context) {
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

	response, err := c.taskService.GetProjectTasks(projectID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, response)
}

func (c *TaskController) GetTask(ctx *gin.Context) {
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

	task, err := c.taskService.GetTask(taskID, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"task": task})
}

func (c *TaskController) UpdateTask(ctx *gin.Context) {
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

	var request tasks_dto.UpdateTaskRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		apperrors.Respond(ctx, apperrors.ValidationFields("invalid request format", bindingErrors(err)))
		return
	}

	task, err := c.taskService.UpdateTask(taskID, &request, user)
	if err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"task": task})
}

func (c *TaskController) DeleteTask(ctx *gin.Context) {
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

	if err := c.taskService.DeleteTask(taskID, user); err != nil {
		apperrors.Respond(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "task deleted"})
}
