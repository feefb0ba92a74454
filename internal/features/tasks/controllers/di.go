package tasks_controllers

import (
	tasks_services "vazifa/internal/features/tasks/services"
)

var taskController = &TaskController{
	taskService: tasks_services.GetTaskService(),
}

var collaboratorController = &CollaboratorController{
	collaboratorService: tasks_services.GetCollaboratorService(),
}

func GetTaskController() *TaskController {
	return taskController
}

func GetCollaboratorController() *CollaboratorController {
	return collaboratorController
}
