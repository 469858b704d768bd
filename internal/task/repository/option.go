package repository

import "checklist-sync/internal/model"

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title           string
	Description     string
	Status          *model.TaskStatus
	PercentComplete *int
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
// Results are ordered by creation time, newest first.
type ListTasksOptions struct {
	Status *model.TaskStatus // Filter by status; nil lists all
	Limit  int               // 0 means no limit
	Offset int
}

// UpdateTaskOptions replaces the mutable fields of a task.
type UpdateTaskOptions struct {
	ID              string
	Title           string
	Description     string
	Status          *model.TaskStatus
	PercentComplete *int
}
