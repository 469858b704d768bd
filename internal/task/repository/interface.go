package repository

import (
	"context"

	"checklist-sync/internal/model"
)

// Repository is the data store for tasks.
//
// GetTask returns a zero-value Task (ID == "") and no error when the task
// does not exist.
type Repository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
}
