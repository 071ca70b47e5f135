package api

import (
	"context"

	"todosheet/domain"
)

// TaskService abstracts the task operations handlers need.
type TaskService interface {
	List(ctx context.Context) ([]domain.TaskView, error)
	Get(ctx context.Context, id string) (domain.Task, error)
	Create(ctx context.Context, in domain.TaskInput) (domain.Task, error)
	Update(ctx context.Context, id string, in domain.TaskInput) error
	Delete(ctx context.Context, id string) error
	DeleteAt(ctx context.Context, index int) error
}

// Reminder triggers one reminder digest run.
type Reminder interface {
	Run(ctx context.Context) bool
}
