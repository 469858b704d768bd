package memory

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"checklist-sync/internal/model"
	"checklist-sync/internal/task/repository"
)

// CreateTask stores a new task under a fresh UUID.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repository.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	t := model.Task{
		ID:              id.String(),
		Title:           opt.Title,
		Description:     opt.Description,
		Status:          copyStatus(opt.Status),
		PercentComplete: copyInt(opt.PercentComplete),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	r.cache.Add(t.ID, entry{task: t, seq: r.seq.Add(1)})
	return clone(t), nil
}

// GetTask returns the task with the given id, or a zero-value Task when it
// does not exist.
func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	e, ok := r.cache.Get(id)
	if !ok {
		return model.Task{}, nil
	}
	return clone(e.task), nil
}

// ListTasks returns a page of tasks, newest first, and the total count
// matching the filter.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	entries := r.cache.Values()
	if opt.Status != nil {
		entries = slices.DeleteFunc(entries, func(e entry) bool {
			return e.task.Status == nil || *e.task.Status != *opt.Status
		})
	}
	slices.SortFunc(entries, func(a, b entry) int {
		switch {
		case a.seq > b.seq:
			return -1
		case a.seq < b.seq:
			return 1
		}
		return 0
	})

	total := len(entries)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	tasks := make([]model.Task, 0, end-start)
	for _, e := range entries[start:end] {
		tasks = append(tasks, clone(e.task))
	}
	return tasks, total, nil
}

// UpdateTask replaces the mutable fields of an existing task.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.cache.Peek(opt.ID)
	if !ok {
		r.l.Warnf(ctx, "%s: task %s not found", r.dsn("UpdateTask"), opt.ID)
		return model.Task{}, repository.ErrNotFound
	}

	e.task.Title = opt.Title
	e.task.Description = opt.Description
	e.task.Status = copyStatus(opt.Status)
	e.task.PercentComplete = copyInt(opt.PercentComplete)
	e.task.UpdatedAt = time.Now().UTC()

	r.cache.Add(opt.ID, e)
	return clone(e.task), nil
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Remove(id)
	return nil
}

func clone(t model.Task) model.Task {
	t.Status = copyStatus(t.Status)
	t.PercentComplete = copyInt(t.PercentComplete)
	return t
}

func copyStatus(s *model.TaskStatus) *model.TaskStatus {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
