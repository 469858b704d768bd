package usecase

import (
	"context"

	"checklist-sync/internal/model"
	"checklist-sync/internal/task"
	"checklist-sync/internal/task/repository"
)

// Create stores a new task. When the description is a checklist its progress
// is derived before the task is persisted.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.TaskOutput, error) {
	if !validStatus(input.Status) {
		return task.TaskOutput{}, task.ErrInvalidStatus
	}
	if !validPercent(input.Percent) {
		return task.TaskOutput{}, task.ErrInvalidPercent
	}

	draft := model.Task{
		Title:           input.Title,
		Status:          input.Status,
		PercentComplete: input.Percent,
	}
	draft.Description = uc.constraint.Apply(taskValues{t: &draft}, "", input.Description)

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:           draft.Title,
		Description:     draft.Description,
		Status:          draft.Status,
		PercentComplete: draft.PercentComplete,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Create: task %s created", created.ID)
	return uc.toOutput(created, true), nil
}

// Detail retrieves a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.TaskOutput, error) {
	t, err := uc.getTask(ctx, "Detail", id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return uc.toOutput(t, false), nil
}

// List returns a page of tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if !validStatus(input.Status) {
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	out := task.ListOutput{
		Tasks:  make([]task.TaskOutput, 0, len(tasks)),
		Total:  total,
		Limit:  input.Limit,
		Offset: input.Offset,
	}
	for _, t := range tasks {
		out.Tasks = append(out.Tasks, uc.toOutput(t, false))
	}
	return out, nil
}

// Delete removes a task by ID.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, err := uc.getTask(ctx, "Delete", id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// UpdateDescription replaces the description and re-derives progress.
func (uc *implUseCase) UpdateDescription(ctx context.Context, input task.UpdateDescriptionInput) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.getTask(ctx, "UpdateDescription", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return uc.commitDescription(ctx, "UpdateDescription", t, input.Description)
}

// SetStatus sets the status by hand. Progress is not recomputed, so a
// cancelled task stays cancelled until its status is set again.
func (uc *implUseCase) SetStatus(ctx context.Context, input task.SetStatusInput) (task.TaskOutput, error) {
	if !input.Status.Valid() {
		return task.TaskOutput{}, task.ErrInvalidStatus
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.getTask(ctx, "SetStatus", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if t.Status != nil && *t.Status == input.Status {
		return uc.toOutput(t, false), nil
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          model.StatusPtr(input.Status),
		PercentComplete: t.PercentComplete,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetStatus UpdateTask: %v", err)
		return task.TaskOutput{}, mapRepoError(err)
	}

	uc.l.Infof(ctx, "uc.SetStatus: task %s is now %s", t.ID, input.Status)
	return uc.toOutput(updated, true), nil
}
