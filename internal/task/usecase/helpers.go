package usecase

import (
	"context"
	"errors"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
	"checklist-sync/internal/task"
	"checklist-sync/internal/task/repository"
)

// taskValues exposes the progress fields of a task as a checklist.ContentSet.
type taskValues struct {
	t *model.Task
}

func (v taskValues) Int(key string) (int, bool) {
	switch key {
	case checklist.FieldStatus:
		if v.t.Status != nil {
			return int(*v.t.Status), true
		}
	case checklist.FieldPercentComplete:
		if v.t.PercentComplete != nil {
			return *v.t.PercentComplete, true
		}
	}
	return 0, false
}

func (v taskValues) SetInt(key string, value int) {
	switch key {
	case checklist.FieldStatus:
		v.t.Status = model.StatusPtr(model.TaskStatus(value))
	case checklist.FieldPercentComplete:
		v.t.PercentComplete = model.IntPtr(value)
	}
}

// getTask loads a task and maps a missing one to task.ErrTaskNotFound.
func (uc *implUseCase) getTask(ctx context.Context, method, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s GetTask: %v", method, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// commitDescription stores newText as the description of t and lets the
// checklist constraint update the progress fields. Nothing is written when
// the text did not change.
func (uc *implUseCase) commitDescription(ctx context.Context, method string, t model.Task, newText string) (task.TaskOutput, error) {
	if newText == t.Description {
		return uc.toOutput(t, false), nil
	}

	oldText := t.Description
	t.Description = uc.constraint.Apply(taskValues{t: &t}, oldText, newText)

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              t.ID,
		Title:           t.Title,
		Description:     t.Description,
		Status:          t.Status,
		PercentComplete: t.PercentComplete,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.%s UpdateTask: %v", method, err)
		return task.TaskOutput{}, mapRepoError(err)
	}

	uc.l.Debugf(ctx, "uc.%s: task %s description updated", method, t.ID)
	return uc.toOutput(updated, true), nil
}

// checklistDocument parses the description of t, which must be a checklist.
func (uc *implUseCase) checklistDocument(t model.Task) (checklist.Document, error) {
	if !uc.checklistSvc.IsChecklist(t.Description) {
		return checklist.Document{}, task.ErrNotChecklist
	}
	return uc.checklistSvc.Parse(t.Description), nil
}

func (uc *implUseCase) toOutput(t model.Task, changed bool) task.TaskOutput {
	out := task.TaskOutput{
		Task:    t,
		Changed: changed,
	}
	if uc.checklistSvc.IsChecklist(t.Description) {
		out.Checklist = true
		out.Items = uc.checklistSvc.Parse(t.Description).Items
	}
	return out
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	return err
}

func validStatus(s *model.TaskStatus) bool {
	return s == nil || s.Valid()
}

func validPercent(p *int) bool {
	return p == nil || (*p >= 0 && *p <= 100)
}
