package usecase

import (
	"context"
	"strings"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/task"
)

// ToggleItem sets the checked state of one checklist item.
func (uc *implUseCase) ToggleItem(ctx context.Context, input task.ToggleItemInput) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.getTask(ctx, "ToggleItem", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	doc, err := uc.checklistDocument(t)
	if err != nil {
		return task.TaskOutput{}, err
	}

	next, ok := doc.SetChecked(input.Index, input.Checked)
	if !ok {
		return task.TaskOutput{}, task.ErrItemIndexOutOfRange
	}
	return uc.commitDescription(ctx, "ToggleItem", t, next.Text())
}

// AddItem appends an item. An empty description starts a new checklist.
func (uc *implUseCase) AddItem(ctx context.Context, input task.AddItemInput) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if checklist.HasLineBreak(strings.TrimSpace(input.Label)) {
		return task.TaskOutput{}, task.ErrMultilineLabel
	}

	t, err := uc.getTask(ctx, "AddItem", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}

	var doc checklist.Document
	if t.Description != "" {
		if doc, err = uc.checklistDocument(t); err != nil {
			return task.TaskOutput{}, err
		}
	}

	next, ok := doc.Append(input.Label, input.Checked)
	if !ok {
		return task.TaskOutput{}, task.ErrEmptyLabel
	}
	return uc.commitDescription(ctx, "AddItem", t, next.Text())
}

// RemoveItem deletes one checklist item.
func (uc *implUseCase) RemoveItem(ctx context.Context, input task.RemoveItemInput) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.getTask(ctx, "RemoveItem", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	doc, err := uc.checklistDocument(t)
	if err != nil {
		return task.TaskOutput{}, err
	}

	next, ok := doc.Remove(input.Index)
	if !ok {
		return task.TaskOutput{}, task.ErrItemIndexOutOfRange
	}
	return uc.commitDescription(ctx, "RemoveItem", t, next.Text())
}

// SwitchMode converts the description between plain text and checklist.
func (uc *implUseCase) SwitchMode(ctx context.Context, input task.SwitchModeInput) (task.TaskOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	t, err := uc.getTask(ctx, "SwitchMode", input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return uc.commitDescription(ctx, "SwitchMode", t, uc.checklistSvc.SwitchMode(t.Description, input.Checklist))
}

// Rows returns the editor rows of the description, placeholder included.
func (uc *implUseCase) Rows(ctx context.Context, id string) ([]checklist.Row, error) {
	t, err := uc.getTask(ctx, "Rows", id)
	if err != nil {
		return nil, err
	}
	return uc.checklistSvc.Rows(t.Description), nil
}
