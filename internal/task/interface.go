package task

import (
	"context"

	"checklist-sync/internal/checklist"
)

// UseCase defines the business logic interface for the task domain.
// Every operation that changes a description runs the checklist constraint.
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateInput) (TaskOutput, error)
	Detail(ctx context.Context, id string) (TaskOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, id string) error

	// UpdateDescription replaces the description text.
	UpdateDescription(ctx context.Context, input UpdateDescriptionInput) (TaskOutput, error)

	// Structured checklist edits, flattened back to text.
	ToggleItem(ctx context.Context, input ToggleItemInput) (TaskOutput, error)
	AddItem(ctx context.Context, input AddItemInput) (TaskOutput, error)
	RemoveItem(ctx context.Context, input RemoveItemInput) (TaskOutput, error)

	// SetStatus sets the status by hand. It is the only way to cancel a task.
	SetStatus(ctx context.Context, input SetStatusInput) (TaskOutput, error)

	// SwitchMode converts the description between plain text and checklist.
	SwitchMode(ctx context.Context, input SwitchModeInput) (TaskOutput, error)

	// Rows returns the editor rows of the description.
	Rows(ctx context.Context, id string) ([]checklist.Row, error)
}
