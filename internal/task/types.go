package task

import (
	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
)

// --- UseCase Inputs ---

type CreateInput struct {
	Title       string
	Description string
	Status      *model.TaskStatus // Optional initial status
	Percent     *int              // Optional initial percent complete
}

type ListInput struct {
	Status *model.TaskStatus
	Limit  int
	Offset int
}

type UpdateDescriptionInput struct {
	ID          string
	Description string
}

type ToggleItemInput struct {
	ID      string
	Index   int
	Checked bool
}

type AddItemInput struct {
	ID      string
	Label   string
	Checked bool
}

type RemoveItemInput struct {
	ID    string
	Index int
}

type SetStatusInput struct {
	ID     string
	Status model.TaskStatus
}

type SwitchModeInput struct {
	ID        string
	Checklist bool
}

// --- UseCase Outputs ---

// TaskOutput is a task together with its parsed checklist.
type TaskOutput struct {
	Task      model.Task
	Checklist bool             // Description starts with a checklist marker
	Items     []checklist.Item // Parsed items; empty for plain notes
	Changed   bool             // False when the operation was a no-op
}

type ListOutput struct {
	Tasks  []TaskOutput
	Total  int
	Limit  int
	Offset int
}
