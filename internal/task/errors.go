package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrNotChecklist        = errors.New("task description is not a checklist")
	ErrItemIndexOutOfRange = errors.New("checklist item index out of range")
	ErrEmptyLabel          = errors.New("checklist item label is empty")
	ErrMultilineLabel      = errors.New("checklist item label must be a single line")
	ErrInvalidStatus       = errors.New("invalid task status")
	ErrInvalidPercent      = errors.New("percent complete must be between 0 and 100")
)
