package checklist

import "checklist-sync/internal/model"

// Derive computes the progress of items. ok is false for an empty list, in
// which case nothing must be written.
func Derive(items []Item) (Progress, bool) {
	total := len(items)
	if total == 0 {
		return Progress{}, false
	}

	checked := 0
	for _, item := range items {
		if item.Checked {
			checked++
		}
	}

	percent := checked * 100 / total
	return Progress{Percent: percent, Status: statusFor(percent)}, true
}

func statusFor(percent int) model.TaskStatus {
	switch percent {
	case 100:
		return model.StatusCompleted
	case 0:
		return model.StatusNeedsAction
	default:
		return model.StatusInProcess
	}
}

// Apply decides which stored fields must be overwritten after the checklist
// changed. The returned Fields hold only the values to write.
//
// Status is written when the current status is absent, or when it differs
// from the derived one and is not Cancelled. A cancelled task keeps its
// status. Percent is written whenever it is absent or differs.
func Apply(current Fields, items []Item) Fields {
	progress, ok := Derive(items)
	if !ok {
		return Fields{}
	}

	var update Fields
	if shouldWriteStatus(current.Status, progress.Status) {
		update.Status = model.StatusPtr(progress.Status)
	}
	if current.Percent == nil || *current.Percent != progress.Percent {
		update.Percent = model.IntPtr(progress.Percent)
	}
	return update
}

func shouldWriteStatus(current *model.TaskStatus, candidate model.TaskStatus) bool {
	if current == nil {
		return true
	}
	return *current != candidate && *current != model.StatusCancelled
}

// Empty reports whether f carries no value.
func (f Fields) Empty() bool {
	return f.Status == nil && f.Percent == nil
}
