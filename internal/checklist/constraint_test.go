package checklist_test

import (
	"testing"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
)

func newConstraint(withStatus, withPercent bool) checklist.Constraint {
	var status, percent checklist.IntFieldAdapter
	if withStatus {
		status = checklist.NewIntFieldAdapter(checklist.FieldStatus)
	}
	if withPercent {
		percent = checklist.NewIntFieldAdapter(checklist.FieldPercentComplete)
	}
	return checklist.NewConstraint(status, percent)
}

func TestConstraintApply(t *testing.T) {
	t.Run("Writes Both Fields", func(t *testing.T) {
		values := checklist.MapContentSet{}
		text := "[x] Buy milk\n[ ] Walk dog\n[x] Pay bills"

		got := newConstraint(true, true).Apply(values, "", text)
		if got != text {
			t.Errorf("text must be returned unchanged, got %q", got)
		}
		if values[checklist.FieldPercentComplete] != 66 {
			t.Errorf("expected percent 66, got %d", values[checklist.FieldPercentComplete])
		}
		if model.TaskStatus(values[checklist.FieldStatus]) != model.StatusInProcess {
			t.Errorf("expected in process, got %d", values[checklist.FieldStatus])
		}
	})

	t.Run("Plain Text Is Ignored", func(t *testing.T) {
		values := checklist.MapContentSet{checklist.FieldPercentComplete: 10}
		newConstraint(true, true).Apply(values, "", "just a note\n[x] later")
		if len(values) != 1 || values[checklist.FieldPercentComplete] != 10 {
			t.Errorf("values changed for a plain note: %v", values)
		}
	})

	t.Run("Empty Text Is Ignored", func(t *testing.T) {
		values := checklist.MapContentSet{}
		newConstraint(true, true).Apply(values, "[x] a", "")
		if len(values) != 0 {
			t.Errorf("values changed for empty text: %v", values)
		}
	})

	t.Run("Marker Without Items Leaves Fields", func(t *testing.T) {
		values := checklist.MapContentSet{checklist.FieldStatus: int(model.StatusCompleted)}
		newConstraint(true, true).Apply(values, "", "[ ]\n\n[x]")
		if len(values) != 1 || values[checklist.FieldStatus] != int(model.StatusCompleted) {
			t.Errorf("values changed for a checklist without items: %v", values)
		}
	})

	t.Run("Cancelled Stays Cancelled", func(t *testing.T) {
		values := checklist.MapContentSet{checklist.FieldStatus: int(model.StatusCancelled)}
		newConstraint(true, true).Apply(values, "", "[x] A\n[x] B")
		if values[checklist.FieldStatus] != int(model.StatusCancelled) {
			t.Errorf("cancelled status overwritten with %d", values[checklist.FieldStatus])
		}
		if values[checklist.FieldPercentComplete] != 100 {
			t.Errorf("expected percent 100, got %d", values[checklist.FieldPercentComplete])
		}
	})

	t.Run("Missing Status Adapter", func(t *testing.T) {
		values := checklist.MapContentSet{}
		newConstraint(false, true).Apply(values, "", "[x] A")
		if _, ok := values[checklist.FieldStatus]; ok {
			t.Error("status written without an adapter")
		}
		if values[checklist.FieldPercentComplete] != 100 {
			t.Errorf("expected percent 100, got %d", values[checklist.FieldPercentComplete])
		}
	})

	t.Run("Missing Percent Adapter", func(t *testing.T) {
		values := checklist.MapContentSet{}
		newConstraint(true, false).Apply(values, "", "[ ] A")
		if _, ok := values[checklist.FieldPercentComplete]; ok {
			t.Error("percent written without an adapter")
		}
		if model.TaskStatus(values[checklist.FieldStatus]) != model.StatusNeedsAction {
			t.Errorf("expected needs action, got %d", values[checklist.FieldStatus])
		}
	})

	t.Run("No Adapters", func(t *testing.T) {
		values := checklist.MapContentSet{}
		newConstraint(false, false).Apply(values, "", "[x] A")
		if len(values) != 0 {
			t.Errorf("values written without adapters: %v", values)
		}
	})
}
