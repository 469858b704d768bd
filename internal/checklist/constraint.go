package checklist

import "checklist-sync/internal/model"

// Field keys used by the default adapters.
const (
	FieldStatus          = "status"
	FieldPercentComplete = "percent_complete"
)

// ContentSet is a caller-owned bag of integer field values.
type ContentSet interface {
	Int(key string) (int, bool)
	SetInt(key string, value int)
}

// IntFieldAdapter reads and writes one integer field of a ContentSet.
type IntFieldAdapter interface {
	Get(values ContentSet) (int, bool)
	Set(values ContentSet, value int)
}

type keyAdapter string

// NewIntFieldAdapter returns an adapter bound to key.
func NewIntFieldAdapter(key string) IntFieldAdapter {
	return keyAdapter(key)
}

func (k keyAdapter) Get(values ContentSet) (int, bool) {
	return values.Int(string(k))
}

func (k keyAdapter) Set(values ContentSet, value int) {
	values.SetInt(string(k), value)
}

// MapContentSet is a ContentSet backed by a map.
type MapContentSet map[string]int

func (m MapContentSet) Int(key string) (int, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapContentSet) SetInt(key string, value int) {
	m[key] = value
}

// Constraint keeps status and percent complete in line with a checklist text.
// Either adapter may be nil; that half of the update is then skipped.
type Constraint struct {
	status  IntFieldAdapter
	percent IntFieldAdapter
}

// NewConstraint creates a Constraint over the given adapters.
func NewConstraint(status, percent IntFieldAdapter) Constraint {
	return Constraint{status: status, percent: percent}
}

// Apply is called with the old and new text of the field. When newText is a
// checklist with at least one item it writes the derived status and percent
// into values. The text itself is returned unchanged.
func (c Constraint) Apply(values ContentSet, oldText, newText string) string {
	if !IsChecklist(newText) {
		return newText
	}

	var current Fields
	if c.status != nil {
		if v, ok := c.status.Get(values); ok {
			current.Status = model.StatusPtr(model.TaskStatus(v))
		}
	}
	if c.percent != nil {
		if v, ok := c.percent.Get(values); ok {
			current.Percent = model.IntPtr(v)
		}
	}

	update := Apply(current, Parse(newText))
	if c.status != nil && update.Status != nil {
		c.status.Set(values, int(*update.Status))
	}
	if c.percent != nil && update.Percent != nil {
		c.percent.Set(values, *update.Percent)
	}
	return newText
}
