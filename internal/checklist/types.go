package checklist

import "checklist-sync/internal/model"

// Markers are exactly three ASCII characters. No other spellings are
// recognised on input.
const (
	MarkerChecked      = "[x]"
	MarkerCheckedUpper = "[X]"
	MarkerUnchecked    = "[ ]"

	markerLen = 3

	// Serialized line prefixes: a marker followed by one space.
	PrefixChecked   = MarkerChecked + " "
	PrefixUnchecked = MarkerUnchecked + " "
)

// Item is a single checklist entry.
type Item struct {
	Checked bool   `json:"checked"`
	Label   string `json:"label"` // Marker stripped, trimmed. Never empty once parsed.
}

// Progress is the progress derived from a non-empty checklist.
type Progress struct {
	Percent int              `json:"percent"` // floor(checked*100/total), 0..100
	Status  model.TaskStatus `json:"status"`
}

// Fields holds the optional stored progress fields. A nil field is absent
// on input and "leave untouched" on output.
type Fields struct {
	Status  *model.TaskStatus
	Percent *int
}

// Row is one row of the editor representation of a checklist.
// Placeholder marks the trailing empty row used to append a new entry.
type Row struct {
	Checked     bool   `json:"checked"`
	Label       string `json:"label"`
	Placeholder bool   `json:"placeholder,omitempty"`
}
