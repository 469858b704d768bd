package model

import (
	"fmt"
	"strings"
)

// TaskStatus is the coarse lifecycle status of a task. The numeric values are
// the status codes stored by task providers and must not change.
type TaskStatus int

const (
	StatusNeedsAction TaskStatus = 0
	StatusInProcess   TaskStatus = 1
	StatusCompleted   TaskStatus = 2
	StatusCancelled   TaskStatus = 3
)

var statusNames = map[TaskStatus]string{
	StatusNeedsAction: "needs_action",
	StatusInProcess:   "in_process",
	StatusCompleted:   "completed",
	StatusCancelled:   "cancelled",
}

func (s TaskStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("TaskStatus(%d)", int(s))
}

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

// ParseTaskStatus accepts the snake_case names returned by String, the
// iCalendar spellings (NEEDS-ACTION, IN-PROCESS, ...) and "canceled".
func ParseTaskStatus(raw string) (TaskStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	norm = strings.ReplaceAll(norm, "-", "_")
	if norm == "canceled" {
		norm = "cancelled"
	}
	for status, name := range statusNames {
		if name == norm {
			return status, nil
		}
	}
	return 0, fmt.Errorf("unknown task status %q", raw)
}

// StatusPtr returns a pointer to s.
func StatusPtr(s TaskStatus) *TaskStatus {
	return &s
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int {
	return &v
}
