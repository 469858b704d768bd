package model

import "time"

// Task is a task whose description may hold a checklist.
// Status and PercentComplete are optional fields: nil means "not set".
type Task struct {
	ID              string
	Title           string
	Description     string      // Free-form text; a checklist when its first line carries a marker
	Status          *TaskStatus // Derived from the checklist unless Cancelled
	PercentComplete *int        // 0..100, derived from the checklist
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
