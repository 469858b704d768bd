package model_test

import (
	"testing"

	"checklist-sync/internal/model"
)

func TestParseTaskStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    model.TaskStatus
		wantErr bool
	}{
		{"needs_action", model.StatusNeedsAction, false},
		{"NEEDS-ACTION", model.StatusNeedsAction, false},
		{"in_process", model.StatusInProcess, false},
		{" Completed ", model.StatusCompleted, false},
		{"canceled", model.StatusCancelled, false},
		{"CANCELLED", model.StatusCancelled, false},
		{"done", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseTaskStatus(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestTaskStatusString(t *testing.T) {
	if got := model.StatusInProcess.String(); got != "in_process" {
		t.Errorf("unexpected name %q", got)
	}
	if got := model.TaskStatus(42).String(); got != "TaskStatus(42)" {
		t.Errorf("unexpected name %q", got)
	}
	if model.TaskStatus(42).Valid() {
		t.Error("42 should not be a valid status")
	}
}
