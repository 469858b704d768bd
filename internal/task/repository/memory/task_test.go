package memory_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"checklist-sync/internal/model"
	"checklist-sync/internal/task/repository"
	"checklist-sync/internal/task/repository/memory"
	"checklist-sync/pkg/log"
)

func newRepo(t *testing.T, capacity int) repository.Repository {
	t.Helper()
	repo, err := memory.New(capacity, log.NewNop())
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	return repo
}

func TestNewRejectsBadCapacity(t *testing.T) {
	if _, err := memory.New(0, log.NewNop()); err == nil {
		t.Error("expected error for zero capacity")
	}
}

func TestCreateGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, 10)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:           "groceries",
		Description:     "[ ] milk",
		Status:          model.StatusPtr(model.StatusNeedsAction),
		PercentComplete: model.IntPtr(0),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected an id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Description != "[ ] milk" || got.Title != "groceries" {
		t.Errorf("unexpected task %+v", got)
	}

	// Returned tasks must not alias stored state.
	*got.PercentComplete = 90
	again, _ := repo.GetTask(ctx, created.ID)
	if *again.PercentComplete != 0 {
		t.Errorf("stored percent changed through a returned pointer: %d", *again.PercentComplete)
	}

	missing, err := repo.GetTask(ctx, "nope")
	if err != nil || missing.ID != "" {
		t.Errorf("missing task should be zero value without error, got %+v, %v", missing, err)
	}
}

func TestUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, 10)

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Description: "[ ] a"})

	updated, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:              created.ID,
		Description:     "[x] a",
		Status:          model.StatusPtr(model.StatusCompleted),
		PercentComplete: model.IntPtr(100),
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Description != "[x] a" || *updated.Status != model.StatusCompleted {
		t.Errorf("unexpected update result %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Error("CreatedAt must not change on update")
	}

	if _, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: "nope"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if got, _ := repo.GetTask(ctx, created.ID); got.ID != "" {
		t.Error("task still present after delete")
	}
	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Errorf("deleting twice should not fail: %v", err)
	}
}

func TestListTasks(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, 10)

	var ids []string
	for i, status := range []model.TaskStatus{model.StatusNeedsAction, model.StatusCompleted, model.StatusNeedsAction} {
		task, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title:  string(rune('a' + i)),
			Status: model.StatusPtr(status),
		})
		ids = append(ids, task.ID)
	}
	repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "no status"})

	all, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Fatalf("expected 4 tasks, got total=%d len=%d", total, len(all))
	}
	if all[0].Title != "no status" || all[3].ID != ids[0] {
		t.Errorf("expected newest first, got %q ... %q", all[0].Title, all[3].Title)
	}

	needsAction, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Status: model.StatusPtr(model.StatusNeedsAction)})
	if total != 2 || len(needsAction) != 2 {
		t.Fatalf("expected 2 needs-action tasks, got %d", total)
	}
	if needsAction[0].ID != ids[2] || needsAction[1].ID != ids[0] {
		t.Error("filtered list out of order")
	}

	page, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Limit: 2, Offset: 1})
	if total != 4 || len(page) != 2 {
		t.Fatalf("expected page of 2 out of 4, got %d of %d", len(page), total)
	}
	if page[0].ID != ids[2] {
		t.Error("unexpected first element of page")
	}

	beyond, _, _ := repo.ListTasks(ctx, repository.ListTasksOptions{Offset: 10})
	if len(beyond) != 0 {
		t.Errorf("expected empty page, got %d", len(beyond))
	}
}

func TestEviction(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t, 2)

	first, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "1"})
	repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "2"})
	repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "3"})

	if got, _ := repo.GetTask(ctx, first.ID); got.ID != "" {
		t.Error("least recently used task should have been evicted")
	}
	_, total, _ := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if total != 2 {
		t.Errorf("expected 2 tasks left, got %d", total)
	}
}

// recordingLogger remembers the debug lines written on eviction.
type recordingLogger struct {
	log.Logger

	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) Debugf(ctx context.Context, template string, arg ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, fmt.Sprintf(template, arg...))
}

func (r *recordingLogger) dropped(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, line := range r.lines {
		if strings.HasSuffix(line, "dropped task "+id) {
			return true
		}
	}
	return false
}

func TestUpdateDoesNotResurrectEvicted(t *testing.T) {
	ctx := context.Background()
	rec := &recordingLogger{Logger: log.NewNop()}
	repo, err := memory.New(4, rec)
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}

	target, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: "target"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer close(done)
		for i := 0; i < 500; i++ {
			if _, err := repo.CreateTask(ctx, repository.CreateTaskOptions{Title: fmt.Sprintf("filler %d", i)}); err != nil {
				t.Errorf("CreateTask: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			_, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: target.ID, Title: "target"})
			if errors.Is(err, repository.ErrNotFound) {
				return
			}
		}
	}()
	wg.Wait()

	if rec.dropped(target.ID) {
		got, err := repo.GetTask(ctx, target.ID)
		if err != nil || got.ID != "" {
			t.Errorf("evicted task came back: %+v, %v", got, err)
		}
	}

	_, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if total > 4 {
		t.Errorf("store exceeded its capacity: %d tasks", total)
	}
}
