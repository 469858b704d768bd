package usecase_test

import (
	"context"
	"testing"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/model"
	"checklist-sync/internal/task"
	"checklist-sync/internal/task/repository"
	"checklist-sync/internal/task/repository/memory"
	"checklist-sync/internal/task/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// countingRepo wraps a repository and counts writes.
type countingRepo struct {
	repository.Repository
	updates int
}

func (r *countingRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	r.updates++
	return r.Repository.UpdateTask(ctx, opt)
}

// failingRepo fails every call.
type failingRepo struct {
	err error
}

func (r *failingRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	return model.Task{}, r.err
}
func (r *failingRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	return model.Task{}, r.err
}
func (r *failingRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, r.err
}
func (r *failingRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, r.err
}
func (r *failingRepo) DeleteTask(ctx context.Context, id string) error {
	return r.err
}

func newRepo(t *testing.T) *countingRepo {
	t.Helper()
	repo, err := memory.New(100, &mockLogger{})
	if err != nil {
		t.Fatalf("memory.New: %v", err)
	}
	return &countingRepo{Repository: repo}
}

func newUseCase(t *testing.T, opt usecase.Options) (task.UseCase, *countingRepo) {
	t.Helper()
	repo := newRepo(t)
	return usecase.New(&mockLogger{}, repo, checklist.New(), opt), repo
}

var bothFields = usecase.Options{StatusField: true, PercentField: true}

func mustCreate(t *testing.T, uc task.UseCase, input task.CreateInput) task.TaskOutput {
	t.Helper()
	out, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return out
}

func assertProgress(t *testing.T, tk model.Task, wantStatus model.TaskStatus, wantPercent int) {
	t.Helper()
	if tk.Status == nil {
		t.Errorf("status not set, want %v", wantStatus)
	} else if *tk.Status != wantStatus {
		t.Errorf("status: got %v, want %v", *tk.Status, wantStatus)
	}
	if tk.PercentComplete == nil {
		t.Errorf("percent not set, want %d", wantPercent)
	} else if *tk.PercentComplete != wantPercent {
		t.Errorf("percent: got %d, want %d", *tk.PercentComplete, wantPercent)
	}
}
