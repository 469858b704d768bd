package usecase

import (
	"sync"

	"checklist-sync/internal/checklist"
	"checklist-sync/internal/task"
	"checklist-sync/internal/task/repository"
	pkgLog "checklist-sync/pkg/log"
)

// Options selects which progress fields the checklist constraint maintains.
type Options struct {
	StatusField  bool
	PercentField bool
}

type implUseCase struct {
	l            pkgLog.Logger
	repo         repository.Repository
	checklistSvc checklist.Service
	constraint   checklist.Constraint

	// mu serializes read-modify-write cycles so concurrent edits of the same
	// description cannot interleave.
	mu sync.Mutex
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, checklistSvc checklist.Service, opt Options) *implUseCase {
	var statusField, percentField checklist.IntFieldAdapter
	if opt.StatusField {
		statusField = checklist.NewIntFieldAdapter(checklist.FieldStatus)
	}
	if opt.PercentField {
		percentField = checklist.NewIntFieldAdapter(checklist.FieldPercentComplete)
	}

	return &implUseCase{
		l:            l,
		repo:         repo,
		checklistSvc: checklistSvc,
		constraint:   checklist.NewConstraint(statusField, percentField),
	}
}

var _ task.UseCase = (*implUseCase)(nil)
