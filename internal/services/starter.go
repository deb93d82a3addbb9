package services

import (
	"context"
	"errors"

	"github.com/ad/go-assignments/internal/db"
)

// AssignmentStarter coordinates the start workflow: eligibility, catalog
// load, sampling, then the transactional write. Nothing is persisted unless
// every step before the transaction succeeded, and the transaction itself is
// all-or-nothing.
type AssignmentStarter struct {
	eligibility  *EligibilityChecker
	catalog      *TaskCatalog
	sampler      *Sampler
	progressRepo *db.ProgressRepository
}

func NewAssignmentStarter(eligibility *EligibilityChecker, catalog *TaskCatalog, sampler *Sampler, progressRepo *db.ProgressRepository) *AssignmentStarter {
	return &AssignmentStarter{
		eligibility:  eligibility,
		catalog:      catalog,
		sampler:      sampler,
		progressRepo: progressRepo,
	}
}

// Start begins the assignment for the student and returns the number of
// tasks assigned. A second start for the same pair reports ErrAlreadyStarted
// no matter how the two calls interleave.
func (s *AssignmentStarter) Start(ctx context.Context, assignmentID int64, student string) (int, error) {
	if err := s.eligibility.Check(ctx, assignmentID, student); err != nil {
		return 0, err
	}

	catalog, err := s.catalog.Load(ctx, assignmentID)
	if err != nil {
		return 0, err
	}

	tasks, err := s.sampler.Sample(catalog)
	if err != nil {
		return 0, err
	}
	// Every quota can legitimately be zero; an empty selection has no first
	// task to point current_tasks at, so refuse it before writing anything.
	if len(tasks) == 0 {
		return 0, noTasksSelectedError(assignmentID)
	}

	err = s.progressRepo.RecordStart(ctx, student, assignmentID, tasks)
	if err != nil {
		if errors.Is(err, db.ErrDuplicateStart) {
			return 0, alreadyStartedError(student, assignmentID)
		}
		return 0, err
	}

	return len(tasks), nil
}
