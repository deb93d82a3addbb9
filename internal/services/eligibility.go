package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ad/go-assignments/internal/db"
)

// EligibilityChecker runs the pre-transaction checks: the assignment exists,
// is active, and the student has no progress row yet. The progress check here
// is best-effort; RecordStart repeats it under the transaction.
type EligibilityChecker struct {
	assignmentRepo *db.AssignmentRepository
	progressRepo   *db.ProgressRepository
}

func NewEligibilityChecker(assignmentRepo *db.AssignmentRepository, progressRepo *db.ProgressRepository) *EligibilityChecker {
	return &EligibilityChecker{
		assignmentRepo: assignmentRepo,
		progressRepo:   progressRepo,
	}
}

func (c *EligibilityChecker) Check(ctx context.Context, assignmentID int64, student string) error {
	assignment, err := c.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return notFoundError(assignmentID)
		}
		return err
	}
	if !assignment.Active {
		return notActiveError(assignmentID)
	}

	started, err := c.progressRepo.Exists(ctx, student, assignmentID)
	if err != nil {
		return err
	}
	if started {
		return alreadyStartedError(student, assignmentID)
	}
	return nil
}
