package services

import (
	"errors"
	"fmt"
)

// Domain failure kinds for the assignment start workflow.
var (
	ErrAssignmentNotFound   = errors.New("assignment does not exist")
	ErrAssignmentNotActive  = errors.New("assignment is not active")
	ErrAlreadyStarted       = errors.New("assignment already started")
	ErrNoCategoriesDefined  = errors.New("task categories are not defined")
	ErrNoTasksForAssignment = errors.New("no tasks defined for assignment")
	ErrInsufficientTasks    = errors.New("not enough tasks in category")
	ErrNoTasksSelected      = errors.New("task selection produced no tasks")
)

// StartError wraps a domain failure kind with the identifiers needed to tell
// which entity was at fault.
type StartError struct {
	Kind         error
	AssignmentID int64
	Student      string
	CategoryID   int64
	Required     int
	Available    int
}

func (e *StartError) Error() string {
	switch e.Kind {
	case ErrAssignmentNotFound, ErrAssignmentNotActive:
		return fmt.Sprintf("%s: assignment %d", e.Kind.Error(), e.AssignmentID)
	case ErrAlreadyStarted:
		return fmt.Sprintf("%s: student %s, assignment %d", e.Kind.Error(), e.Student, e.AssignmentID)
	case ErrNoTasksForAssignment, ErrNoTasksSelected:
		return fmt.Sprintf("%s: assignment %d", e.Kind.Error(), e.AssignmentID)
	case ErrInsufficientTasks:
		return fmt.Sprintf("%s %d: need %d, have %d", e.Kind.Error(), e.CategoryID, e.Required, e.Available)
	}
	return e.Kind.Error()
}

func (e *StartError) Unwrap() error { return e.Kind }

func notFoundError(assignmentID int64) error {
	return &StartError{Kind: ErrAssignmentNotFound, AssignmentID: assignmentID}
}

func notActiveError(assignmentID int64) error {
	return &StartError{Kind: ErrAssignmentNotActive, AssignmentID: assignmentID}
}

func alreadyStartedError(student string, assignmentID int64) error {
	return &StartError{Kind: ErrAlreadyStarted, Student: student, AssignmentID: assignmentID}
}

func noTasksSelectedError(assignmentID int64) error {
	return &StartError{Kind: ErrNoTasksSelected, AssignmentID: assignmentID}
}

func insufficientTasksError(categoryID int64, required, available int) error {
	return &StartError{Kind: ErrInsufficientTasks, CategoryID: categoryID, Required: required, Available: available}
}
