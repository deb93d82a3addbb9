package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-assignments/internal/models"
)

type ProgressRepository struct {
	queue *DBQueue
}

func NewProgressRepository(queue *DBQueue) *ProgressRepository {
	return &ProgressRepository{queue: queue}
}

func (r *ProgressRepository) Exists(ctx context.Context, student string, assignmentID int64) (bool, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		var count int
		err := db.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM assignment_progress WHERE student = ? AND assignment_id = ?
		`, student, assignmentID).Scan(&count)
		return count > 0, err
	})
	if err != nil {
		return false, err
	}
	return result.(bool), nil
}

func (r *ProgressRepository) GetByStudentAndAssignment(ctx context.Context, student string, assignmentID int64) (*models.AssignmentProgress, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		row := db.QueryRowContext(ctx, `
			SELECT student, assignment_id, status, started_at
			FROM assignment_progress WHERE student = ? AND assignment_id = ?
		`, student, assignmentID)

		var p models.AssignmentProgress
		err := row.Scan(&p.Student, &p.AssignmentID, &p.Status, &p.StartedAt)
		if err != nil {
			return nil, err
		}
		return &p, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.AssignmentProgress), nil
}

// RecordStart persists one assignment start in a single transaction: the
// progress row, the numbered student task rows, and the current-task pointer.
// The progress row is re-checked inside the transaction, and a primary key
// violation on its insert is reported as ErrDuplicateStart, so two concurrent
// starts for the same pair can never both commit. Everything rolls back
// together on any failure.
func (r *ProgressRepository) RecordStart(ctx context.Context, student string, assignmentID int64, tasks []*models.Task) error {
	_, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return nil, err
		}
		defer func() { _ = tx.Rollback() }()

		var count int
		err = tx.QueryRowContext(ctx, `
			SELECT COUNT(*) FROM assignment_progress WHERE student = ? AND assignment_id = ?
		`, student, assignmentID).Scan(&count)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateStart
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO assignment_progress (student, assignment_id, status)
			VALUES (?, ?, ?)
		`, student, assignmentID, models.StatusInProgress)
		if err != nil {
			if IsUniqueViolation(err) {
				return nil, ErrDuplicateStart
			}
			return nil, err
		}

		for i, task := range tasks {
			_, err = tx.ExecContext(ctx, `
				INSERT INTO student_tasks (student, assignment_id, task_id, task_number, task_name)
				VALUES (?, ?, ?, ?, ?)
			`, student, assignmentID, task.ID, i+1, task.TaskName)
			if err != nil {
				return nil, err
			}
		}

		first := tasks[0]
		_, err = tx.ExecContext(ctx, `
			INSERT INTO current_tasks (student, assignment_id, task_id, task_name)
			VALUES (?, ?, ?, ?)
		`, student, assignmentID, first.ID, first.TaskName)
		if err != nil {
			return nil, err
		}

		return nil, tx.Commit()
	})
	return err
}

func (r *ProgressRepository) GetStudentTasks(ctx context.Context, student string, assignmentID int64) ([]*models.StudentTask, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		rows, err := db.QueryContext(ctx, `
			SELECT student, assignment_id, task_id, task_number, task_name
			FROM student_tasks
			WHERE student = ? AND assignment_id = ?
			ORDER BY task_number ASC
		`, student, assignmentID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var tasks []*models.StudentTask
		for rows.Next() {
			var t models.StudentTask
			if err := rows.Scan(&t.Student, &t.AssignmentID, &t.TaskID, &t.TaskNumber, &t.TaskName); err != nil {
				return nil, err
			}
			tasks = append(tasks, &t)
		}
		return tasks, rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.StudentTask), nil
}

func (r *ProgressRepository) GetCurrentTask(ctx context.Context, student string, assignmentID int64) (*models.CurrentTask, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		row := db.QueryRowContext(ctx, `
			SELECT student, assignment_id, task_id, task_name
			FROM current_tasks WHERE student = ? AND assignment_id = ?
		`, student, assignmentID)

		var ct models.CurrentTask
		err := row.Scan(&ct.Student, &ct.AssignmentID, &ct.TaskID, &ct.TaskName)
		if err != nil {
			return nil, err
		}
		return &ct, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.CurrentTask), nil
}
