package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-assignments/internal/models"
)

type TaskRepository struct {
	queue *DBQueue
}

func NewTaskRepository(queue *DBQueue) *TaskRepository {
	return &TaskRepository{queue: queue}
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) (int64, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		res, err := db.ExecContext(ctx, `
			INSERT INTO tasks (task_name, category_id, assignment_id)
			VALUES (?, ?, ?)
		`, task.TaskName, task.CategoryID, task.AssignmentID)
		if err != nil {
			return nil, err
		}
		return res.LastInsertId()
	})
	if err != nil {
		return 0, err
	}
	return result.(int64), nil
}

func (r *TaskRepository) GetByAssignment(ctx context.Context, assignmentID int64) ([]*models.Task, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		rows, err := db.QueryContext(ctx, `
			SELECT id, task_name, category_id, assignment_id
			FROM tasks
			WHERE assignment_id = ?
			ORDER BY id ASC
		`, assignmentID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return scanTasks(rows)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.Task), nil
}

func scanTasks(rows *sql.Rows) ([]*models.Task, error) {
	var tasks []*models.Task
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.TaskName, &t.CategoryID, &t.AssignmentID); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}
	return tasks, rows.Err()
}
