package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-assignments/internal/models"
)

type CategoryRepository struct {
	queue *DBQueue
}

func NewCategoryRepository(queue *DBQueue) *CategoryRepository {
	return &CategoryRepository{queue: queue}
}

func (r *CategoryRepository) Create(ctx context.Context, tasksPerCategory int) (int64, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		res, err := db.ExecContext(ctx, `
			INSERT INTO task_categories (tasks_per_category) VALUES (?)
		`, tasksPerCategory)
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

// GetAll returns every category definition ordered by id, which is the
// sampling iteration order and therefore the task numbering order.
func (r *CategoryRepository) GetAll(ctx context.Context) ([]*models.TaskCategory, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		rows, err := db.QueryContext(ctx, `
			SELECT id, tasks_per_category
			FROM task_categories
			ORDER BY id ASC
		`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var categories []*models.TaskCategory
		for rows.Next() {
			var c models.TaskCategory
			if err := rows.Scan(&c.ID, &c.TasksPerCategory); err != nil {
				return nil, err
			}
			categories = append(categories, &c)
		}
		return categories, rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.TaskCategory), nil
}
