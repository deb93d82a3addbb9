package db

import (
	"context"
	"database/sql"

	"github.com/ad/go-assignments/internal/models"
)

type AssignmentRepository struct {
	queue *DBQueue
}

func NewAssignmentRepository(queue *DBQueue) *AssignmentRepository {
	return &AssignmentRepository{queue: queue}
}

func (r *AssignmentRepository) Create(ctx context.Context, a *models.Assignment) (int64, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		res, err := db.ExecContext(ctx, `
			INSERT INTO assignments (name, active, points, challenge_pts)
			VALUES (?, ?, ?, ?)
		`, a.Name, a.Active, a.Points, a.ChallengePts)
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

func (r *AssignmentRepository) Update(ctx context.Context, a *models.Assignment) error {
	_, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		_, err := db.ExecContext(ctx, `
			UPDATE assignments SET name = ?, active = ?, points = ?, challenge_pts = ?
			WHERE id = ?
		`, a.Name, a.Active, a.Points, a.ChallengePts, a.ID)
		return nil, err
	})
	return err
}

func (r *AssignmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		_, err := db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
		return nil, err
	})
	return err
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id int64) (*models.Assignment, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		row := db.QueryRowContext(ctx, `
			SELECT id, name, active, points, challenge_pts, created_at
			FROM assignments WHERE id = ?
		`, id)

		var a models.Assignment
		err := row.Scan(&a.ID, &a.Name, &a.Active, &a.Points, &a.ChallengePts, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &a, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*models.Assignment), nil
}

func (r *AssignmentRepository) GetAll(ctx context.Context) ([]*models.Assignment, error) {
	result, err := r.queue.Execute(ctx, func(ctx context.Context, db *sql.DB) (interface{}, error) {
		rows, err := db.QueryContext(ctx, `
			SELECT id, name, active, points, challenge_pts, created_at
			FROM assignments
			ORDER BY id ASC
		`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		var assignments []*models.Assignment
		for rows.Next() {
			var a models.Assignment
			if err := rows.Scan(&a.ID, &a.Name, &a.Active, &a.Points, &a.ChallengePts, &a.CreatedAt); err != nil {
				return nil, err
			}
			assignments = append(assignments, &a)
		}
		return assignments, rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return result.([]*models.Assignment), nil
}
