package services

import (
	"context"

	"github.com/ad/go-assignments/internal/db"
	"github.com/ad/go-assignments/internal/models"
)

// Catalog holds everything the sampler needs for one assignment: the category
// definitions in iteration order and the assignment's tasks grouped by
// category id.
type Catalog struct {
	Categories      []*models.TaskCategory
	TasksByCategory map[int64][]*models.Task
}

type TaskCatalog struct {
	categoryRepo *db.CategoryRepository
	taskRepo     *db.TaskRepository
}

func NewTaskCatalog(categoryRepo *db.CategoryRepository, taskRepo *db.TaskRepository) *TaskCatalog {
	return &TaskCatalog{
		categoryRepo: categoryRepo,
		taskRepo:     taskRepo,
	}
}

func (c *TaskCatalog) Load(ctx context.Context, assignmentID int64) (*Catalog, error) {
	categories, err := c.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, &StartError{Kind: ErrNoCategoriesDefined}
	}

	tasks, err := c.taskRepo.GetByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, &StartError{Kind: ErrNoTasksForAssignment, AssignmentID: assignmentID}
	}

	byCategory := make(map[int64][]*models.Task)
	for _, task := range tasks {
		byCategory[task.CategoryID] = append(byCategory[task.CategoryID], task)
	}

	return &Catalog{
		Categories:      categories,
		TasksByCategory: byCategory,
	}, nil
}
