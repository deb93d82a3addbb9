package models

type TaskCategory struct {
	ID               int64 `json:"id"`
	TasksPerCategory int   `json:"tasks_per_category"`
}

type Task struct {
	ID           int64  `json:"id"`
	TaskName     string `json:"task_name"`
	CategoryID   int64  `json:"category_id"`
	AssignmentID int64  `json:"assignment_id"`
}
