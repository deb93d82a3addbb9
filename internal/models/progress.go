package models

import "time"

type AssignmentProgress struct {
	Student      string         `json:"student"`
	AssignmentID int64          `json:"assignment_id"`
	Status       ProgressStatus `json:"status"`
	StartedAt    time.Time      `json:"started_at"`
}

type StudentTask struct {
	Student      string `json:"student"`
	AssignmentID int64  `json:"assignment_id"`
	TaskID       int64  `json:"task_id"`
	TaskNumber   int    `json:"task_number"`
	TaskName     string `json:"task_name"`
}

type CurrentTask struct {
	Student      string `json:"student"`
	AssignmentID int64  `json:"assignment_id"`
	TaskID       int64  `json:"task_id"`
	TaskName     string `json:"task_name"`
}
