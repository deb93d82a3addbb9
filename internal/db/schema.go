package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS assignments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    active BOOLEAN NOT NULL DEFAULT FALSE,
    points REAL NOT NULL DEFAULT 0,
    challenge_pts REAL NOT NULL DEFAULT 0,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS task_categories (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    tasks_per_category INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    task_name TEXT NOT NULL,
    category_id INTEGER NOT NULL REFERENCES task_categories(id),
    assignment_id INTEGER NOT NULL REFERENCES assignments(id)
);

CREATE TABLE IF NOT EXISTS assignment_progress (
    student TEXT NOT NULL,
    assignment_id INTEGER NOT NULL REFERENCES assignments(id),
    status TEXT NOT NULL DEFAULT 'In Progress',
    started_at DATETIME DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (student, assignment_id)
);

CREATE TABLE IF NOT EXISTS student_tasks (
    student TEXT NOT NULL,
    assignment_id INTEGER NOT NULL REFERENCES assignments(id),
    task_id INTEGER NOT NULL REFERENCES tasks(id),
    task_number INTEGER NOT NULL,
    task_name TEXT NOT NULL,
    PRIMARY KEY (student, assignment_id, task_number)
);

CREATE TABLE IF NOT EXISTS current_tasks (
    student TEXT NOT NULL,
    assignment_id INTEGER NOT NULL REFERENCES assignments(id),
    task_id INTEGER NOT NULL REFERENCES tasks(id),
    task_name TEXT NOT NULL,
    PRIMARY KEY (student, assignment_id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_assignment ON tasks(assignment_id);
CREATE INDEX IF NOT EXISTS idx_student_tasks_pair ON student_tasks(student, assignment_id);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
