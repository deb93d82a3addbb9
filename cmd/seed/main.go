package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/ad/go-assignments/internal/db"
	"github.com/ad/go-assignments/internal/models"
)

// Seeds a local database with two task categories and one active assignment,
// enough to exercise the start endpoint during development.
func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "assignments.db"
	}

	database, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	if err := db.InitSchema(database); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	queue := db.NewDBQueue(database)
	defer queue.Close()

	ctx := context.Background()
	categoryRepo := db.NewCategoryRepository(queue)
	assignmentRepo := db.NewAssignmentRepository(queue)
	taskRepo := db.NewTaskRepository(queue)

	theoryID, err := categoryRepo.Create(ctx, 2)
	if err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}
	practiceID, err := categoryRepo.Create(ctx, 1)
	if err != nil {
		log.Fatalf("Failed to create category: %v", err)
	}

	assignmentID, err := assignmentRepo.Create(ctx, &models.Assignment{
		Name:         "Introduction to SQL",
		Active:       true,
		Points:       100,
		ChallengePts: 25,
	})
	if err != nil {
		log.Fatalf("Failed to create assignment: %v", err)
	}

	for i := 1; i <= 5; i++ {
		_, err := taskRepo.Create(ctx, &models.Task{
			TaskName:     fmt.Sprintf("Theory question %d", i),
			CategoryID:   theoryID,
			AssignmentID: assignmentID,
		})
		if err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}
	}
	for i := 1; i <= 3; i++ {
		_, err := taskRepo.Create(ctx, &models.Task{
			TaskName:     fmt.Sprintf("Practice exercise %d", i),
			CategoryID:   practiceID,
			AssignmentID: assignmentID,
		})
		if err != nil {
			log.Fatalf("Failed to create task: %v", err)
		}
	}

	log.Printf("Seeded assignment %d with 8 tasks in 2 categories", assignmentID)
}
