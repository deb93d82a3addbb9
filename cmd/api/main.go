package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ad/go-assignments/internal/db"
	"github.com/ad/go-assignments/internal/handlers"
	"github.com/ad/go-assignments/internal/services"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	_ "modernc.org/sqlite"
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func main() {
	dbPath := getEnv("DB_PATH", "assignments.db")
	serverPort := getEnv("SERVER_PORT", ":8080")

	sqlDB, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer sqlDB.Close()

	if err := db.InitSchema(sqlDB); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	dbQueue := db.NewDBQueue(sqlDB)
	defer dbQueue.Close()

	assignmentRepo := db.NewAssignmentRepository(dbQueue)
	categoryRepo := db.NewCategoryRepository(dbQueue)
	taskRepo := db.NewTaskRepository(dbQueue)
	progressRepo := db.NewProgressRepository(dbQueue)

	eligibility := services.NewEligibilityChecker(assignmentRepo, progressRepo)
	catalog := services.NewTaskCatalog(categoryRepo, taskRepo)
	sampler := services.NewSampler(nil)
	starter := services.NewAssignmentStarter(eligibility, catalog, sampler, progressRepo)

	handler := handlers.NewHandler(assignmentRepo, taskRepo, starter)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	handlers.RegisterRoutes(e, handler)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		if err := e.Start(serverPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	log.Printf("Assignment API started on %s, DB: %s", serverPort, dbPath)

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}
