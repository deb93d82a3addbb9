package handlers

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/ad/go-assignments/internal/db"
	"github.com/ad/go-assignments/internal/models"
	"github.com/ad/go-assignments/internal/services"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	assignmentRepo *db.AssignmentRepository
	taskRepo       *db.TaskRepository
	starter        *services.AssignmentStarter
}

func NewHandler(assignmentRepo *db.AssignmentRepository, taskRepo *db.TaskRepository, starter *services.AssignmentStarter) *Handler {
	return &Handler{
		assignmentRepo: assignmentRepo,
		taskRepo:       taskRepo,
		starter:        starter,
	}
}

// AssignmentRequest uses pointer fields so a missing key is distinguishable
// from a zero value; all four are required.
type AssignmentRequest struct {
	Name         *string  `json:"name"`
	Active       *bool    `json:"active"`
	Points       *float64 `json:"points"`
	ChallengePts *float64 `json:"challenge_pts"`
}

func (r *AssignmentRequest) valid() bool {
	return r.Name != nil && r.Active != nil && r.Points != nil && r.ChallengePts != nil
}

type messageResponse struct {
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
}

func (h *Handler) HandleStartAssignment(c echo.Context) error {
	assignmentID, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid assignment id."})
	}
	student := c.Param("student")

	count, err := h.starter.Start(c.Request().Context(), assignmentID, student)
	if err != nil {
		return h.startFailure(c, student, err)
	}

	return c.JSON(http.StatusOK, struct {
		Message   string `json:"message"`
		TaskCount int    `json:"task_count"`
	}{
		Message:   "Assignment successfully started.",
		TaskCount: count,
	})
}

// startFailure maps each domain failure kind to its own status code.
// Infrastructure errors are logged in full and reported without detail.
func (h *Handler) startFailure(c echo.Context, student string, err error) error {
	message := "Starting assignment for student " + student + " failed."

	var status int
	switch {
	case errors.Is(err, services.ErrAssignmentNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrAssignmentNotActive),
		errors.Is(err, services.ErrAlreadyStarted):
		status = http.StatusConflict
	case errors.Is(err, services.ErrNoCategoriesDefined),
		errors.Is(err, services.ErrNoTasksForAssignment),
		errors.Is(err, services.ErrNoTasksSelected),
		errors.Is(err, services.ErrInsufficientTasks):
		status = http.StatusUnprocessableEntity
	default:
		log.Printf("[START] infrastructure error: %v", err)
		return c.JSON(http.StatusInternalServerError, messageResponse{
			Message: message,
			Reason:  "Internal database error.",
		})
	}

	return c.JSON(status, messageResponse{
		Message: message,
		Reason:  err.Error(),
	})
}

func (h *Handler) HandleListAssignments(c echo.Context) error {
	assignments, err := h.assignmentRepo.GetAll(c.Request().Context())
	if err != nil {
		return h.dbError(c, err)
	}
	if assignments == nil {
		assignments = []*models.Assignment{}
	}
	return c.JSON(http.StatusOK, assignments)
}

func (h *Handler) HandleGetAssignment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid assignment id."})
	}

	assignment, err := h.assignmentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, messageResponse{Message: "Assignment not found."})
		}
		return h.dbError(c, err)
	}
	return c.JSON(http.StatusOK, assignment)
}

func (h *Handler) HandleListAssignmentTasks(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid assignment id."})
	}

	tasks, err := h.taskRepo.GetByAssignment(c.Request().Context(), id)
	if err != nil {
		return h.dbError(c, err)
	}
	if tasks == nil {
		tasks = []*models.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *Handler) HandleCreateAssignment(c echo.Context) error {
	var req AssignmentRequest
	if err := c.Bind(&req); err != nil || !req.valid() {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid data format."})
	}

	id, err := h.assignmentRepo.Create(c.Request().Context(), &models.Assignment{
		Name:         *req.Name,
		Active:       *req.Active,
		Points:       *req.Points,
		ChallengePts: *req.ChallengePts,
	})
	if err != nil {
		return h.dbError(c, err)
	}

	return c.JSON(http.StatusOK, struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}{
		Message: "Assignment successfully created",
		ID:      id,
	})
}

func (h *Handler) HandleUpdateAssignment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid assignment id."})
	}

	var req AssignmentRequest
	if err := c.Bind(&req); err != nil || !req.valid() {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid data format."})
	}

	err = h.assignmentRepo.Update(c.Request().Context(), &models.Assignment{
		ID:           id,
		Name:         *req.Name,
		Active:       *req.Active,
		Points:       *req.Points,
		ChallengePts: *req.ChallengePts,
	})
	if err != nil {
		return h.dbError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Assignment successfully updated."})
}

func (h *Handler) HandleDeleteAssignment(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid assignment id."})
	}

	if err := h.assignmentRepo.Delete(c.Request().Context(), id); err != nil {
		return h.dbError(c, err)
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Assignment successfully deleted."})
}

func (h *Handler) dbError(c echo.Context, err error) error {
	log.Printf("[DB] %v", err)
	return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Internal database error."})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
