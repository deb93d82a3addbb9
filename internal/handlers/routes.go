package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires all assignment routes. Literal segments are registered
// before the parameterized ones so /all and /create are not captured as ids.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/assignments")

	g.GET("/all", h.HandleListAssignments)
	g.POST("/create", h.HandleCreateAssignment)
	g.GET("/:id", h.HandleGetAssignment)
	g.GET("/:id/tasks", h.HandleListAssignmentTasks)
	g.PUT("/:id", h.HandleUpdateAssignment)
	g.DELETE("/:id", h.HandleDeleteAssignment)
	g.POST("/:id/:student/start", h.HandleStartAssignment)
}
