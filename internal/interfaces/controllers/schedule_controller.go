package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	portrepos "github.com/chronos-app/chronos/internal/usecases/ports/repositories"
	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
	"github.com/chronos-app/chronos/pkg/dateutil"
	"github.com/chronos-app/chronos/pkg/schedule"
)

// ScheduleController handles schedule management endpoints
type ScheduleController struct {
	generator *schedule.Generator
	createUC  *usecases.CreateScheduleUseCase
	listUC    *usecases.ListSchedulesUseCase
	getUC     *usecases.GetScheduleUseCase
	deleteUC  *usecases.DeleteScheduleUseCase
	updateUC  *usecases.UpdateTaskUseCase
	reportUC  *usecases.ReportUseCase
}

// NewScheduleController creates a new ScheduleController instance
func NewScheduleController(
	generator *schedule.Generator,
	createUC *usecases.CreateScheduleUseCase,
	listUC *usecases.ListSchedulesUseCase,
	getUC *usecases.GetScheduleUseCase,
	deleteUC *usecases.DeleteScheduleUseCase,
	updateUC *usecases.UpdateTaskUseCase,
	reportUC *usecases.ReportUseCase,
) *ScheduleController {
	return &ScheduleController{
		generator: generator,
		createUC:  createUC,
		listUC:    listUC,
		getUC:     getUC,
		deleteUC:  deleteUC,
		updateUC:  updateUC,
		reportUC:  reportUC,
	}
}

// GetName returns the name of this controller for logging
func (c *ScheduleController) GetName() string {
	return "ScheduleController"
}

// RegisterRoutes registers schedule management routes
func (c *ScheduleController) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/schedules")

	g.POST("", c.CreateSchedule)
	g.GET("", c.ListSchedules)
	g.POST("/generate", c.GeneratePreview)
	g.GET("/:id", c.GetSchedule)
	g.DELETE("/:id", c.DeleteSchedule)
	g.PUT("/:id/tasks/:date", c.UpdateTask)
	g.GET("/:id/report", c.GetReport)

	log.Printf("Registered schedule management routes")
}

// GenerateRequest represents the request body for a schedule preview
type GenerateRequest struct {
	Subjects  []string `json:"subjects"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}

// GenerateResponse carries a freshly generated, unsaved plan
type GenerateResponse struct {
	Tasks []schedule.Task `json:"scheduleData"`
}

// GeneratePreview handles POST /schedules/generate. Nothing is persisted;
// the client regenerates freely until the user saves ("shuffle").
func (c *ScheduleController) GeneratePreview(ctx echo.Context) error {
	var req GenerateRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if err := usecases.ValidateSubjects(req.Subjects); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusOK, GenerateResponse{
		Tasks: c.generator.Generate(req.Subjects, start, end),
	})
}

// CreateScheduleRequest represents the request body for saving a schedule
type CreateScheduleRequest struct {
	Name      string          `json:"name"`
	Subjects  []string        `json:"subjects"`
	StartDate string          `json:"startDate"`
	EndDate   string          `json:"endDate"`
	Tasks     []schedule.Task `json:"scheduleData,omitempty"`
}

// CreateSchedule handles POST /schedules requests
func (c *ScheduleController) CreateSchedule(ctx echo.Context) error {
	var req CreateScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	created, err := c.createUC.Execute(ctx.Request().Context(), &usecases.CreateScheduleRequest{
		Name:      req.Name,
		Subjects:  req.Subjects,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Tasks:     req.Tasks,
	})
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	return ctx.JSON(http.StatusCreated, created)
}

// ListSchedules handles GET /schedules requests
func (c *ScheduleController) ListSchedules(ctx echo.Context) error {
	schedules, err := c.listUC.Execute(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to list schedules"})
	}
	if schedules == nil {
		schedules = []*schedule.Schedule{}
	}
	return ctx.JSON(http.StatusOK, schedules)
}

// GetSchedule handles GET /schedules/:id requests
func (c *ScheduleController) GetSchedule(ctx echo.Context) error {
	s, err := c.getUC.Execute(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, portrepos.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{"error": "schedule not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load schedule"})
	}
	return ctx.JSON(http.StatusOK, s)
}

// DeleteSchedule handles DELETE /schedules/:id requests
func (c *ScheduleController) DeleteSchedule(ctx echo.Context) error {
	if err := c.deleteUC.Execute(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to delete schedule"})
	}
	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTaskRequest represents the request body for a completion toggle
type UpdateTaskRequest struct {
	Completed bool `json:"completed"`
}

// UpdateTask handles PUT /schedules/:id/tasks/:date requests
func (c *ScheduleController) UpdateTask(ctx echo.Context) error {
	var req UpdateTaskRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	updated, err := c.updateUC.Execute(ctx.Request().Context(), ctx.Param("id"), ctx.Param("date"), req.Completed)
	if err != nil {
		if errors.Is(err, portrepos.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{"error": "schedule or task date not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to update task"})
	}

	return ctx.JSON(http.StatusOK, updated)
}

// GetReport handles GET /schedules/:id/report requests
func (c *ScheduleController) GetReport(ctx echo.Context) error {
	report, err := c.reportUC.Execute(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, portrepos.ErrNotFound) {
			return ctx.JSON(http.StatusNotFound, map[string]string{"error": "schedule not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to build report"})
	}
	return ctx.JSON(http.StatusOK, report)
}
