package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	usecases "github.com/chronos-app/chronos/internal/usecases/schedule"
)

// BackupController handles export and import of the whole schedule collection
type BackupController struct {
	exportUC *usecases.ExportUseCase
	importUC *usecases.ImportUseCase
}

// NewBackupController creates a new BackupController instance
func NewBackupController(exportUC *usecases.ExportUseCase, importUC *usecases.ImportUseCase) *BackupController {
	return &BackupController{
		exportUC: exportUC,
		importUC: importUC,
	}
}

// GetName returns the name of this controller for logging
func (c *BackupController) GetName() string {
	return "BackupController"
}

// RegisterRoutes registers backup routes
func (c *BackupController) RegisterRoutes(e *echo.Echo) {
	e.GET("/backup/export", c.Export)
	e.POST("/backup/import", c.Import)

	log.Printf("Registered backup routes")
}

// Export handles GET /backup/export requests. The response body is the
// same JSON array format the import endpoint accepts.
func (c *BackupController) Export(ctx echo.Context) error {
	data, err := c.exportUC.Execute(ctx.Request().Context())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to export schedules"})
	}

	filename := fmt.Sprintf("chronos-backup-%s.json", time.Now().UTC().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// ImportResponse reports how many schedules an import installed
type ImportResponse struct {
	Imported int `json:"imported"`
}

// Import handles POST /backup/import requests. Importing replaces every
// stored schedule, so the caller must opt in with confirm=true.
func (c *BackupController) Import(ctx echo.Context) error {
	if ctx.QueryParam("confirm") != "true" {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "import replaces all schedules; pass confirm=true to proceed"})
	}

	payload, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, map[string]string{"error": "failed to read request body"})
	}

	count, err := c.importUC.Execute(ctx.Request().Context(), payload)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidImport) {
			return ctx.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to import schedules"})
	}

	return ctx.JSON(http.StatusOK, ImportResponse{Imported: count})
}
