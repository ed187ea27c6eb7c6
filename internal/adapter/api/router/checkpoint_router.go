package router

import (
	"oliadmin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupCheckpointRouter(e *echo.Echo) {
	checkpointHandler := handler.GetCheckpointHandler()

	e.GET("/api/validate", checkpointHandler.Validate)
	e.GET("/api/changes", checkpointHandler.PendingChanges)
	e.POST("/api/commit", checkpointHandler.Commit)
}
