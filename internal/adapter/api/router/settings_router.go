package router

import (
	"oliadmin/internal/adapter/api/handler"

	"github.com/labstack/echo/v4"
)

func SetupSettingsRouter(e *echo.Echo) {
	settingsHandler := handler.GetSettingsHandler()

	e.GET("/api/settings", settingsHandler.GetSettings)
	e.PUT("/api/settings", settingsHandler.SaveSettings)
}
