package handler

import (
	"oliadmin/internal/usecase"
	"oliadmin/pkg/response"

	"github.com/labstack/echo/v4"
)

type SettingsHandler struct {
	settingsUseCase *usecase.SettingsUseCase
}

func NewSettingsHandler(settingsUseCase *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{
		settingsUseCase: settingsUseCase,
	}
}

type settingsRequest struct {
	ShowPrices bool `json:"showPrices"`
}

func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.settingsUseCase.GetSettings(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}

func (h *SettingsHandler) SaveSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.settingsUseCase.SaveSettings(c.Request().Context(), usecase.SettingsInput{
		ShowPrices: req.ShowPrices,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, settings)
}
