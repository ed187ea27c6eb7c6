package handler

import (
	"net/http"

	"oliadmin/internal/usecase"
	"oliadmin/pkg/response"

	"github.com/labstack/echo/v4"
)

type CheckpointHandler struct {
	checkpointUseCase *usecase.CheckpointUseCase
}

func NewCheckpointHandler(checkpointUseCase *usecase.CheckpointUseCase) *CheckpointHandler {
	return &CheckpointHandler{
		checkpointUseCase: checkpointUseCase,
	}
}

// Validate and Commit return their payloads unwrapped; the save modal in the
// UI consumes the report shape directly.
func (h *CheckpointHandler) Validate(c echo.Context) error {
	report, err := h.checkpointUseCase.Validate(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

func (h *CheckpointHandler) PendingChanges(c echo.Context) error {
	changes, err := h.checkpointUseCase.PendingChanges(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, changes)
}

func (h *CheckpointHandler) Commit(c echo.Context) error {
	result, err := h.checkpointUseCase.Checkpoint(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
