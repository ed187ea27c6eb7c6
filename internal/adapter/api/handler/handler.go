package handler

import (
	"oliadmin/internal/usecase"
)

var (
	productHandler    *ProductHandler
	categoryHandler   *CategoryHandler
	settingsHandler   *SettingsHandler
	checkpointHandler *CheckpointHandler
	healthHandler     *HealthHandler
)

func Setup(
	productUseCase *usecase.ProductUseCase,
	categoryUseCase *usecase.CategoryUseCase,
	settingsUseCase *usecase.SettingsUseCase,
	checkpointUseCase *usecase.CheckpointUseCase,
) {
	productHandler = NewProductHandler(productUseCase)
	categoryHandler = NewCategoryHandler(categoryUseCase)
	settingsHandler = NewSettingsHandler(settingsUseCase)
	checkpointHandler = NewCheckpointHandler(checkpointUseCase)
	healthHandler = NewHealthHandler()
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCategoryHandler() *CategoryHandler {
	return categoryHandler
}

func GetSettingsHandler() *SettingsHandler {
	return settingsHandler
}

func GetCheckpointHandler() *CheckpointHandler {
	return checkpointHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
