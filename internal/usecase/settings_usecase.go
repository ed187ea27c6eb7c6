package usecase

import (
	"context"
	"sync"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	store        sync.Locker
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, store sync.Locker) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		store:        store,
	}
}

type SettingsInput struct {
	ShowPrices bool
}

func (uc *SettingsUseCase) GetSettings(ctx context.Context) (entity.Settings, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	return uc.settingsRepo.Get(ctx)
}

func (uc *SettingsUseCase) SaveSettings(ctx context.Context, input SettingsInput) (entity.Settings, error) {
	uc.store.Lock()
	defer uc.store.Unlock()

	settings := entity.Settings{ShowPrices: input.ShowPrices}
	if err := uc.settingsRepo.Save(ctx, settings); err != nil {
		return entity.Settings{}, err
	}
	return settings, nil
}
