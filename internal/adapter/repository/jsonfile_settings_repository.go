package repository

import (
	"context"

	"oliadmin/internal/domain/entity"
	"oliadmin/internal/domain/repository"
	"oliadmin/internal/infrastructure/jsonstore"
	"oliadmin/pkg/errors"
)

type jsonFileSettingsRepository struct {
	store *jsonstore.Store
}

func NewJSONFileSettingsRepository(store *jsonstore.Store) repository.SettingsRepository {
	return &jsonFileSettingsRepository{
		store: store,
	}
}

func (r *jsonFileSettingsRepository) Get(ctx context.Context) (entity.Settings, error) {
	settings := entity.DefaultSettings()
	if err := r.store.LoadDocument("settings", &settings); err != nil {
		return entity.DefaultSettings(), errors.Internal("Failed to load settings", err)
	}
	return settings, nil
}

func (r *jsonFileSettingsRepository) Save(ctx context.Context, settings entity.Settings) error {
	if err := r.store.SaveDocument("settings", settings); err != nil {
		return errors.Internal("Failed to save settings", err)
	}
	return nil
}
