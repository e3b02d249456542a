package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/gallery-shop/internal/db"
	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type settingRepository struct {
	q *db.Queries
}

func NewSetting(pool *pgxpool.Pool) port.SettingRepository {
	return &settingRepository{
		q: db.New(pool),
	}
}

func (r *settingRepository) GetSetting(ctx context.Context, key string) (domain.Setting, error) {
	if key == "" {
		return domain.Setting{}, fmt.Errorf("key is empty")
	}

	row, err := r.q.GetSetting(ctx, key)
	if err != nil {
		return domain.Setting{}, notFoundOr(err, "q.GetSetting")
	}

	return mapSettingToDomain(row), nil
}

// SetSetting replaces the value stored under the setting's key.
func (r *settingRepository) SetSetting(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	if setting.Key == "" {
		return domain.Setting{}, fmt.Errorf("key is empty")
	}

	row, err := r.q.UpsertSetting(ctx, db.UpsertSettingParams{
		Key:         setting.Key,
		Text:        setting.Text,
		Description: setting.Description,
	})
	if err != nil {
		return domain.Setting{}, fmt.Errorf("q.UpsertSetting: %w", err)
	}

	return mapSettingToDomain(row), nil
}

func (r *settingRepository) ListSettings(ctx context.Context) ([]domain.Setting, error) {
	rows, err := r.q.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListSettings: %w", err)
	}

	settings := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, mapSettingToDomain(row))
	}

	return settings, nil
}

func (r *settingRepository) DeleteSetting(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	rowsAffected, err := r.q.DeleteSetting(ctx, key)
	if err != nil {
		return false, fmt.Errorf("q.DeleteSetting: %w", err)
	}

	return rowsAffected > 0, nil
}

func mapSettingToDomain(row db.Setting) domain.Setting {
	return domain.Setting{
		Key:         row.Key,
		Text:        row.Text,
		Description: row.Description,
		UpdatedAt:   row.UpdatedAt,
	}
}
