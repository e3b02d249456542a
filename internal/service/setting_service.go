package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nikolayk812/gallery-shop/internal/domain"
	"github.com/nikolayk812/gallery-shop/internal/port"
)

type SettingService struct {
	settings port.SettingRepository
}

func NewSettings(settings port.SettingRepository) *SettingService {
	return &SettingService{settings: settings}
}

// Value returns the text stored under key, or def when the key is not set.
func (s *SettingService) Value(ctx context.Context, key, def string) (string, error) {
	setting, err := s.settings.GetSetting(ctx, key)
	if errors.Is(err, domain.ErrNotFound) {
		return def, nil
	}
	if err != nil {
		return "", classify(fmt.Errorf("settings.GetSetting: %w", err))
	}

	return setting.Text, nil
}

func (s *SettingService) Get(ctx context.Context, key string) (domain.Setting, error) {
	setting, err := s.settings.GetSetting(ctx, key)
	if err != nil {
		return domain.Setting{}, classify(fmt.Errorf("settings.GetSetting: %w", err))
	}

	return setting, nil
}

func (s *SettingService) Set(ctx context.Context, setting domain.Setting) (domain.Setting, error) {
	if setting.Key == "" {
		return domain.Setting{}, &domain.ValidationError{Field: "key", Reason: "is required"}
	}
	if len(setting.Key) > maxFieldLength {
		return domain.Setting{}, &domain.ValidationError{Field: "key", Reason: "must be at most 255 characters"}
	}
	if setting.Key == ShippingCostKey && strings.TrimSpace(setting.Text) != "" {
		if _, err := parseShippingCost(setting.Text); err != nil {
			return domain.Setting{}, err
		}
	}

	saved, err := s.settings.SetSetting(ctx, setting)
	if err != nil {
		return domain.Setting{}, classify(fmt.Errorf("settings.SetSetting: %w", err))
	}

	return saved, nil
}

func (s *SettingService) List(ctx context.Context) ([]domain.Setting, error) {
	settings, err := s.settings.ListSettings(ctx)
	if err != nil {
		return nil, classify(fmt.Errorf("settings.ListSettings: %w", err))
	}

	return settings, nil
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	deleted, err := s.settings.DeleteSetting(ctx, key)
	if err != nil {
		return classify(fmt.Errorf("settings.DeleteSetting: %w", err))
	}
	if !deleted {
		return domain.ErrNotFound
	}

	return nil
}
