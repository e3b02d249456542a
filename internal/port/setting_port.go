package port

import (
	"context"

	"github.com/nikolayk812/gallery-shop/internal/domain"
)

type SettingRepository interface {
	GetSetting(ctx context.Context, key string) (domain.Setting, error)
	SetSetting(ctx context.Context, setting domain.Setting) (domain.Setting, error)
	ListSettings(ctx context.Context) ([]domain.Setting, error)
	DeleteSetting(ctx context.Context, key string) (bool, error)
}
