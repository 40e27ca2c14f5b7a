package setting

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
)

type SettingServiceImpl struct {
	settingRepo setting.SettingRepository
}

func NewSettingService(settingRepo setting.SettingRepository) setting.SettingService {
	return &SettingServiceImpl{settingRepo: settingRepo}
}

// Get implements setting.SettingService. A missing key is not an error;
// the fallback is returned.
func (s *SettingServiceImpl) Get(ctx context.Context, key, fallback string) string {
	value, err := s.settingRepo.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, setting.ErrSettingNotFound) {
			slog.Warn("setting lookup failed, using fallback", "key", key, "error", err)
		}
		return fallback
	}
	return value
}

// GetInt implements setting.SettingService.
func (s *SettingServiceImpl) GetInt(ctx context.Context, key string, fallback int) int {
	raw := s.Get(ctx, key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		slog.Warn("setting is not an integer, using fallback", "key", key, "value", raw)
		return fallback
	}
	return value
}

// GetDecimal implements setting.SettingService.
func (s *SettingServiceImpl) GetDecimal(ctx context.Context, key string, fallback decimal.Decimal) decimal.Decimal {
	raw := s.Get(ctx, key, "")
	if raw == "" {
		return fallback
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		slog.Warn("setting is not a decimal, using fallback", "key", key, "value", raw)
		return fallback
	}
	return value
}

// Set implements setting.SettingService.
func (s *SettingServiceImpl) Set(ctx context.Context, req setting.UpsertSettingRequest) (setting.Setting, error) {
	if err := req.Validate(); err != nil {
		return setting.Setting{}, err
	}
	return s.settingRepo.Upsert(ctx, req.Key, req.Value)
}

// List implements setting.SettingService.
func (s *SettingServiceImpl) List(ctx context.Context) ([]setting.Setting, error) {
	return s.settingRepo.List(ctx)
}
