package setting

import (
	"context"

	"github.com/shopspring/decimal"
)

// SettingService is the typed lookup contract used across the application.
// Get never fails on a missing key; the caller-supplied default is returned
// instead. Typed getters additionally fall back to the default when the
// stored value does not parse.
type SettingService interface {
	Get(ctx context.Context, key, fallback string) string
	GetInt(ctx context.Context, key string, fallback int) int
	GetDecimal(ctx context.Context, key string, fallback decimal.Decimal) decimal.Decimal

	Set(ctx context.Context, req UpsertSettingRequest) (Setting, error)
	List(ctx context.Context) ([]Setting, error)
}
