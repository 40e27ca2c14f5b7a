package setting

import "context"

type SettingRepository interface {
	// Get returns the stored value for key, or ErrSettingNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Upsert stores value under key, overwriting any previous value.
	Upsert(ctx context.Context, key, value string) (Setting, error)

	// List returns all settings ordered by key.
	List(ctx context.Context) ([]Setting, error)
}
