package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
)

type SettingRepository struct {
	mu     sync.RWMutex
	values map[string]setting.Setting
}

func NewSettingRepository() *SettingRepository {
	return &SettingRepository{values: make(map[string]setting.Setting)}
}

func (r *SettingRepository) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.values[key]
	if !ok {
		return "", setting.ErrSettingNotFound
	}
	return s.Value, nil
}

func (r *SettingRepository) Upsert(_ context.Context, key, value string) (setting.Setting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := setting.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	r.values[key] = s
	return s, nil
}

func (r *SettingRepository) List(_ context.Context) ([]setting.Setting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	settings := make([]setting.Setting, 0, len(r.values))
	for _, s := range r.values {
		settings = append(settings, s)
	}
	sort.Slice(settings, func(i, j int) bool { return settings[i].Key < settings[j].Key })
	return settings, nil
}
