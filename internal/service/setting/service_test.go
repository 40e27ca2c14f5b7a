package setting

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/pkg/validator"
	"github.com/staffhq/attendance-backend-go/internal/repository/memory"
)

func newSettingFixture() (setting.SettingService, *memory.SettingRepository) {
	repo := memory.NewSettingRepository()
	return NewSettingService(repo), repo
}

func TestGetReturnsStoredValue(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingFixture()

	_, err := repo.Upsert(ctx, "boss_email", "boss@example.com")
	require.NoError(t, err)

	assert.Equal(t, "boss@example.com", svc.Get(ctx, "boss_email", "fallback@example.com"))
}

func TestGetFallsBackOnMissingKey(t *testing.T) {
	svc, _ := newSettingFixture()

	assert.Equal(t, "fallback", svc.Get(context.Background(), "missing", "fallback"))
}

func TestGetIntCoercion(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingFixture()

	_, err := repo.Upsert(ctx, "working_days_per_month", "20")
	require.NoError(t, err)
	assert.Equal(t, 20, svc.GetInt(ctx, "working_days_per_month", 22))

	// Unparsable values recover to the fallback
	_, err = repo.Upsert(ctx, "working_days_per_month", "twenty")
	require.NoError(t, err)
	assert.Equal(t, 22, svc.GetInt(ctx, "working_days_per_month", 22))

	assert.Equal(t, 22, svc.GetInt(ctx, "missing", 22))
}

func TestGetDecimalCoercion(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingFixture()

	_, err := repo.Upsert(ctx, "global_bonus", "150.75")
	require.NoError(t, err)
	assert.Equal(t, "150.75", svc.GetDecimal(ctx, "global_bonus", decimal.Zero).String())

	_, err = repo.Upsert(ctx, "global_bonus", "lots")
	require.NoError(t, err)
	assert.True(t, svc.GetDecimal(ctx, "global_bonus", decimal.Zero).IsZero())
}

func TestSetValidatesAndStores(t *testing.T) {
	ctx := context.Background()
	svc, _ := newSettingFixture()

	stored, err := svc.Set(ctx, setting.UpsertSettingRequest{Key: "global_bonus", Value: "100"})
	require.NoError(t, err)
	assert.Equal(t, "100", stored.Value)

	_, err = svc.Set(ctx, setting.UpsertSettingRequest{Key: "", Value: "100"})
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestListReturnsAllSettings(t *testing.T) {
	ctx := context.Background()
	svc, repo := newSettingFixture()

	_, err := repo.Upsert(ctx, "b-key", "2")
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, "a-key", "1")
	require.NoError(t, err)

	settings, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, settings, 2)
	assert.Equal(t, "a-key", settings[0].Key)
	assert.Equal(t, "b-key", settings[1].Key)
}
