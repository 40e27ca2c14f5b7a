package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/attendance-backend-go/internal/domain/leave"
	"github.com/staffhq/attendance-backend-go/internal/domain/setting"
	"github.com/staffhq/attendance-backend-go/internal/repository/memory"
	settingService "github.com/staffhq/attendance-backend-go/internal/service/setting"
)

func approvalEvent() leave.Event {
	return leave.Event{
		ID:         "evt-1",
		Actor:      "boss",
		Action:     leave.ActionApproved,
		EmployeeID: "emp-1",
		EmpID:      "EMP-001",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Changes: map[string]leave.FieldChange{
			"status": {Before: "pending", After: "approved"},
		},
		OccurredAt: time.Now().UTC(),
	}
}

func TestNotifierWritesAuditAndNotifications(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository()
	settingRepo := memory.NewSettingRepository()
	_, err := settingRepo.Upsert(ctx, setting.KeyBossEmail, "boss@example.com")
	require.NoError(t, err)

	n := NewNotifier(repo, settingService.NewSettingService(settingRepo), nil)
	n.handle(ctx, approvalEvent())

	audits, err := repo.ListAudits(ctx, 10)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, "boss", audits[0].Actor)
	assert.Equal(t, "approved", audits[0].Action)
	assert.Equal(t, "leave", audits[0].EntityName)
	assert.Contains(t, audits[0].Details, `status: "pending" -> "approved"`)

	logs, err := repo.ListNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	recipients := []string{logs[0].Recipient, logs[1].Recipient}
	assert.Contains(t, recipients, "EMP-001")
	assert.Contains(t, recipients, "boss@example.com")
}

func TestNotifierWithoutBossEmail(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewNotificationRepository()

	n := NewNotifier(repo, settingService.NewSettingService(memory.NewSettingRepository()), nil)
	n.handle(ctx, approvalEvent())

	logs, err := repo.ListNotifications(ctx, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "EMP-001", logs[0].Recipient)
}

func TestNotifierRunDrainsBus(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo := memory.NewNotificationRepository()
	bus := NewBus(8)
	n := NewNotifier(repo, settingService.NewSettingService(memory.NewSettingRepository()), bus.Events())

	done := make(chan struct{})
	go func() {
		n.Run(ctx)
		close(done)
	}()

	bus.Publish(approvalEvent())
	bus.Close()
	<-done

	audits, err := repo.ListAudits(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, audits, 1)
}

func TestBusDropsWhenFull(t *testing.T) {
	bus := NewBus(1)

	bus.Publish(approvalEvent())
	bus.Publish(approvalEvent()) // buffer full, dropped without blocking

	assert.Len(t, bus.Events(), 1)
}
