package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"wbrent/config"
	otelMocks "wbrent/infras/otel/mocks"
	reservationMocks "wbrent/internal/domains/reservation/service/mocks"
	cacheMocks "wbrent/shared/cache/mocks"
	"wbrent/shared/timezone"
)

const lockKey = "job:lock:pickup-reminders:2026-01-21"

func newRunner(t *testing.T) (*Runner, *reservationMocks.MockReservation, *cacheMocks.MockRedisCache, time.Time) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := reservationMocks.NewMockReservation(ctrl)
	cache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Scheduler.LockTTLSeconds = 3600
	cfg.Scheduler.PickupReminders = "0 0 9 * * *"

	now := time.Date(2026, 1, 21, 9, 0, 0, 0, timezone.GetLocation())

	runner := NewRunner(svc, cache, cfg, otelMocks.NewOtel())
	runner.now = func() time.Time { return now }

	return runner, svc, cache, now
}

func TestRunner_PickupReminders(t *testing.T) {
	t.Run("sends when the lock is free", func(t *testing.T) {
		runner, svc, cache, now := newRunner(t)

		cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(true, nil)
		svc.EXPECT().SendPickupReminders(gomock.Any(), now).Return(2, nil)

		runner.PickupReminders()
	})

	t.Run("skips when another runner holds the lock", func(t *testing.T) {
		runner, _, cache, _ := newRunner(t)

		cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(false, nil)

		runner.PickupReminders()
	})

	t.Run("skips when the lock cannot be checked", func(t *testing.T) {
		runner, _, cache, _ := newRunner(t)

		cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(false, errors.New("redis down"))

		runner.PickupReminders()
	})

	t.Run("service error is logged", func(t *testing.T) {
		runner, svc, cache, now := newRunner(t)

		cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(true, nil)
		svc.EXPECT().SendPickupReminders(gomock.Any(), now).Return(0, errors.New("db down"))

		runner.PickupReminders()
	})

	t.Run("panic is recovered", func(t *testing.T) {
		runner, svc, cache, now := newRunner(t)

		cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(true, nil)
		svc.EXPECT().SendPickupReminders(gomock.Any(), now).DoAndReturn(func(_ any, _ time.Time) (int, error) {
			panic("boom")
		})

		assert.NotPanics(t, runner.PickupReminders)
	})
}

func TestRunner_Run(t *testing.T) {
	runner, svc, cache, now := newRunner(t)

	cache.EXPECT().Acquire(gomock.Any(), lockKey, 3600).Return(true, nil).Times(2)
	svc.EXPECT().SendPickupReminders(gomock.Any(), now).Return(0, nil).Times(2)

	require.NoError(t, runner.Run(JobPickupReminders))
	require.NoError(t, runner.Run(JobAllDaily))

	err := runner.Run("vacuum")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownJob)
}

func TestScheduler(t *testing.T) {
	runner, _, _, _ := newRunner(t)

	scheduler, err := NewScheduler(runner)
	require.NoError(t, err)
	assert.Equal(t, 1, scheduler.Entries())

	runner.cfg.Scheduler.PickupReminders = "every morning"

	_, err = NewScheduler(runner)
	require.Error(t, err)
}

func TestRunner_Shutdown(t *testing.T) {
	runner, _, _, _ := newRunner(t)

	assert.NoError(t, runner.Shutdown(context.Background()))
}
