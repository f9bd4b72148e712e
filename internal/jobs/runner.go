package jobs

import (
	"context"
	"errors"
	"fmt"
	"time"
	"wbrent/config"
	"wbrent/infras/otel"
	reservation "wbrent/internal/domains/reservation/service"
	"wbrent/shared/cache"
	"wbrent/shared/constant"
	"wbrent/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	JobPickupReminders = "pickup-reminders"
	JobAllDaily        = "all-daily"

	lockKeyPrefix = "job:lock:"
)

var ErrUnknownJob = errors.New("unknown job")

// Runner executes scheduled jobs. Each job takes a per-day Redis lock first,
// so only one runner works on a given day at a time.
type Runner struct {
	reservation reservation.Reservation
	cache       cache.RedisCache
	cfg         *config.Config
	otel        otel.Otel
	now         func() time.Time
}

func NewRunner(reservation reservation.Reservation, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) *Runner {
	return &Runner{
		reservation: reservation,
		cache:       cache,
		cfg:         cfg,
		otel:        otel,
		now:         timezone.Now,
	}
}

func (r *Runner) Config() *config.Config {
	return r.cfg
}

// PickupReminders emails customers whose confirmed pickup is coming up.
func (r *Runner) PickupReminders() {
	r.runWithRecovery(JobPickupReminders, func(ctx context.Context, now time.Time) error {
		sent, err := r.reservation.SendPickupReminders(ctx, now)
		if err != nil {
			return fmt.Errorf("failed to send pickup reminders: %w", err)
		}

		log.Info().Int("sent", sent).Msg("pickup reminders queued")

		return nil
	})
}

// RunAllDaily runs every daily job once, for manual execution.
func (r *Runner) RunAllDaily() {
	r.PickupReminders()
}

// Shutdown flushes traces recorded by finished jobs.
func (r *Runner) Shutdown(ctx context.Context) error {
	return r.otel.Shutdown(ctx) // nolint:wrapcheck
}

// Run executes the named job once.
func (r *Runner) Run(name string) error {
	switch name {
	case JobPickupReminders:
		r.PickupReminders()
	case JobAllDaily:
		r.RunAllDaily()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	return nil
}

func (r *Runner) runWithRecovery(name string, job func(ctx context.Context, now time.Time) error) {
	ctx, scope := r.otel.NewScope(context.Background(), constant.OtelJobScopeName, constant.OtelJobScopeName+"."+name)
	defer scope.End()

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Str("job", name).Interface("panic", rec).Msg("job panicked")
		}
	}()

	now := r.now()
	key := lockKeyPrefix + name + ":" + timezone.Format(now, constant.DateOnlyFormat)

	acquired, err := r.cache.Acquire(ctx, key, r.cfg.Scheduler.LockTTLSeconds)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", name).Msg("failed to acquire job lock")

		return
	}

	if !acquired {
		log.Info().Str("job", name).Str("lock", key).Msg("job already running elsewhere, skipping")

		return
	}

	log.Info().Str("job", name).Msg("starting job")

	if err := job(ctx, now); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("job", name).Msg("job failed")

		return
	}

	log.Info().Str("job", name).Msg("job completed")
}
