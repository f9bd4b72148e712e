package jobs

import (
	"fmt"
	"wbrent/shared/timezone"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler runs the Runner's jobs on their cron schedules.
type Scheduler struct {
	cron   *cron.Cron
	runner *Runner
}

func NewScheduler(runner *Runner) (*Scheduler, error) {
	c := cron.New(
		cron.WithLocation(timezone.GetLocation()),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:   c,
		runner: runner,
	}

	if err := s.registerJobs(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) registerJobs() error {
	cfg := s.runner.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.PickupReminders, s.runner.PickupReminders); err != nil {
		log.Error().Err(err).Str("spec", cfg.PickupReminders).Msg("failed to register pickup reminders job")

		return fmt.Errorf("failed to register %s job: %w", JobPickupReminders, err)
	}

	log.Info().Int("jobs", len(s.cron.Entries())).Msg("cron jobs registered")

	return nil
}

func (s *Scheduler) Start() {
	log.Info().Msg("starting cron scheduler")
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	log.Info().Msg("stopping cron scheduler")

	<-s.cron.Stop().Done()

	log.Info().Msg("cron scheduler stopped")
}

func (s *Scheduler) Entries() int {
	return len(s.cron.Entries())
}
