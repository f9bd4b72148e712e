package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"wbrent/config"
	"wbrent/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

// MigrationURL is the write endpoint DSN plus the bookkeeping table option
// understood by the golang-migrate postgres driver.
func MigrationURL(cfg *config.Config) (string, error) {
	parsed, err := url.Parse(postgres.WriteEndpoint(cfg).DSN())
	if err != nil {
		return "", fmt.Errorf("error parsing database url: %w", err)
	}

	query := parsed.Query()
	// migrate opens its own session, the timezone option only applies to the app pool
	query.Del("timezone")

	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	databaseURL, err := MigrationURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(cfg.DB.Postgres.MigrationSource, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies one migration action against the write database.
func Run(cfg *config.Config, action Action) error {
	if !action.valid() {
		return fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}

	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
		return logVersion(mig)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", string(action)).Msg("Database migration finished")

	return logVersion(mig)
}

func (a Action) valid() bool {
	switch a {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return true
	default:
		return false
	}
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("Database has no migrations applied")

		return nil
	}

	if err != nil {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Database migration version")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
