package main

import (
	"context"
	"errors"
	"os"
	"wbrent/config"
	"wbrent/di"
	"wbrent/helper"
	"wbrent/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength     = 2
	seedArgLength = 4
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration command is required")
	}

	var err error

	switch command := os.Args[1]; command {
	case "seed-admin":
		err = seedAdmin(os.Args)
	default:
		err = helper.Run(cfg, helper.Action(command))
		if errors.Is(err, helper.ErrUnknownAction) {
			log.Fatal().Msg("Invalid command. Use 'up', 'down', 'drop', 'step-up', 'version' or 'seed-admin <email> <password>'")
		}
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Command failed")
	}
}

func seedAdmin(args []string) error {
	if len(args) < seedArgLength {
		log.Fatal().Msg("Usage: migrate seed-admin <email> <password>")
	}

	created, err := di.InitializeUserService().EnsureSuperAdmin(context.Background(), args[2], args[3])
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !created {
		log.Info().Str("email", args[2]).Msg("Super admin already exists")

		return nil
	}

	log.Info().Str("email", args[2]).Msg("Super admin created")

	return nil
}
