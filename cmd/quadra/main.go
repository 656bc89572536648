package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"quadra/config"
	"quadra/experiments"
)

var configPath = flag.String("config", "", "path to configuration file")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	initLogger(cfg.Log)

	log.Info().Msgf("starting quadra in %s mode", cfg.Mode)

	switch cfg.Mode {
	case "ladder":
		err = experiments.RunDepthLadder(cfg)
	default:
		err = experiments.Run(cfg)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
}

func initLogger(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
