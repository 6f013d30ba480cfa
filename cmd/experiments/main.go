package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcts/experiments"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := experiments.RunPruningExperiment(); err != nil {
		log.Fatal().Err(err).Msg("pruning experiment failed")
	}
}
