// Package experiments sweeps engine configurations over the reference
// tic-tac-toe board and records how the statistics and proof layer respond
// to iteration budget and pruning.
package experiments

import (
	"github.com/rs/zerolog/log"

	"mcts/experiments/metrics"
	"mcts/game"
	"mcts/random"
	"mcts/searcher"
)

const RunsPerConfig = 5

var budgets = []int{1000, 5000, 20000, 50000}

// RunPruningExperiment compares pruned and unpruned searches across
// iteration budgets. Runs within a config differ only by seed.
func RunPruningExperiment() error {
	configs := []metrics.SearchConfig{}
	id := 0
	for _, budget := range budgets {
		for _, pruning := range []bool{false, true} {
			id++
			configs = append(configs, metrics.SearchConfig{
				ID:         id,
				Iterations: budget,
				Pruning:    pruning,
				Seed:       random.DefaultSeed,
			})
		}
	}

	return runExperiment("pruning", configs)
}

func runExperiment(name string, configs []metrics.SearchConfig) error {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	records := []metrics.RunRecord{}
	for ci, config := range configs {
		log.Info().Msgf("running config %d of %d: %+v...", ci+1, len(configs), config)

		for run := 1; run <= RunsPerConfig; run++ {
			count++
			records = append(records, runSearch(count, run, config))
		}
	}

	writer, err := metrics.NewWriter(name)
	if err != nil {
		return err
	}
	if err := writer.WriteSearchConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteRunRecords(records); err != nil {
		return err
	}

	log.Info().Msgf("finished %s experiment with %d runs", name, count)
	return nil
}

func runSearch(id, run int, config metrics.SearchConfig) metrics.RunRecord {
	// Distinct deterministic seed per run within a config.
	seed := config.Seed + int64(run-1)
	m := searcher.New[int](game.NewTicTacToe(),
		searcher.WithRandomSource(random.NewSeededSequence(seed)),
		searcher.WithPruning(config.Pruning),
		searcher.WithMetrics(),
	)

	m.RunIterations(config.Iterations)

	root := m.Root()
	return metrics.RunRecord{
		ID:            id,
		Config:        config.ID,
		Run:           run,
		Wins:          root.Wins(),
		Draws:         root.Draws(),
		Visits:        root.Visits(),
		Nodes:         m.Size(),
		SearchMetrics: m.Metrics(),
	}
}
