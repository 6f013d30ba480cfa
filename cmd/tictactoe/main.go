package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"mcts/game"
	"mcts/random"
	"mcts/searcher"
)

func main() {
	iterations := flag.Int("iterations", 20000, "Number of search iterations")
	pruning := flag.Bool("pruning", true, "Enable bound propagation")
	seed := flag.Int64("seed", 0, "Deterministic seed; 0 uses a wall-clock source")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var source random.Source = random.NewStandard()
	if *seed != 0 {
		source = random.NewSeededSequence(*seed)
	}

	m := searcher.New[int](game.NewTicTacToe(),
		searcher.WithRandomSource(source),
		searcher.WithPruning(*pruning),
		searcher.WithMetrics(),
	)

	log.Info().Int("iterations", *iterations).Bool("pruning", *pruning).Msg("starting search")
	m.RunIterations(*iterations)

	metrics := m.Metrics()
	log.Info().
		Int("nodes", m.Size()).
		Int("iterations", metrics.Iterations).
		Int("provenNodes", metrics.ProvenNodes).
		Bool("solved", metrics.Solved).
		Dur("duration", metrics.Duration).
		Msg("search finished")

	for _, id := range m.Root().Children() {
		node := m.Node(id)
		move, _ := node.Move()
		fmt.Printf("Move %d = %.2f%% wins, %.2f%% draws (%d visits, bound %s)\n",
			move, node.WinRate()*100, node.DrawRate()*100, node.Visits(), node.Bound())
	}

	if move, ok := m.BestMove(); ok {
		fmt.Printf("The best move is: %d\n", move)
	}
}
