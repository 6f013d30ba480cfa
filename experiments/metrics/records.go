package metrics

import "mcts/searcher"

// SearchConfig identifies one engine configuration in a sweep.
type SearchConfig struct {
	ID         int
	Iterations int
	Pruning    bool
	Seed       int64
}

// RunRecord captures one search run of one configuration.
type RunRecord struct {
	ID     int
	Config int // SearchConfig.ID
	Run    int
	Wins   int
	Draws  int
	Visits int
	Nodes  int
	searcher.SearchMetrics
}
