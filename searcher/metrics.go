package searcher

import "time"

// SearchMetrics is a snapshot of one engine's work so far.
type SearchMetrics struct {
	StartTime    time.Time
	Duration     time.Duration
	Iterations   int
	Playouts     int
	PlayoutMoves int
	NodesCreated int
	ProvenNodes  int
	Solved       bool
}

// MetricsCollector accumulates search metrics. The engine is
// single-threaded, so collectors need no synchronization.
type MetricsCollector interface {
	Start()
	AddIteration()
	AddPlayout(moves int)
	AddNodes(count int)
	AddProof()
	MarkSolved()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime    time.Time
	iterations   int
	playouts     int
	playoutMoves int
	nodesCreated int
	provenNodes  int
	solved       bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
}

func (m *metricsCollector) AddIteration() {
	m.iterations++
}

func (m *metricsCollector) AddPlayout(moves int) {
	m.playouts++
	m.playoutMoves += moves
}

func (m *metricsCollector) AddNodes(count int) {
	m.nodesCreated += count
}

func (m *metricsCollector) AddProof() {
	m.provenNodes++
}

func (m *metricsCollector) MarkSolved() {
	m.solved = true
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Iterations:   m.iterations,
		Playouts:     m.playouts,
		PlayoutMoves: m.playoutMoves,
		NodesCreated: m.nodesCreated,
		ProvenNodes:  m.provenNodes,
		Solved:       m.solved,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (noMetricsCollector) Start()                   {}
func (noMetricsCollector) AddIteration()            {}
func (noMetricsCollector) AddPlayout(int)           {}
func (noMetricsCollector) AddNodes(int)             {}
func (noMetricsCollector) AddProof()                {}
func (noMetricsCollector) MarkSolved()              {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
