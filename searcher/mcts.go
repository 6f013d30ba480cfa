// Package searcher implements Monte Carlo Tree Search over any game that
// satisfies the game.Board capability set, with an optional minimax-style
// proof layer that prunes solved subtrees.
package searcher

import (
	"math"

	"github.com/rs/zerolog/log"

	"mcts/game"
	"mcts/random"
)

// DefaultNodeCapacity is the arena pre-allocation used when no capacity
// option is given. It is a hint only; trees grow past it freely.
const DefaultNodeCapacity = 10000

// explorationParam is the UCB1 exploration constant.
const explorationParam = math.Sqrt2

type config struct {
	source   random.Source
	pruning  bool
	capacity int
	metrics  MetricsCollector
}

type Option func(*config)

// WithRandomSource swaps the engine's source of randomness. Pass a seeded
// *random.Sequence for reproducible searches.
func WithRandomSource(source random.Source) Option {
	return func(c *config) {
		if source != nil {
			c.source = source
		}
	}
}

// WithPruning toggles bound propagation. Enabled by default.
func WithPruning(enabled bool) Option {
	return func(c *config) {
		c.pruning = enabled
	}
}

// WithNodeCapacity sets the arena pre-allocation hint.
func WithNodeCapacity(capacity int) Option {
	return func(c *config) {
		if capacity > 0 {
			c.capacity = capacity
		}
	}
}

// WithMetrics makes the engine collect search metrics, readable via
// Metrics. Off by default.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = NewMetricsCollector()
	}
}

// MCTS is a single search over one tree. It is not safe for concurrent
// use; callers sharing one engine must serialize all calls.
type MCTS[M any] struct {
	tree    *tree[M]
	source  random.Source
	pruning bool
	metrics MetricsCollector
	next    Action
}

// New builds an engine rooted at the given board. The root player, the
// viewpoint every outcome and bound is relative to, is whoever the board
// favors at construction.
func New[M any](board game.Board[M], options ...Option) *MCTS[M] {
	cfg := &config{
		source:   random.NewStandard(),
		pruning:  true,
		capacity: DefaultNodeCapacity,
		metrics:  NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(cfg)
	}

	m := &MCTS[M]{
		source:  cfg.source,
		pruning: cfg.pruning,
		metrics: cfg.metrics,
	}
	m.tree = newTree(newNode(0, board), cfg.capacity)
	m.next = Action{Phase: PhaseSelection, Node: m.tree.rootID()}
	m.metrics.Start()
	return m
}

// NextAction returns the pending state-machine transition without
// executing it.
func (m *MCTS[M]) NextAction() Action {
	return m.next
}

// StepPhase executes exactly one phase transition. Stepping after the
// search is Done is a no-op.
func (m *MCTS[M]) StepPhase() {
	switch action := m.next; action.Phase {
	case PhaseSelection:
		leaf, ok := m.selectFrom(action.Node)
		if !ok {
			m.next = Action{Phase: PhaseDone}
			m.metrics.MarkSolved()
			log.Debug().Int("nodes", m.tree.len()).Msg("search tree fully solved")
			return
		}
		m.next = Action{Phase: PhaseExpansion, Node: leaf}
	case PhaseExpansion:
		children, child := m.expand(action.Node)
		m.next = Action{Phase: PhaseSimulation, Node: child, Path: children}
	case PhaseSimulation:
		outcome := m.simulate(action.Node)
		m.next = Action{Phase: PhaseBackpropagation, Node: action.Node, Outcome: outcome}
	case PhaseBackpropagation:
		path := m.backpropagate(action.Node, action.Outcome)
		m.next = Action{Phase: PhaseSelection, Node: m.tree.rootID(), Path: path}
	case PhaseDone:
	}
}

// RunIteration chains phases until the machine is back at Selection or has
// reached Done, and returns the path affected by the iteration's
// backpropagation, child first and root last. Returns nil once Done.
func (m *MCTS[M]) RunIteration() []NodeID {
	m.StepPhase()
	for m.next.Phase != PhaseSelection && m.next.Phase != PhaseDone {
		m.StepPhase()
	}
	if m.next.Phase == PhaseSelection {
		m.metrics.AddIteration()
		return m.next.Path
	}
	return nil
}

// RunIterations runs count full iterations. Iterations requested after the
// search is Done are no-ops.
func (m *MCTS[M]) RunIterations(count int) {
	for i := 0; i < count; i++ {
		m.RunIteration()
	}
}

// Done reports whether the whole tree is proven or exhausted.
func (m *MCTS[M]) Done() bool {
	return m.next.Phase == PhaseDone
}

// RootID returns the root's arena id.
func (m *MCTS[M]) RootID() NodeID {
	return m.tree.rootID()
}

// Root returns a read-only view of the root node.
func (m *MCTS[M]) Root() *Node[M] {
	return m.tree.node(m.tree.rootID())
}

// Node returns a read-only view of the node with the given id. Passing an
// id that is not in the arena is a programming error and panics.
func (m *MCTS[M]) Node(id NodeID) *Node[M] {
	return m.tree.node(id)
}

// Size returns the number of nodes in the tree.
func (m *MCTS[M]) Size() int {
	return m.tree.len()
}

// Metrics returns a snapshot of collected search metrics. Zero unless the
// engine was built with WithMetrics.
func (m *MCTS[M]) Metrics() SearchMetrics {
	return m.metrics.Complete()
}

// BestMove picks among the root's direct children: with pruning on, a
// proven-win child with the highest win rate; otherwise the highest win
// rate overall, ties broken toward the earliest child. ok is false only
// when the root has no children.
func (m *MCTS[M]) BestMove() (move M, ok bool) {
	id, ok := m.BestChild()
	if !ok {
		var zero M
		return zero, false
	}
	move, _ = m.tree.node(id).Move()
	return move, true
}

// BestChild returns the id of the root child BestMove would pick.
func (m *MCTS[M]) BestChild() (NodeID, bool) {
	root := m.tree.node(m.tree.rootID())
	best := noParent
	maxRate := math.Inf(-1)

	if m.pruning {
		for _, id := range root.children {
			child := m.tree.node(id)
			if child.bound != game.DefiniteWin {
				continue
			}
			if rate := child.WinRate(); rate > maxRate {
				maxRate = rate
				best = id
			}
		}
	}
	if best == noParent {
		for _, id := range root.children {
			if rate := m.tree.node(id).WinRate(); rate > maxRate {
				maxRate = rate
				best = id
			}
		}
	}
	if best == noParent {
		return 0, false
	}
	return best, true
}

// selectFrom descends from the given node, at each level picking the
// max-UCB1 child among those not fully calculated, until no eligible child
// remains. ok is false when nothing is left to search: the start node has
// children but every one of them is fully calculated.
func (m *MCTS[M]) selectFrom(from NodeID) (NodeID, bool) {
	current := from
	descended := false
	for {
		node := m.tree.node(current)
		best := noParent
		maxScore := math.Inf(-1)
		for _, id := range node.children {
			child := m.tree.node(id)
			if child.solved {
				continue
			}
			score := ucb1(node.visits, child.wins, child.visits)
			if score > maxScore {
				maxScore = score
				best = id
			}
		}
		if best == noParent {
			break
		}
		current = best
		descended = true
	}

	if descended {
		return current, true
	}
	if len(m.tree.node(from).children) == 0 {
		return from, true
	}
	return 0, false
}

// ucb1 scores a child for selection. An unvisited child scores +Inf so
// every child is tried once before any is revisited.
func ucb1(parentVisits, wins, visits int) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	exploitation := float64(wins) / float64(visits)
	exploration := explorationParam * math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
	return exploitation + exploration
}

// expand creates one child per available move of the leaf and returns the
// new children plus a uniformly chosen one to simulate from. A terminal
// leaf gets no children and is its own simulation target. Expanding a node
// that already has children means the tree is corrupted.
func (m *MCTS[M]) expand(leaf NodeID) ([]NodeID, NodeID) {
	node := m.tree.node(leaf)
	if len(node.children) != 0 {
		panic("searcher: expanding an already expanded node")
	}
	if node.outcome != game.InProgress {
		return nil, leaf
	}

	moves := node.board.AvailableMoves()
	depth := node.depth + 1
	children := make([]Node[M], 0, len(moves))
	for _, move := range moves {
		board := node.board.Clone()
		board.Apply(move)
		child := newNode(m.source.Next(), board)
		child.move = move
		child.hasMove = true
		child.depth = depth
		children = append(children, child)
	}

	// Inserts may grow the arena; node is not used past this point.
	ids := make([]NodeID, 0, len(children))
	for i := range children {
		ids = append(ids, m.tree.insert(children[i], leaf))
	}
	m.metrics.AddNodes(len(ids))

	return ids, random.Choose(m.source, ids)
}

// simulate plays uniformly random moves from the child's state until a
// terminal outcome. A set of visited state fingerprints keeps playouts
// finite in games with reversible moves: a candidate move leading back to
// a seen state is discarded, and a ply with no novel candidate left ends
// the playout as a Draw.
func (m *MCTS[M]) simulate(child NodeID) game.Outcome {
	board := m.tree.node(child).board.Clone()
	seen := map[game.StateHash]struct{}{board.Hash(): {}}

	plies := 0
	outcome := board.Outcome()
	for outcome == game.InProgress {
		moves := board.AvailableMoves()
		advanced := false
		for len(moves) > 0 {
			i := m.source.Range(0, len(moves))
			scratch := board.Clone()
			scratch.Apply(moves[i])
			hash := scratch.Hash()
			if _, dup := seen[hash]; dup {
				moves = append(moves[:i], moves[i+1:]...)
				continue
			}
			board = scratch
			seen[hash] = struct{}{}
			advanced = true
			break
		}
		if !advanced {
			m.metrics.AddPlayout(plies)
			return game.Draw
		}
		plies++
		outcome = board.Outcome()
	}

	m.metrics.AddPlayout(plies)
	return outcome
}

// backpropagate walks from the child to the root, updating statistics and
// proof state on every node along the way, and returns that path with the
// child first and the root last.
func (m *MCTS[M]) backpropagate(child NodeID, outcome game.Outcome) []NodeID {
	path := []NodeID{child}
	for {
		parent, ok := m.tree.parent(path[len(path)-1])
		if !ok {
			break
		}
		path = append(path, parent)
	}

	isWin := outcome == game.Win
	isDraw := outcome == game.Draw

	// Child first: each parent's bound is derived from bounds its children
	// stored moments earlier in this same walk.
	for _, id := range path {
		bound := m.bound(id)
		solved := m.fullyCalculated(id, bound)

		node := m.tree.node(id)
		node.visits++
		if isWin {
			node.wins++
		}
		if isDraw {
			node.draws++
		}
		if solved {
			node.solved = true
		}
		if bound != game.NoBound && node.bound == game.NoBound {
			node.bound = bound
			m.metrics.AddProof()
		}
	}

	return path
}
