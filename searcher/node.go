package searcher

import "mcts/game"

// NodeID is a node's index in the tree arena. It is the node's true
// identity: parent/child links and every engine operation key on it.
type NodeID int

const noParent NodeID = -1

// Node is one entry in the search tree. Statistics are mutated only during
// backpropagation; everything else is fixed at creation.
type Node[M any] struct {
	// id is minted from the engine's random source when the node is
	// created. It is opaque metadata for display and fingerprinting;
	// uniqueness is not guaranteed and nothing keys on it.
	id      int
	depth   int
	board   game.Board[M]
	move    M
	hasMove bool
	player  game.Player
	outcome game.Outcome

	visits int
	wins   int
	draws  int
	bound  game.Bound
	solved bool

	parent   NodeID
	children []NodeID
}

func newNode[M any](id int, board game.Board[M]) Node[M] {
	return Node[M]{
		id:      id,
		board:   board,
		player:  board.CurrentPlayer(),
		outcome: board.Outcome(),
		parent:  noParent,
	}
}

// ID returns the node's random-source-minted identifier.
func (n *Node[M]) ID() int { return n.id }

// Depth returns the node's distance from the root, which is at depth 0.
func (n *Node[M]) Depth() int { return n.depth }

// Move returns the move that produced this node from its parent. ok is
// false for the root, which has no incoming move.
func (n *Node[M]) Move() (move M, ok bool) { return n.move, n.hasMove }

// Player returns the player to move at this node's state.
func (n *Node[M]) Player() game.Player { return n.player }

// Outcome returns the terminal classification of this node's state.
func (n *Node[M]) Outcome() game.Outcome { return n.outcome }

// Visits returns how many backpropagations have passed through this node.
func (n *Node[M]) Visits() int { return n.visits }

// Wins returns how many of those backpropagations carried a Win outcome.
func (n *Node[M]) Wins() int { return n.wins }

// Draws returns how many of those backpropagations carried a Draw outcome.
func (n *Node[M]) Draws() int { return n.draws }

// Bound returns the node's proof status.
func (n *Node[M]) Bound() game.Bound { return n.bound }

// FullyCalculated reports whether the node's result is certain, in which
// case selection never descends into its subtree again.
func (n *Node[M]) FullyCalculated() bool { return n.solved }

// Children returns the node's children in insertion order. The slice must
// not be modified.
func (n *Node[M]) Children() []NodeID { return n.children }

// WinRate returns wins/visits, or 0 for an unvisited node.
func (n *Node[M]) WinRate() float64 {
	if n.visits == 0 {
		return 0
	}
	return float64(n.wins) / float64(n.visits)
}

// DrawRate returns draws/visits, or 0 for an unvisited node.
func (n *Node[M]) DrawRate() float64 {
	if n.visits == 0 {
		return 0
	}
	return float64(n.draws) / float64(n.visits)
}
