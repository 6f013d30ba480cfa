package searcher

import "mcts/game"

// bound derives a node's proof status from its own outcome and its
// children's stored bounds. Proofs are permanent: a resolved bound is
// returned as-is. With pruning disabled every node stays at NoBound.
func (m *MCTS[M]) bound(id NodeID) game.Bound {
	if !m.pruning {
		return game.NoBound
	}

	node := m.tree.node(id)
	if node.bound != game.NoBound {
		return node.bound
	}
	if node.outcome == game.Win {
		return game.DefiniteWin
	}
	if node.outcome == game.Lose {
		return game.DefiniteLose
	}
	if len(node.children) == 0 {
		return game.NoBound
	}

	anyWin, anyLose := false, false
	allWin, allLose := true, true
	for _, child := range node.children {
		switch m.tree.node(child).bound {
		case game.DefiniteWin:
			anyWin = true
			allLose = false
		case game.DefiniteLose:
			anyLose = true
			allWin = false
		default:
			allWin = false
			allLose = false
		}
	}

	switch node.player {
	case game.Me:
		// The root player picks the move: one proven win suffices, and
		// only all-losing options prove a loss.
		if anyWin {
			return game.DefiniteWin
		}
		if allLose {
			return game.DefiniteLose
		}
	case game.Other:
		// The opponent picks the move: a win needs every escape closed,
		// one losing option proves the loss.
		if allWin {
			return game.DefiniteWin
		}
		if anyLose {
			return game.DefiniteLose
		}
	}
	return game.NoBound
}

// fullyCalculated reports whether the node's result is certain given the
// bound just derived for it: proven, terminal, or expanded with every
// child certain. An unexpanded non-terminal leaf never qualifies.
func (m *MCTS[M]) fullyCalculated(id NodeID, bound game.Bound) bool {
	if bound != game.NoBound {
		return true
	}

	node := m.tree.node(id)
	if node.outcome != game.InProgress {
		return true
	}
	if len(node.children) == 0 {
		return false
	}
	for _, child := range node.children {
		if !m.tree.node(child).solved {
			return false
		}
	}
	return true
}
