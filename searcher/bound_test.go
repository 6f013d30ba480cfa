package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcts/game"
)

// mockBoard is a fixed game state for assembling trees by hand.
type mockBoard struct {
	player  game.Player
	outcome game.Outcome
	moves   []int
	hash    game.StateHash
}

func (b *mockBoard) CurrentPlayer() game.Player { return b.player }
func (b *mockBoard) Outcome() game.Outcome      { return b.outcome }
func (b *mockBoard) AvailableMoves() []int      { return b.moves }
func (b *mockBoard) Apply(int)                  {}
func (b *mockBoard) Hash() game.StateHash       { return b.hash }
func (b *mockBoard) Clone() game.Board[int] {
	c := *b
	return &c
}

// harness builds an engine around a hand-made root without running phases.
func harness(pruning bool, root *mockBoard) *MCTS[int] {
	m := &MCTS[int]{
		pruning: pruning,
		metrics: NewNoMetricsCollector(),
	}
	m.tree = newTree(newNode[int](0, root), 8)
	m.next = Action{Phase: PhaseSelection, Node: m.tree.rootID()}
	return m
}

func addChild(m *MCTS[int], parent NodeID, board *mockBoard, bound game.Bound) NodeID {
	id := m.tree.insert(newNode[int](0, board), parent)
	m.tree.node(id).bound = bound
	return id
}

func TestBound(t *testing.T) {
	inProgressMe := &mockBoard{player: game.Me, outcome: game.InProgress}
	inProgressOther := &mockBoard{player: game.Other, outcome: game.InProgress}

	t.Run("disabled pruning always yields NoBound", func(t *testing.T) {
		m := harness(false, &mockBoard{player: game.Me, outcome: game.Win})
		require.Equal(t, game.NoBound, m.bound(m.tree.rootID()))
	})

	t.Run("terminal outcomes resolve directly", func(t *testing.T) {
		m := harness(true, &mockBoard{player: game.Me, outcome: game.Win})
		require.Equal(t, game.DefiniteWin, m.bound(m.tree.rootID()))

		m = harness(true, &mockBoard{player: game.Other, outcome: game.Lose})
		require.Equal(t, game.DefiniteLose, m.bound(m.tree.rootID()))
	})

	t.Run("a resolved bound is permanent", func(t *testing.T) {
		m := harness(true, inProgressMe)
		m.tree.node(m.tree.rootID()).bound = game.DefiniteLose
		require.Equal(t, game.DefiniteLose, m.bound(m.tree.rootID()),
			"Stored proofs should be returned unchanged")
	})

	t.Run("unexpanded non-terminal node stays unresolved", func(t *testing.T) {
		m := harness(true, inProgressMe)
		require.Equal(t, game.NoBound, m.bound(m.tree.rootID()))
	})

	t.Run("maximizing mover wins if any child is a proven win", func(t *testing.T) {
		m := harness(true, inProgressMe)
		addChild(m, m.tree.rootID(), inProgressOther, game.DefiniteLose)
		addChild(m, m.tree.rootID(), inProgressOther, game.DefiniteWin)
		require.Equal(t, game.DefiniteWin, m.bound(m.tree.rootID()))
	})

	t.Run("maximizing mover loses only with all children proven losing", func(t *testing.T) {
		m := harness(true, inProgressMe)
		addChild(m, m.tree.rootID(), inProgressOther, game.DefiniteLose)
		addChild(m, m.tree.rootID(), inProgressOther, game.NoBound)
		require.Equal(t, game.NoBound, m.bound(m.tree.rootID()),
			"An unresolved option should block the loss proof")

		m.tree.node(m.tree.node(m.tree.rootID()).Children()[1]).bound = game.DefiniteLose
		require.Equal(t, game.DefiniteLose, m.bound(m.tree.rootID()))
	})

	t.Run("minimizing mover wins only with all children proven winning", func(t *testing.T) {
		m := harness(true, inProgressOther)
		addChild(m, m.tree.rootID(), inProgressMe, game.DefiniteWin)
		addChild(m, m.tree.rootID(), inProgressMe, game.NoBound)
		require.Equal(t, game.NoBound, m.bound(m.tree.rootID()),
			"The opponent still has an unresolved escape")

		m.tree.node(m.tree.node(m.tree.rootID()).Children()[1]).bound = game.DefiniteWin
		require.Equal(t, game.DefiniteWin, m.bound(m.tree.rootID()))
	})

	t.Run("minimizing mover loses if any child is a proven loss", func(t *testing.T) {
		m := harness(true, inProgressOther)
		addChild(m, m.tree.rootID(), inProgressMe, game.NoBound)
		addChild(m, m.tree.rootID(), inProgressMe, game.DefiniteLose)
		require.Equal(t, game.DefiniteLose, m.bound(m.tree.rootID()))
	})
}

func TestFullyCalculated(t *testing.T) {
	inProgressMe := &mockBoard{player: game.Me, outcome: game.InProgress}
	inProgressOther := &mockBoard{player: game.Other, outcome: game.InProgress}

	t.Run("resolved bound qualifies", func(t *testing.T) {
		m := harness(true, inProgressMe)
		require.True(t, m.fullyCalculated(m.tree.rootID(), game.DefiniteWin))
	})

	t.Run("terminal outcome qualifies", func(t *testing.T) {
		m := harness(true, &mockBoard{player: game.Me, outcome: game.Draw})
		require.True(t, m.fullyCalculated(m.tree.rootID(), game.NoBound))
	})

	t.Run("unexpanded non-terminal leaf never qualifies", func(t *testing.T) {
		m := harness(true, inProgressMe)
		require.False(t, m.fullyCalculated(m.tree.rootID(), game.NoBound))
	})

	t.Run("all children certain qualifies", func(t *testing.T) {
		m := harness(true, inProgressMe)
		a := addChild(m, m.tree.rootID(), inProgressOther, game.NoBound)
		b := addChild(m, m.tree.rootID(), inProgressOther, game.NoBound)
		require.False(t, m.fullyCalculated(m.tree.rootID(), game.NoBound))

		m.tree.node(a).solved = true
		require.False(t, m.fullyCalculated(m.tree.rootID(), game.NoBound),
			"One uncertain child should keep the parent uncertain")

		m.tree.node(b).solved = true
		require.True(t, m.fullyCalculated(m.tree.rootID(), game.NoBound))
	})
}
