package searcher

import "mcts/game"

// Phase names one of the engine's state-machine states.
type Phase int

const (
	// PhaseSelection descends from Node along max-UCB1 children to a leaf.
	PhaseSelection Phase = iota
	// PhaseExpansion creates children for the leaf in Node.
	PhaseExpansion
	// PhaseSimulation plays a random playout from the child in Node.
	PhaseSimulation
	// PhaseBackpropagation folds Outcome into the path above Node.
	PhaseBackpropagation
	// PhaseDone means the whole tree is proven or exhausted. Stepping is a
	// no-op from here on.
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseSelection:
		return "Selection"
	case PhaseExpansion:
		return "Expansion"
	case PhaseSimulation:
		return "Simulation"
	case PhaseBackpropagation:
		return "Backpropagation"
	case PhaseDone:
		return "Done"
	}
	return "Unknown"
}

// Action is the engine's pending state-machine transition. The engine holds
// exactly one Action at a time; StepPhase executes it and stores the next
// one, which keeps the search steppable one phase at a time for tracing.
type Action struct {
	Phase Phase
	// Node is the phase's subject: the node selection starts from, the
	// leaf to expand, or the child to simulate from / backpropagate above.
	Node NodeID
	// Path carries phase results: after expansion, the created children;
	// after a full backpropagation, the affected path from child to root.
	Path []NodeID
	// Outcome is the playout result awaiting backpropagation.
	Outcome game.Outcome
}
