// Command stepper is an interactive viewer for the search state machine: it
// runs the engine one phase at a time over a tic-tac-toe board and shows the
// pending action and root statistics after every transition.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mcts/game"
	"mcts/random"
	"mcts/searcher"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	phaseStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	solvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("41"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

type model struct {
	engine *searcher.MCTS[int]
	steps  int
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.engine.StepPhase()
			m.steps++
		case "i":
			m.engine.RunIteration()
		case "r":
			m.engine.RunIterations(1000)
		}
	}
	return m, nil
}

func (m model) View() string {
	var sb strings.Builder

	action := m.engine.NextAction()
	sb.WriteString(titleStyle.Render("MCTS phase stepper") + "\n\n")
	if action.Phase == searcher.PhaseDone {
		sb.WriteString("Next phase: " + solvedStyle.Render("Done (tree fully solved)") + "\n")
	} else {
		sb.WriteString(fmt.Sprintf("Next phase: %s (node %d)\n",
			phaseStyle.Render(action.Phase.String()), action.Node))
	}
	sb.WriteString(fmt.Sprintf("Steps: %d   Nodes: %d   Root visits: %d\n\n",
		m.steps, m.engine.Size(), m.engine.Root().Visits()))

	sb.WriteString("Root children:\n")
	best, _ := m.engine.BestChild()
	for _, id := range m.engine.Root().Children() {
		node := m.engine.Node(id)
		move, _ := node.Move()
		marker := "  "
		if id == best {
			marker = "> "
		}
		line := fmt.Sprintf("%smove %d  %5.1f%% wins  %5d visits  bound=%-12s", marker,
			move, node.WinRate()*100, node.Visits(), node.Bound())
		if node.FullyCalculated() {
			line += " solved"
		}
		sb.WriteString(line + "\n")
	}

	sb.WriteString("\n" + faintStyle.Render("space = one phase, i = one iteration, r = 1000 iterations, q = quit") + "\n")
	return sb.String()
}

func main() {
	seed := flag.Int64("seed", random.DefaultSeed, "Deterministic seed for the search")
	pruning := flag.Bool("pruning", true, "Enable bound propagation")
	flag.Parse()

	engine := searcher.New[int](game.NewTicTacToe(),
		searcher.WithRandomSource(random.NewSeededSequence(*seed)),
		searcher.WithPruning(*pruning),
	)

	if _, err := tea.NewProgram(model{engine: engine}).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "stepper: %v\n", err)
		os.Exit(1)
	}
}
