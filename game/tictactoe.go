package game

// Mark is a cell owner on a tic-tac-toe board.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "."
}

var winLines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // columns
	{0, 4, 8}, {2, 4, 6}, // diagonals
}

// TicTacToe is the reference Board implementation: a 3x3 grid where a move
// is a cell index 0..8. X always moves first; the root player is fixed at
// construction so outcomes stay viewpoint-relative as the search alternates
// turns.
type TicTacToe struct {
	rootPlayer Mark
	current    Mark
	cells      [9]Mark
	over       bool
}

// NewTicTacToe returns an empty board with X to move and X as the player
// the search favors.
func NewTicTacToe() *TicTacToe {
	return &TicTacToe{rootPlayer: X, current: X}
}

// NewTicTacToeFor returns an empty board with X to move and the given mark
// as the player the search favors.
func NewTicTacToeFor(rootPlayer Mark) *TicTacToe {
	return &TicTacToe{rootPlayer: rootPlayer, current: X}
}

func (t *TicTacToe) CurrentPlayer() Player {
	if t.current == t.rootPlayer {
		return Me
	}
	return Other
}

func (t *TicTacToe) Outcome() Outcome {
	for _, line := range winLines {
		m := t.cells[line[0]]
		if m != Empty && m == t.cells[line[1]] && m == t.cells[line[2]] {
			if m == t.rootPlayer {
				return Win
			}
			return Lose
		}
	}
	for _, c := range t.cells {
		if c == Empty {
			return InProgress
		}
	}
	return Draw
}

func (t *TicTacToe) AvailableMoves() []int {
	if t.over {
		return nil
	}
	moves := make([]int, 0, 9)
	for i, c := range t.cells {
		if c == Empty {
			moves = append(moves, i)
		}
	}
	return moves
}

func (t *TicTacToe) Apply(move int) {
	t.cells[move] = t.current
	if t.current == X {
		t.current = O
	} else {
		t.current = X
	}
	t.over = t.Outcome() != InProgress
}

// Hash encodes the grid in base 3, which is injective for tic-tac-toe.
func (t *TicTacToe) Hash() StateHash {
	var h StateHash
	pow := StateHash(1)
	for _, c := range t.cells {
		h += StateHash(c) * pow
		pow *= 3
	}
	return h
}

func (t *TicTacToe) Clone() Board[int] {
	c := *t
	return &c
}

// Cell reports the mark at the given cell index.
func (t *TicTacToe) Cell(i int) Mark {
	return t.cells[i]
}

func (t *TicTacToe) String() string {
	out := make([]byte, 0, 12)
	for i, c := range t.cells {
		out = append(out, c.String()[0])
		if i%3 == 2 && i != 8 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
