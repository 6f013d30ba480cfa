package game

// StateHash is a deterministic summary of a full board state. The searcher
// uses it for cycle detection during playouts, so two equal states must
// always hash to the same value.
type StateHash uint64

// Player identifies a side relative to the search, not to the game: Me is
// the player the search favors, fixed when the tree is built.
type Player int

const (
	Me Player = iota + 1
	Other
)

func (p Player) String() string {
	switch p {
	case Me:
		return "Me"
	case Other:
		return "Other"
	}
	return "Unknown"
}

// Outcome classifies a state from the root player's perspective. Win means
// the root player has won, regardless of whose turn it is.
type Outcome int

const (
	InProgress Outcome = iota
	Win
	Lose
	Draw
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "InProgress"
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// Bound is a proven game-theoretic result for the root player under optimal
// play. Once resolved it never reverts to NoBound.
type Bound int

const (
	NoBound Bound = iota
	DefiniteWin
	DefiniteLose
)

func (b Bound) String() string {
	switch b {
	case NoBound:
		return "None"
	case DefiniteWin:
		return "DefiniteWin"
	case DefiniteLose:
		return "DefiniteLose"
	}
	return "Unknown"
}

// Board is the capability set a game must provide to be searchable. M is the
// game's move type. Implementations must make Clone and Apply cheap: the
// searcher clones the board on every expansion and every playout step.
type Board[M any] interface {
	// CurrentPlayer reports whose turn it is, relative to the root player.
	CurrentPlayer() Player
	// Outcome reports the terminal classification of the state, or
	// InProgress, always from the root player's perspective.
	Outcome() Outcome
	// AvailableMoves lists every legal move. Empty once the game is over.
	AvailableMoves() []M
	// Apply plays a move, mutating the board into the successor state.
	Apply(move M)
	// Hash fingerprints the full state for cycle detection.
	Hash() StateHash
	// Clone returns an independent copy sharing no mutable memory.
	Clone() Board[M]
}
