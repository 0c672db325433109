package connectfour

import "fmt"

// State carries every field of a game, for restoring one that was persisted earlier.
type State struct {
	Player1Mark    string
	Player2Mark    string
	Board          Board
	Turn           Player
	RemainingMoves int
	Result         Result
}

// Game is the connect-four engine. It is not safe for concurrent use;
// callers serialize access to it.
type Game struct {
	marks     [3]string
	board     Board
	turn      Player
	remaining int
	result    Result
}

// New returns a game with an empty board, no marks and player one to move.
func New() *Game {
	return &Game{
		turn:      PlayerOne,
		remaining: Cells,
		result:    ResultNone,
	}
}

// Restore builds a game from previously saved state.
func Restore(state State) *Game {
	game := &Game{
		board:     state.Board,
		turn:      state.Turn,
		remaining: state.RemainingMoves,
		result:    state.Result,
	}
	game.marks[PlayerOne] = state.Player1Mark
	game.marks[PlayerTwo] = state.Player2Mark

	return game
}

// AssignMark records the mark of a player. Whether the mark is acceptable is up to the caller.
func (that *Game) AssignMark(player Player, mark string) {
	that.marks[player] = mark
}

func (that *Game) Mark(player Player) string {
	return that.marks[player]
}

func (that *Game) Turn() Player {
	return that.turn
}

func (that *Game) RemainingMoves() int {
	return that.remaining
}

func (that *Game) Result() Result {
	return that.result
}

func (that *Game) IsFinished() bool {
	return that.result != ResultNone
}

// Board returns a copy of the board.
func (that *Game) Board() Board {
	return that.board
}

// MarkedBoard returns the board with each piece replaced by its owner's mark.
func (that *Game) MarkedBoard() MarkedBoard {
	return that.board.marked(that.marks)
}

// ValidateMove reports whether player may drop a piece into col. It returns nil or one of the
// MoveRejection errors and never changes the game.
func (that *Game) ValidateMove(player Player, col int) error {
	switch {
	case that.marks[PlayerOne] == "":
		return ErrColorNotPicked
	case that.marks[PlayerTwo] == "":
		return ErrWaitingForPlayer
	case that.result != ResultNone:
		return ErrGameFinished
	case that.turn != player:
		return ErrNotYourTurn
	case that.remaining <= 0:
		return ErrBoardFull
	case col < 1 || col > Cols:
		return ErrColumnOutOfRange
	case that.board.At(1, col) != NoPlayer:
		return ErrColumnFull
	}

	return nil
}

// ApplyMove drops a piece of player into col and returns the row it landed on.
// The move must have passed ValidateMove; otherwise ApplyMove panics.
func (that *Game) ApplyMove(player Player, col int) int {
	if err := that.ValidateMove(player, col); err != nil {
		panic(fmt.Sprintf("connectfour: apply of invalid move by %s into column %d: %v", player, col, err))
	}

	row := that.board.landingRow(col)
	that.board[row-1][col-1] = player
	that.remaining--
	that.turn = player.Other()

	if that.remaining <= Cells-minMovesForWin && that.CheckWinner(player, row, col) {
		that.result = winFor(player)
	}

	return row
}
