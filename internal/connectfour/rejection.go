package connectfour

// MoveRejection explains why a move was refused. Its message is shown to the player as is.
type MoveRejection struct {
	Code    string
	Message string
}

func (that *MoveRejection) Error() string {
	return that.Message
}

// Checked by ValidateMove in this order.
var (
	ErrColorNotPicked   = &MoveRejection{Code: "color_not_picked", Message: "Please pick a color first."}
	ErrWaitingForPlayer = &MoveRejection{Code: "waiting_for_player", Message: "Please wait for player 2 to join."}
	ErrGameFinished     = &MoveRejection{Code: "game_finished", Message: "Please start a new game."}
	ErrNotYourTurn      = &MoveRejection{Code: "not_your_turn", Message: "Please wait for your turn."}
	ErrBoardFull        = &MoveRejection{Code: "board_full", Message: "The game board is full."}
	ErrColumnOutOfRange = &MoveRejection{Code: "column_out_of_range", Message: "The picked column is out of range."}
	ErrColumnFull       = &MoveRejection{Code: "column_full", Message: "The picked column is full."}
)
