package connectfour

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

// Snapshot encodes the game for persistence.
func (that *Game) Snapshot() (entity.Snapshot, error) {
	board, err := json.Marshal(that.MarkedBoard())
	if err != nil {
		return entity.Snapshot{}, fmt.Errorf("failed to marshal board: %w", err)
	}

	return entity.Snapshot{
		CurrentTurn:    that.turn.String(),
		Board:          string(board),
		Result:         that.result.String(),
		Player1:        that.marks[PlayerOne],
		Player2:        that.marks[PlayerTwo],
		RemainingMoves: that.remaining,
	}, nil
}

// FromSnapshot rebuilds a game from a persisted snapshot.
func FromSnapshot(snapshot entity.Snapshot) (*Game, error) {
	turn, err := ParsePlayer(snapshot.CurrentTurn)
	if err != nil {
		return nil, fmt.Errorf("invalid current turn: %w", err)
	}

	result, err := ParseResult(snapshot.Result)
	if err != nil {
		return nil, fmt.Errorf("invalid result: %w", err)
	}

	board, err := decodeBoard(snapshot.Board, snapshot.Player1, snapshot.Player2)
	if err != nil {
		return nil, fmt.Errorf("invalid board: %w", err)
	}

	if snapshot.RemainingMoves < 0 || snapshot.RemainingMoves > Cells {
		return nil, fmt.Errorf("%w: remaining moves %d", ErrMalformedBoard, snapshot.RemainingMoves)
	}

	return Restore(State{
		Player1Mark:    snapshot.Player1,
		Player2Mark:    snapshot.Player2,
		Board:          board,
		Turn:           turn,
		RemainingMoves: snapshot.RemainingMoves,
		Result:         result,
	}), nil
}
