package connectfour

import (
	"encoding/json"
	"errors"
	"fmt"
)

const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols

	winLength = 4
	// no line of four can exist before seven pieces are on the board.
	minMovesForWin = 2*winLength - 1
)

var ErrMalformedBoard = errors.New("malformed board")

// Board holds the pieces of both players. Row 0 is the top of the board.
type Board [Rows][Cols]Player

// NewBoardFromRows builds a board from a slice of rows.
// It panics if rows is not Rows×Cols.
func NewBoardFromRows(rows [][]Player) Board {
	if len(rows) != Rows {
		panic(fmt.Sprintf("connectfour: board must have %d rows, got %d", Rows, len(rows)))
	}

	var board Board
	for r, row := range rows {
		if len(row) != Cols {
			panic(fmt.Sprintf("connectfour: row %d must have %d columns, got %d", r+1, Cols, len(row)))
		}
		copy(board[r][:], row)
	}

	return board
}

// At returns the piece at the 1-based (row, col), or NoPlayer outside the board.
func (that *Board) At(row, col int) Player {
	if !inBounds(row, col) {
		return NoPlayer
	}
	return that[row-1][col-1]
}

// landingRow - returns the lowest empty 1-based row of col, or 0 when col is full.
func (that *Board) landingRow(col int) int {
	row := Rows
	for row >= 1 && that[row-1][col-1] != NoPlayer {
		row--
	}
	return row
}

func inBounds(row, col int) bool {
	return row >= 1 && row <= Rows && col >= 1 && col <= Cols
}

// MarkedBoard is the display form of a board: each cell is 0 or the mark of the occupying player.
type MarkedBoard [Rows][Cols]any

func (that *Board) marked(marks [3]string) MarkedBoard {
	var out MarkedBoard
	for r := range that {
		for c, cell := range that[r] {
			if cell == NoPlayer {
				out[r][c] = 0
				continue
			}
			out[r][c] = marks[cell]
		}
	}
	return out
}

// decodeBoard - parses a JSON board of 0 / mark cells back into players.
func decodeBoard(data string, player1Mark, player2Mark string) (Board, error) {
	var raw [][]any
	if err := json.Unmarshal([]byte(data), &raw); err != nil {
		return Board{}, fmt.Errorf("%w: %w", ErrMalformedBoard, err)
	}

	if len(raw) != Rows {
		return Board{}, fmt.Errorf("%w: expected %d rows, got %d", ErrMalformedBoard, Rows, len(raw))
	}

	var board Board
	for r, row := range raw {
		if len(row) != Cols {
			return Board{}, fmt.Errorf("%w: row %d has %d columns", ErrMalformedBoard, r+1, len(row))
		}

		for c, cell := range row {
			switch value := cell.(type) {
			case float64:
				if value != 0 {
					return Board{}, fmt.Errorf("%w: unexpected number %v at (%d, %d)", ErrMalformedBoard, value, r+1, c+1)
				}
			case string:
				switch {
				case value != "" && value == player1Mark:
					board[r][c] = PlayerOne
				case value != "" && value == player2Mark:
					board[r][c] = PlayerTwo
				default:
					return Board{}, fmt.Errorf("%w: unknown mark %q at (%d, %d)", ErrMalformedBoard, value, r+1, c+1)
				}
			default:
				return Board{}, fmt.Errorf("%w: unexpected cell %v at (%d, %d)", ErrMalformedBoard, cell, r+1, c+1)
			}
		}
	}

	return board, nil
}
