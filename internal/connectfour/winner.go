package connectfour

// CheckWinner reports whether the piece of player at (row, col) completes four in a row.
// Only lines through (row, col) are examined.
func (that *Game) CheckWinner(player Player, row, col int) bool {
	horizontal := that.checkHorizontal(player, row, col)
	vertical := that.checkVertical(player, row, col)
	diagonal := that.checkDiagonal(player, row, col)

	return horizontal || vertical || diagonal
}

func (that *Game) checkHorizontal(player Player, row, col int) bool {
	left := max(1, col-(winLength-1))
	right := min(Cols, col+(winLength-1))

	run := 0
	for c := left; c <= right; c++ {
		if that.board.At(row, c) != player {
			run = 0
			continue
		}

		run++
		if run >= winLength {
			return true
		}
	}

	return false
}

func (that *Game) checkVertical(player Player, row, col int) bool {
	top := max(1, row-(winLength-1))
	bottom := min(Rows, row+(winLength-1))

	run := 0
	for r := top; r <= bottom; r++ {
		if that.board.At(r, col) != player {
			run = 0
			continue
		}

		run++
		if run >= winLength {
			return true
		}
	}

	return false
}

// checkDiagonal - walks both diagonals of the 7×7 window around (row, col).
// Cells off the board break a run.
func (that *Game) checkDiagonal(player Player, row, col int) bool {
	reach := winLength - 1

	// upper-left to lower-right
	if that.scan(player, row-reach, col-reach, 1, 1) {
		return true
	}

	// lower-left to upper-right
	return that.scan(player, row+reach, col-reach, -1, 1)
}

func (that *Game) scan(player Player, row, col, dRow, dCol int) bool {
	run := 0
	for step := 0; step < 2*winLength-1; step++ {
		r, c := row+step*dRow, col+step*dCol

		if !inBounds(r, c) || that.board.At(r, c) != player {
			run = 0
			continue
		}

		run++
		if run >= winLength {
			return true
		}
	}

	return false
}
