package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// gameWith - returns a game whose board has player on the given 1-based cells.
func gameWith(player Player, cells ...[2]int) *Game {
	var board Board
	for _, cell := range cells {
		board[cell[0]-1][cell[1]-1] = player
	}

	return Restore(State{
		Player1Mark:    "red",
		Player2Mark:    "yellow",
		Board:          board,
		Turn:           PlayerOne,
		RemainingMoves: Cells - len(cells),
	})
}

func TestGame_CheckWinner(t *testing.T) {
	t.Run("Down-right diagonal", func(t *testing.T) {
		// Given: player one holds (3,1), (4,2), (5,3), (6,4)
		game := gameWith(PlayerOne, [2]int{3, 1}, [2]int{4, 2}, [2]int{5, 3}, [2]int{6, 4})

		// Then: the line is found from either end
		assert.True(t, game.CheckWinner(PlayerOne, 6, 4))
		assert.True(t, game.CheckWinner(PlayerOne, 3, 1))
		assert.True(t, game.CheckWinner(PlayerOne, 4, 2))

		// And: not for the other player
		assert.False(t, game.CheckWinner(PlayerTwo, 6, 4))
	})

	t.Run("Up-right diagonal", func(t *testing.T) {
		game := gameWith(PlayerTwo, [2]int{6, 4}, [2]int{5, 5}, [2]int{4, 6}, [2]int{3, 7})

		assert.True(t, game.CheckWinner(PlayerTwo, 6, 4))
		assert.True(t, game.CheckWinner(PlayerTwo, 3, 7))
	})

	t.Run("Diagonal window clipped by the board edge", func(t *testing.T) {
		// Given: a diagonal that starts in the top-left corner
		game := gameWith(PlayerOne, [2]int{1, 1}, [2]int{2, 2}, [2]int{3, 3}, [2]int{4, 4})

		// Then: the cells outside the board do not matter
		assert.True(t, game.CheckWinner(PlayerOne, 1, 1))
		assert.True(t, game.CheckWinner(PlayerOne, 4, 4))
	})

	t.Run("Horizontal at the right edge", func(t *testing.T) {
		game := gameWith(PlayerOne, [2]int{6, 4}, [2]int{6, 5}, [2]int{6, 6}, [2]int{6, 7})

		assert.True(t, game.CheckWinner(PlayerOne, 6, 7))
		assert.True(t, game.CheckWinner(PlayerOne, 6, 4))
	})

	t.Run("Vertical at the top", func(t *testing.T) {
		game := gameWith(PlayerTwo, [2]int{1, 3}, [2]int{2, 3}, [2]int{3, 3}, [2]int{4, 3})

		assert.True(t, game.CheckWinner(PlayerTwo, 1, 3))
	})

	t.Run("Three in a row is not a win", func(t *testing.T) {
		horizontal := gameWith(PlayerOne, [2]int{6, 1}, [2]int{6, 2}, [2]int{6, 3})
		vertical := gameWith(PlayerOne, [2]int{6, 1}, [2]int{5, 1}, [2]int{4, 1})
		diagonal := gameWith(PlayerOne, [2]int{6, 1}, [2]int{5, 2}, [2]int{4, 3})

		assert.False(t, horizontal.CheckWinner(PlayerOne, 6, 3))
		assert.False(t, vertical.CheckWinner(PlayerOne, 4, 1))
		assert.False(t, diagonal.CheckWinner(PlayerOne, 4, 3))
	})

	t.Run("A gap breaks the run", func(t *testing.T) {
		// Given: four pieces in row 6 with an empty cell between them
		game := gameWith(PlayerOne, [2]int{6, 1}, [2]int{6, 2}, [2]int{6, 4}, [2]int{6, 5})

		assert.False(t, game.CheckWinner(PlayerOne, 6, 4))
	})

	t.Run("An opponent piece breaks the run", func(t *testing.T) {
		game := gameWith(PlayerOne, [2]int{6, 1}, [2]int{6, 2}, [2]int{6, 4}, [2]int{6, 5}, [2]int{6, 6})
		board := game.Board()
		board[5][2] = PlayerTwo
		game = Restore(State{Player1Mark: "red", Player2Mark: "yellow", Board: board, Turn: PlayerOne, RemainingMoves: Cells - 6})

		assert.False(t, game.CheckWinner(PlayerOne, 6, 2))
		assert.False(t, game.CheckWinner(PlayerOne, 6, 5))
	})

	t.Run("Lines not through the anchor are ignored", func(t *testing.T) {
		// Given: a horizontal four in row 6 and a lone piece far away
		game := gameWith(PlayerOne, [2]int{6, 1}, [2]int{6, 2}, [2]int{6, 3}, [2]int{6, 4}, [2]int{1, 7})

		// Then: anchoring at the lone piece finds nothing
		assert.False(t, game.CheckWinner(PlayerOne, 1, 7))
	})
}
