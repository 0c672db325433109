package connectfour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

func TestGame_Snapshot(t *testing.T) {
	// Given: a game with two moves played
	game := newReadyGame()
	game.ApplyMove(PlayerOne, 1)
	game.ApplyMove(PlayerTwo, 7)

	// When: the game is encoded
	snapshot, err := game.Snapshot()
	require.NoError(t, err)

	// Then: the board is a JSON grid of 0 and marks
	assert.Equal(t, "p1", snapshot.CurrentTurn)
	assert.Equal(t, "", snapshot.Result)
	assert.Equal(t, "red", snapshot.Player1)
	assert.Equal(t, "yellow", snapshot.Player2)
	assert.Equal(t, Cells-2, snapshot.RemainingMoves)
	assert.JSONEq(t, `[
		[0,0,0,0,0,0,0],
		[0,0,0,0,0,0,0],
		[0,0,0,0,0,0,0],
		[0,0,0,0,0,0,0],
		[0,0,0,0,0,0,0],
		["red",0,0,0,0,0,"yellow"]
	]`, snapshot.Board)

	// And: decoding gives back the same game
	restored, err := FromSnapshot(snapshot)
	require.NoError(t, err)
	assert.Equal(t, game, restored)
}

func TestFromSnapshot(t *testing.T) {
	emptyBoard := `[[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0]]`

	t.Run("Restores a finished game", func(t *testing.T) {
		game, err := FromSnapshot(entity.Snapshot{
			CurrentTurn:    "p2",
			Board:          emptyBoard,
			Result:         "Player 1",
			Player1:        "red",
			Player2:        "yellow",
			RemainingMoves: 35,
		})

		require.NoError(t, err)
		assert.Equal(t, ResultPlayerOneWins, game.Result())
		assert.Equal(t, PlayerTwo, game.Turn())
		assert.ErrorIs(t, game.ValidateMove(PlayerTwo, 1), ErrGameFinished)
	})

	t.Run("Rejects malformed snapshots", func(t *testing.T) {
		valid := entity.Snapshot{CurrentTurn: "p1", Board: emptyBoard, Player1: "red", Player2: "yellow", RemainingMoves: Cells}

		cases := map[string]func(s *entity.Snapshot){
			"unknown turn":   func(s *entity.Snapshot) { s.CurrentTurn = "p3" },
			"unknown result": func(s *entity.Snapshot) { s.Result = "Player 3" },
			"not json":       func(s *entity.Snapshot) { s.Board = "{" },
			"too few rows":   func(s *entity.Snapshot) { s.Board = `[[0,0,0,0,0,0,0]]` },
			"short row":      func(s *entity.Snapshot) { s.Board = `[[0],[0],[0],[0],[0],[0]]` },
			"unknown mark": func(s *entity.Snapshot) {
				s.Board = `[[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],[0,0,0,0,0,0,0],["blue",0,0,0,0,0,0]]`
			},
			"negative remaining": func(s *entity.Snapshot) { s.RemainingMoves = -1 },
		}

		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				snapshot := valid
				mutate(&snapshot)

				_, err := FromSnapshot(snapshot)

				assert.Error(t, err)
			})
		}
	})
}
