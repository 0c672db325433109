package entity

// Snapshot is one persisted copy of the game. Board is the JSON text of the marked board.
type Snapshot struct {
	GameID         string `json:"game_id"`
	CurrentTurn    string `json:"current_turn"`
	Board          string `json:"board"`
	Result         string `json:"winner"`
	Player1        string `json:"player1"`
	Player2        string `json:"player2"`
	RemainingMoves int    `json:"remaining_moves"`
}
