package entity

const (
	EventGameStart    = "game_start"
	EventPlayerJoined = "player_joined"
	EventMove         = "move"
	EventGameEnd      = "game_end"
)

// Event describes something that happened to the active game.
type Event struct {
	Type      string `json:"type"`
	GameID    string `json:"game_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

type PlayerJoinedData struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}

type MoveData struct {
	Player string `json:"player"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Board  any    `json:"board"`
}

type GameEndData struct {
	Winner string `json:"winner"`
	Moves  int    `json:"moves"`
}
