package connectfour

import (
	"errors"
	"fmt"
)

type Player int

const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

var (
	ErrUnknownPlayer = errors.New("unknown player")
	ErrUnknownResult = errors.New("unknown result")
)

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "p1"
	case PlayerTwo:
		return "p2"
	default:
		return ""
	}
}

// Other returns the opponent of p.
func (p Player) Other() Player {
	if p == PlayerOne {
		return PlayerTwo
	}
	return PlayerOne
}

func ParsePlayer(s string) (Player, error) {
	switch s {
	case "p1":
		return PlayerOne, nil
	case "p2":
		return PlayerTwo, nil
	default:
		return NoPlayer, fmt.Errorf("%w: %q", ErrUnknownPlayer, s)
	}
}

type Result int

const (
	ResultNone Result = iota
	ResultPlayerOneWins
	ResultPlayerTwoWins
)

func (r Result) String() string {
	switch r {
	case ResultPlayerOneWins:
		return "Player 1"
	case ResultPlayerTwoWins:
		return "Player 2"
	default:
		return ""
	}
}

// Winner returns the player who won, or NoPlayer.
func (r Result) Winner() Player {
	switch r {
	case ResultPlayerOneWins:
		return PlayerOne
	case ResultPlayerTwoWins:
		return PlayerTwo
	default:
		return NoPlayer
	}
}

func ParseResult(s string) (Result, error) {
	switch s {
	case "":
		return ResultNone, nil
	case "Player 1":
		return ResultPlayerOneWins, nil
	case "Player 2":
		return ResultPlayerTwoWins, nil
	default:
		return ResultNone, fmt.Errorf("%w: %q", ErrUnknownResult, s)
	}
}

func winFor(p Player) Result {
	if p == PlayerOne {
		return ResultPlayerOneWins
	}
	return ResultPlayerTwoWins
}
