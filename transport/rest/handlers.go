package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/usecase"
)

const (
	statusPickColor = "Pick a Color."

	errPlayerOneNotReady = "Error: Player 1 did not pick color first."
	errInvalidColor      = "Error: Player 1 picked an invalid color."
)

type gameManager interface {
	Start(ctx context.Context)
	PickColor(ctx context.Context, color string) (string, error)
	JoinSecondPlayer(ctx context.Context) (string, error)
	MakeMove(ctx context.Context, player connectfour.Player, col int) *usecase.MoveOutcome
	State() (*usecase.GameState, bool)
}

type moveRequest struct {
	Column string `json:"column"`
}

type moveResponse struct {
	Move    connectfour.MarkedBoard `json:"move"`
	Invalid bool                    `json:"invalid"`
	Winner  string                  `json:"winner"`
	Reason  string                  `json:"reason,omitempty"`
}

type stateResponse struct {
	Move   connectfour.MarkedBoard `json:"move"`
	Winner string                  `json:"winner"`
	Color  string                  `json:"color"`
}

type handlers struct {
	logger *slog.Logger
	game   gameManager
}

func newHandlers(logger *slog.Logger, game gameManager) *handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		game:   game,
	}
}

func (that *handlers) register(e *echo.Echo) {
	e.GET("/", that.StartGame)
	e.GET("/p1Color", that.PickColor)
	e.GET("/p2Join", that.JoinSecondPlayer)
	e.POST("/move1", that.moveHandler(connectfour.PlayerOne))
	e.POST("/move2", that.moveHandler(connectfour.PlayerTwo))
	e.GET("/autoUpdate", that.State)
	e.GET("/ping", that.Ping)
}

func (that *handlers) StartGame(ctx echo.Context) error {
	that.game.Start(ctx.Request().Context())

	return ctx.Render(http.StatusOK, player1Template, page{Status: statusPickColor})
}

func (that *handlers) PickColor(ctx echo.Context) error {
	color, err := that.game.PickColor(ctx.Request().Context(), ctx.QueryParam("color"))
	if err != nil {
		return ctx.Redirect(http.StatusFound, "/")
	}

	return ctx.Render(http.StatusOK, player1Template, page{Status: color})
}

func (that *handlers) JoinSecondPlayer(ctx echo.Context) error {
	color, err := that.game.JoinSecondPlayer(ctx.Request().Context())

	switch {
	case err == nil:
		return ctx.Render(http.StatusOK, player2Template, page{Status: color})
	case errors.Is(err, apperror.ErrGameOver):
		return ctx.Redirect(http.StatusFound, "/")
	case errors.Is(err, apperror.ErrInvalidColor):
		return ctx.String(http.StatusConflict, errInvalidColor)
	default:
		return ctx.String(http.StatusConflict, errPlayerOneNotReady)
	}
}

func (that *handlers) moveHandler(player connectfour.Player) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		log := that.logger.With("method", "Move", "player", player.String())

		var req moveRequest
		if err := ctx.Bind(&req); err != nil {
			log.Debug("failed to decode move", "error", err)
			return ctx.String(http.StatusBadRequest, "Invalid move request")
		}

		col, ok := parseColumn(req.Column)
		if !ok {
			return ctx.String(http.StatusBadRequest, "Invalid column")
		}

		outcome := that.game.MakeMove(ctx.Request().Context(), player, col)

		resp := moveResponse{
			Move:   outcome.Board,
			Winner: outcome.Winner.String(),
		}
		if outcome.Rejection != nil {
			resp.Invalid = true
			resp.Reason = outcome.Rejection.Message
		}

		return ctx.JSON(http.StatusOK, resp)
	}
}

func (that *handlers) State(ctx echo.Context) error {
	state, ok := that.game.State()
	if !ok {
		return ctx.JSON(http.StatusOK, echo.Map{"move": ""})
	}

	return ctx.JSON(http.StatusOK, stateResponse{
		Move:   state.Board,
		Winner: state.Winner.String(),
		Color:  state.Player1Mark,
	})
}

func (that *handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// parseColumn - reads the column number from the last character of a label such as "col3".
func parseColumn(label string) (int, bool) {
	if label == "" {
		return 0, false
	}

	last := label[len(label)-1]
	if last < '0' || last > '9' {
		return 0, false
	}

	return int(last - '0'), true
}
