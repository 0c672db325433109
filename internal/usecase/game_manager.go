package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/connectfour-backend/internal/apperror"
	"github.com/rocketscienceinc/connectfour-backend/internal/connectfour"
	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
	"github.com/rocketscienceinc/connectfour-backend/internal/repository"
)

const (
	colorRed    = "red"
	colorYellow = "yellow"
)

type snapshotRepo interface {
	Initialize(ctx context.Context) error
	Save(ctx context.Context, snapshot entity.Snapshot) error
	FetchLatest(ctx context.Context) (*entity.Snapshot, error)
	Reset(ctx context.Context) error
}

// MoveOutcome is what a player sees after submitting a move.
type MoveOutcome struct {
	Board connectfour.MarkedBoard
	// Rejection is nil when the move was accepted.
	Rejection *connectfour.MoveRejection
	Winner    connectfour.Result
}

// GameState is the read-only view used for polling.
type GameState struct {
	Board       connectfour.MarkedBoard
	Winner      connectfour.Result
	Player1Mark string
}

// GameManager owns the single active game. Every call is serialized, so a move is
// validated and applied without another request in between.
type GameManager struct {
	logger    *slog.Logger
	snapshots snapshotRepo
	publisher eventPublisher

	mu     sync.Mutex
	game   *connectfour.Game
	gameID string
}

func NewGameManager(logger *slog.Logger, snapshots snapshotRepo, publisher eventPublisher) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		snapshots: snapshots,
		publisher: publisher,
	}
}

// Start discards any stored game and begins a fresh one.
func (that *GameManager) Start(ctx context.Context) {
	log := that.logger.With("method", "Start")

	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.snapshots.FetchLatest(ctx); err == nil {
		that.resetSnapshots(ctx)
	} else if !errors.Is(err, repository.ErrSnapshotNotFound) {
		log.Error("failed to fetch snapshot", "error", err)
	}

	that.game = connectfour.New()
	that.gameID = uuid.NewString()

	log.Info("new game started", "game_id", that.gameID)
	that.publish(ctx, entity.EventGameStart, nil)
}

// PickColor assigns player one's color when none is set yet and returns the color in use.
// Without an active game the last stored one is restored.
func (that *GameManager) PickColor(ctx context.Context, color string) (string, error) {
	log := that.logger.With("method", "PickColor")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		if !that.restore(ctx) {
			return "", apperror.ErrNoActiveGame
		}
	} else if that.game.Mark(connectfour.PlayerOne) == "" && color != "" {
		that.game.AssignMark(connectfour.PlayerOne, color)
		log.Info("player 1 picked a color", "game_id", that.gameID, "color", color)
	}

	mark := that.game.Mark(connectfour.PlayerOne)
	switch {
	case mark == "":
		return "", apperror.ErrColorNotPicked
	case that.game.IsFinished():
		return "", apperror.ErrGameOver
	}

	return mark, nil
}

// JoinSecondPlayer gives player two the color player one did not take.
func (that *GameManager) JoinSecondPlayer(ctx context.Context) (string, error) {
	log := that.logger.With("method", "JoinSecondPlayer")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil || that.game.Mark(connectfour.PlayerOne) == "" {
		return "", apperror.ErrPlayerOneNotReady
	}

	if that.game.IsFinished() {
		return "", apperror.ErrGameOver
	}

	if that.game.Mark(connectfour.PlayerTwo) == "" {
		var color string
		switch that.game.Mark(connectfour.PlayerOne) {
		case colorRed:
			color = colorYellow
		case colorYellow:
			color = colorRed
		default:
			return "", apperror.ErrInvalidColor
		}

		that.game.AssignMark(connectfour.PlayerTwo, color)
		log.Info("player 2 joined", "game_id", that.gameID, "color", color)

		if err := that.snapshots.Initialize(ctx); err != nil {
			log.Error("failed to initialize snapshots", "error", err)
		}
		that.saveSnapshot(ctx)

		that.publish(ctx, entity.EventPlayerJoined, entity.PlayerJoinedData{
			Player1: that.game.Mark(connectfour.PlayerOne),
			Player2: color,
		})
	}

	return that.game.Mark(connectfour.PlayerTwo), nil
}

// MakeMove validates and applies a move of player into col.
func (that *GameManager) MakeMove(ctx context.Context, player connectfour.Player, col int) *MoveOutcome {
	log := that.logger.With("method", "MakeMove")

	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return &MoveOutcome{
			Board:     connectfour.New().MarkedBoard(),
			Rejection: connectfour.ErrColorNotPicked,
		}
	}

	outcome := &MoveOutcome{}

	if err := that.game.ValidateMove(player, col); err != nil {
		var rejection *connectfour.MoveRejection
		if !errors.As(err, &rejection) {
			panic(err)
		}

		log.Debug("move rejected", "game_id", that.gameID, "player", player.String(), "column", col, "reason", rejection.Code)
		outcome.Rejection = rejection
	} else {
		row := that.game.ApplyMove(player, col)
		that.saveSnapshot(ctx)

		that.publish(ctx, entity.EventMove, entity.MoveData{
			Player: player.String(),
			Column: col,
			Row:    row,
			Board:  that.game.MarkedBoard(),
		})
	}

	outcome.Board = that.game.MarkedBoard()
	outcome.Winner = that.game.Result()

	if that.game.IsFinished() {
		that.resetSnapshots(ctx)

		if outcome.Rejection == nil {
			log.Info("game finished", "game_id", that.gameID, "winner", outcome.Winner.String())
			that.publish(ctx, entity.EventGameEnd, entity.GameEndData{
				Winner: outcome.Winner.String(),
				Moves:  connectfour.Cells - that.game.RemainingMoves(),
			})
		}
	}

	return outcome
}

// State returns the current game for polling, or false when there is none.
func (that *GameManager) State() (*GameState, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return nil, false
	}

	return &GameState{
		Board:       that.game.MarkedBoard(),
		Winner:      that.game.Result(),
		Player1Mark: that.game.Mark(connectfour.PlayerOne),
	}, true
}

// restore - loads the most advanced stored snapshot. Storage errors count as no snapshot.
func (that *GameManager) restore(ctx context.Context) bool {
	log := that.logger.With("method", "restore")

	snapshot, err := that.snapshots.FetchLatest(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			log.Error("failed to fetch snapshot", "error", err)
		}
		return false
	}

	game, err := connectfour.FromSnapshot(*snapshot)
	if err != nil {
		log.Error("stored snapshot is unusable", "error", err)
		return false
	}

	that.game = game
	that.gameID = snapshot.GameID
	if that.gameID == "" {
		that.gameID = uuid.NewString()
	}

	log.Info("game restored", "game_id", that.gameID, "remaining_moves", game.RemainingMoves())

	return true
}

func (that *GameManager) saveSnapshot(ctx context.Context) {
	log := that.logger.With("method", "saveSnapshot")

	snapshot, err := that.game.Snapshot()
	if err != nil {
		log.Error("failed to encode snapshot", "error", err)
		return
	}
	snapshot.GameID = that.gameID

	if err = that.snapshots.Save(ctx, snapshot); err != nil {
		log.Error("failed to save snapshot", "error", err)
	}
}

func (that *GameManager) resetSnapshots(ctx context.Context) {
	if err := that.snapshots.Reset(ctx); err != nil {
		that.logger.Error("failed to reset snapshots", "method", "resetSnapshots", "error", err)
	}
}

func (that *GameManager) publish(ctx context.Context, eventType string, data any) {
	that.publisher.Publish(ctx, entity.Event{
		Type:      eventType,
		GameID:    that.gameID,
		Timestamp: time.Now().Unix(),
		Data:      data,
	})
}
