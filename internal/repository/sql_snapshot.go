package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	createGameTable = `CREATE TABLE game (
		game_id TEXT,
		current_turn TEXT,
		board TEXT,
		winner TEXT,
		player1 TEXT,
		player2 TEXT,
		remaining_moves INTEGER
	)`
	probeGameTable  = `SELECT 1 FROM game LIMIT 1`
	selectLatestRow = `SELECT game_id, current_turn, board, winner, player1, player2, remaining_moves
		FROM game ORDER BY remaining_moves LIMIT 1`
	dropGameTable = `DROP TABLE IF EXISTS game`
)

type sqlDialect struct {
	insert string
}

var (
	sqliteDialect = sqlDialect{
		insert: `INSERT INTO game (game_id, current_turn, board, winner, player1, player2, remaining_moves)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
	}
	postgresDialect = sqlDialect{
		insert: `INSERT INTO game (game_id, current_turn, board, winner, player1, player2, remaining_moves)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
	}
)

type sqlSnapshotRepository struct {
	conn    *sql.DB
	dialect sqlDialect
}

func NewSQLiteSnapshotRepository(conn *sql.DB) SnapshotRepository {
	return &sqlSnapshotRepository{
		conn:    conn,
		dialect: sqliteDialect,
	}
}

func NewPostgresSnapshotRepository(conn *sql.DB) SnapshotRepository {
	return &sqlSnapshotRepository{
		conn:    conn,
		dialect: postgresDialect,
	}
}

func (that *sqlSnapshotRepository) Initialize(ctx context.Context) error {
	exists, err := that.tableExists(ctx)
	if err != nil {
		return err
	}

	if exists {
		return ErrAlreadyInitialized
	}

	if _, err = that.conn.ExecContext(ctx, createGameTable); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *sqlSnapshotRepository) Save(ctx context.Context, snapshot entity.Snapshot) error {
	_, err := that.conn.ExecContext(ctx, that.dialect.insert,
		snapshot.GameID,
		snapshot.CurrentTurn,
		snapshot.Board,
		snapshot.Result,
		snapshot.Player1,
		snapshot.Player2,
		snapshot.RemainingMoves,
	)
	if err != nil {
		return fmt.Errorf("can't save snapshot: %w", err)
	}

	return nil
}

func (that *sqlSnapshotRepository) FetchLatest(ctx context.Context) (*entity.Snapshot, error) {
	exists, err := that.tableExists(ctx)
	if err != nil {
		return nil, err
	}

	if !exists {
		return nil, ErrSnapshotNotFound
	}

	var snapshot entity.Snapshot

	err = that.conn.QueryRowContext(ctx, selectLatestRow).Scan(
		&snapshot.GameID,
		&snapshot.CurrentTurn,
		&snapshot.Board,
		&snapshot.Result,
		&snapshot.Player1,
		&snapshot.Player2,
		&snapshot.RemainingMoves,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't fetch snapshot: %w", err)
	}

	return &snapshot, nil
}

func (that *sqlSnapshotRepository) Reset(ctx context.Context) error {
	if _, err := that.conn.ExecContext(ctx, dropGameTable); err != nil {
		return fmt.Errorf("can't drop table: %w", err)
	}

	return nil
}

// tableExists - probes the game table. A failing probe is read as a missing table,
// so only connection-level failures are returned.
func (that *sqlSnapshotRepository) tableExists(ctx context.Context) (bool, error) {
	if err := that.conn.PingContext(ctx); err != nil {
		return false, fmt.Errorf("can't connect to database: %w", err)
	}

	var one int
	err := that.conn.QueryRowContext(ctx, probeGameTable).Scan(&one)
	switch {
	case err == nil, errors.Is(err, sql.ErrNoRows):
		return true, nil
	default:
		return false, nil
	}
}
