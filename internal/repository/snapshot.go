package repository

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

var (
	ErrSnapshotNotFound   = errors.New("snapshot not found")
	ErrAlreadyInitialized = errors.New("snapshot storage already initialized")
	ErrNotInitialized     = errors.New("snapshot storage is not initialized")
)

// SnapshotRepository keeps the snapshots of the active game. It is append-only:
// FetchLatest returns the snapshot with the fewest remaining moves.
type SnapshotRepository interface {
	Initialize(ctx context.Context) error
	Save(ctx context.Context, snapshot entity.Snapshot) error
	FetchLatest(ctx context.Context) (*entity.Snapshot, error)
	Reset(ctx context.Context) error
}
