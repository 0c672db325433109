package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	snapshotsKey   = "game:snapshots"
	initializedKey = "game:initialized"
)

type redisSnapshotRepository struct {
	client *redis.Client
}

// NewRedisSnapshotRepository stores snapshots in a sorted set scored by remaining moves.
func NewRedisSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &redisSnapshotRepository{
		client: client,
	}
}

func (that *redisSnapshotRepository) Initialize(ctx context.Context) error {
	created, err := that.client.SetNX(ctx, initializedKey, 1, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to initialize snapshots: %w", err)
	}

	if !created {
		return ErrAlreadyInitialized
	}

	return nil
}

func (that *redisSnapshotRepository) Save(ctx context.Context, snapshot entity.Snapshot) error {
	initialized, err := that.client.Exists(ctx, initializedKey).Result()
	if err != nil {
		return fmt.Errorf("failed to check snapshots: %w", err)
	}

	if initialized == 0 {
		return ErrNotInitialized
	}

	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	err = that.client.ZAdd(ctx, snapshotsKey, redis.Z{
		Score:  float64(snapshot.RemainingMoves),
		Member: snapshotJSON,
	}).Err()
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	return nil
}

func (that *redisSnapshotRepository) FetchLatest(ctx context.Context) (*entity.Snapshot, error) {
	members, err := that.client.ZRange(ctx, snapshotsKey, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch snapshot: %w", err)
	}

	if len(members) == 0 {
		return nil, ErrSnapshotNotFound
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(members[0]), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

func (that *redisSnapshotRepository) Reset(ctx context.Context) error {
	if err := that.client.Del(ctx, snapshotsKey, initializedKey).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshots: %w", err)
	}

	return nil
}
