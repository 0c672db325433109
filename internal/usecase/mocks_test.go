package usecase

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

type mockSnapshotRepo struct {
	mock.Mock
}

func (m *mockSnapshotRepo) Initialize(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockSnapshotRepo) Save(ctx context.Context, snapshot entity.Snapshot) error {
	return m.Called(ctx, snapshot).Error(0)
}

func (m *mockSnapshotRepo) FetchLatest(ctx context.Context) (*entity.Snapshot, error) {
	args := m.Called(ctx)
	snapshot, _ := args.Get(0).(*entity.Snapshot)
	return snapshot, args.Error(1)
}

func (m *mockSnapshotRepo) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []entity.Event
}

func (r *recordingPublisher) Publish(_ context.Context, event entity.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, event)
}

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]string, 0, len(r.events))
	for _, event := range r.events {
		types = append(types, event.Type)
	}
	return types
}
