package inmemory

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type syncStateRepositoryImpl struct {
	store *syncStateStore
}

// NewSyncStateRepositoryImpl returns a new inmemory SyncStateRepository
// implementation.
func NewSyncStateRepositoryImpl(store *syncStateStore) domain.SyncStateRepository {
	return &syncStateRepositoryImpl{store}
}

func (r syncStateRepositoryImpl) GetSyncState(_ context.Context, walletID string) (*domain.SyncState, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	state, ok := r.store.states[walletID]
	if !ok {
		return nil, domain.ErrSyncStateNotFound
	}
	return &state, nil
}

func (r syncStateRepositoryImpl) PutSyncState(_ context.Context, state *domain.SyncState) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.states[state.WalletID] = *state
	return nil
}

func (r syncStateRepositoryImpl) DeleteSyncState(_ context.Context, walletID string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	delete(r.store.states, walletID)
	return nil
}
