package domain

import "context"

// SyncStateRepository is the interface for the persistence of the per-wallet
// SyncState records.
type SyncStateRepository interface {
	// GetSyncState returns the wallet's sync state, or ErrSyncStateNotFound.
	GetSyncState(ctx context.Context, walletID string) (*SyncState, error)
	// PutSyncState stores the given state, replacing any previous one for
	// the same wallet wholesale.
	PutSyncState(ctx context.Context, state *SyncState) error
	// DeleteSyncState removes the wallet's sync state.
	DeleteSyncState(ctx context.Context, walletID string) error
}
