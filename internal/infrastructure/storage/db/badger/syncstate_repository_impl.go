package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type syncStateRepositoryImpl struct {
	db *DbManager
}

func NewSyncStateRepositoryImpl(db *DbManager) domain.SyncStateRepository {
	return syncStateRepositoryImpl{
		db: db,
	}
}

func (s syncStateRepositoryImpl) GetSyncState(
	ctx context.Context,
	walletID string,
) (*domain.SyncState, error) {
	var state domain.SyncState
	var err error
	if ctx.Value(syncTxKey) != nil {
		tx := ctx.Value(syncTxKey).(*badger.Txn)
		err = s.db.SyncStore.TxGet(tx, walletID, &state)
	} else {
		err = s.db.SyncStore.Get(walletID, &state)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrSyncStateNotFound
		}
		return nil, err
	}

	return &state, nil
}

// PutSyncState overwrites the wallet's sync state wholesale.
func (s syncStateRepositoryImpl) PutSyncState(
	ctx context.Context,
	state *domain.SyncState,
) error {
	if ctx.Value(syncTxKey) != nil {
		tx := ctx.Value(syncTxKey).(*badger.Txn)
		return s.db.SyncStore.TxUpsert(tx, state.WalletID, state)
	}
	return s.db.SyncStore.Upsert(state.WalletID, state)
}

func (s syncStateRepositoryImpl) DeleteSyncState(
	ctx context.Context,
	walletID string,
) error {
	var err error
	if ctx.Value(syncTxKey) != nil {
		tx := ctx.Value(syncTxKey).(*badger.Txn)
		err = s.db.SyncStore.TxDelete(tx, walletID, domain.SyncState{})
	} else {
		err = s.db.SyncStore.Delete(walletID, domain.SyncState{})
	}
	if err == badgerhold.ErrNotFound {
		return nil
	}
	return err
}
