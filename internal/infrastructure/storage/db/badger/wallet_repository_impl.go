package dbbadger

import (
	"context"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type walletRepositoryImpl struct {
	db *DbManager
}

func NewWalletRepositoryImpl(db *DbManager) domain.WalletRepository {
	return walletRepositoryImpl{
		db: db,
	}
}

func (w walletRepositoryImpl) AddWallet(
	ctx context.Context,
	wallet *domain.Wallet,
) error {
	query := badgerhold.Where("SeedHash").Eq(wallet.SeedHash)
	dupes, err := w.findWallets(ctx, query)
	if err != nil {
		return err
	}
	if len(dupes) > 0 {
		return domain.ErrDuplicateSeed
	}

	return w.insertWallet(ctx, wallet)
}

func (w walletRepositoryImpl) GetWallet(
	ctx context.Context,
	walletID string,
) (*domain.Wallet, error) {
	return w.getWallet(ctx, walletID)
}

func (w walletRepositoryImpl) GetAllWallets(
	ctx context.Context,
) ([]*domain.Wallet, error) {
	wallets, err := w.findWallets(ctx, nil)
	if err != nil {
		return nil, err
	}

	list := make([]*domain.Wallet, 0, len(wallets))
	for i := range wallets {
		list = append(list, &wallets[i])
	}
	return list, nil
}

func (w walletRepositoryImpl) UpdateWallet(
	ctx context.Context,
	walletID string,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	currentWallet, err := w.getWallet(ctx, walletID)
	if err != nil {
		return err
	}

	updatedWallet, err := updateFn(currentWallet)
	if err != nil {
		return err
	}

	return w.updateWallet(ctx, walletID, *updatedWallet)
}

// DeleteWallet removes the wallet and cascades over everything keyed by it:
// accounts, watched addresses and the sync state.
func (w walletRepositoryImpl) DeleteWallet(
	ctx context.Context,
	walletID string,
) error {
	if _, err := w.getWallet(ctx, walletID); err != nil {
		return err
	}

	owned := badgerhold.Where("WalletID").Eq(walletID)
	if err := w.deleteMatching(ctx, &domain.WatchedAddress{}, owned); err != nil {
		return err
	}
	if err := w.deleteMatching(ctx, &domain.Account{}, owned); err != nil {
		return err
	}
	if err := w.db.syncStateRepository.DeleteSyncState(ctx, walletID); err != nil {
		return err
	}

	return w.deleteWallet(ctx, walletID)
}

func (w walletRepositoryImpl) getWallet(
	ctx context.Context,
	walletID string,
) (*domain.Wallet, error) {
	var wallet domain.Wallet
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = w.db.Store.TxGet(tx, walletID, &wallet)
	} else {
		err = w.db.Store.Get(walletID, &wallet)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrWalletNotFound
		}
		return nil, err
	}

	return &wallet, nil
}

func (w walletRepositoryImpl) findWallets(
	ctx context.Context,
	query *badgerhold.Query,
) ([]domain.Wallet, error) {
	var wallets []domain.Wallet
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = w.db.Store.TxFind(tx, &wallets, query)
	} else {
		err = w.db.Store.Find(&wallets, query)
	}

	return wallets, err
}

func (w walletRepositoryImpl) insertWallet(
	ctx context.Context,
	wallet *domain.Wallet,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = w.db.Store.TxInsert(tx, wallet.ID, wallet)
	} else {
		err = w.db.Store.Insert(wallet.ID, wallet)
	}
	return err
}

func (w walletRepositoryImpl) updateWallet(
	ctx context.Context,
	walletID string,
	wallet domain.Wallet,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return w.db.Store.TxUpdate(tx, walletID, wallet)
	}
	return w.db.Store.Update(walletID, wallet)
}

func (w walletRepositoryImpl) deleteWallet(
	ctx context.Context,
	walletID string,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return w.db.Store.TxDelete(tx, walletID, domain.Wallet{})
	}
	return w.db.Store.Delete(walletID, domain.Wallet{})
}

func (w walletRepositoryImpl) deleteMatching(
	ctx context.Context,
	dataType interface{},
	query *badgerhold.Query,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return w.db.Store.TxDeleteMatching(tx, dataType, query)
	}
	return w.db.Store.DeleteMatching(dataType, query)
}
