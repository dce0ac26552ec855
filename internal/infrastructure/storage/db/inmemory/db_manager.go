package inmemory

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
)

type DbManager struct {
	walletRepository    domain.WalletRepository
	accountRepository   domain.AccountRepository
	addressRepository   domain.AddressRepository
	syncStateRepository domain.SyncStateRepository
}

// NewDbManager returns a DbManager backed by in-memory stores. It serves
// tests and ephemeral runs; nothing survives a restart.
func NewDbManager() ports.DbManager {
	wallets := newWalletStore()
	accounts := newAccountStore()
	addresses := newAddressStore()
	syncStates := newSyncStateStore()

	return &DbManager{
		walletRepository:    NewWalletRepositoryImpl(wallets, accounts, addresses, syncStates),
		accountRepository:   NewAccountRepositoryImpl(accounts),
		addressRepository:   NewAddressRepositoryImpl(addresses),
		syncStateRepository: NewSyncStateRepositoryImpl(syncStates),
	}
}

func (d *DbManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *DbManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *DbManager) AddressRepository() domain.AddressRepository {
	return d.addressRepository
}

func (d *DbManager) SyncStateRepository() domain.SyncStateRepository {
	return d.syncStateRepository
}

func (d *DbManager) Close() error { return nil }

// RunTransaction executes the handler directly. Per-entity atomicity comes
// from the copy-on-write stores, but there is no multi-entity rollback: a
// handler that fails midway leaves its earlier writes applied. The badger
// implementation is the one to use where that matters; this backend serves
// tests and ephemeral runs.
func (d *DbManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	return handler(ctx)
}
