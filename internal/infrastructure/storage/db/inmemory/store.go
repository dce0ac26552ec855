package inmemory

import (
	"sync"

	"github.com/dashwallet/walletd/internal/core/domain"
)

// The stores keep entities by value, so every read hands out a copy and
// every update writes a whole entity back. Failed update closures leave the
// store untouched.

type walletStore struct {
	locker  *sync.Mutex
	wallets map[string]domain.Wallet
}

type accountStore struct {
	locker   *sync.Mutex
	accounts map[string]domain.Account
}

type addressStore struct {
	locker    *sync.Mutex
	addresses map[string]domain.WatchedAddress
}

type syncStateStore struct {
	locker *sync.Mutex
	states map[string]domain.SyncState
}

func newWalletStore() *walletStore {
	return &walletStore{
		locker:  &sync.Mutex{},
		wallets: map[string]domain.Wallet{},
	}
}

func newAccountStore() *accountStore {
	return &accountStore{
		locker:   &sync.Mutex{},
		accounts: map[string]domain.Account{},
	}
}

func newAddressStore() *addressStore {
	return &addressStore{
		locker:    &sync.Mutex{},
		addresses: map[string]domain.WatchedAddress{},
	}
}

func newSyncStateStore() *syncStateStore {
	return &syncStateStore{
		locker: &sync.Mutex{},
		states: map[string]domain.SyncState{},
	}
}
