package inmemory

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type walletRepositoryImpl struct {
	store      *walletStore
	accounts   *accountStore
	addresses  *addressStore
	syncStates *syncStateStore
}

// NewWalletRepositoryImpl returns a new inmemory WalletRepository
// implementation. It holds the other stores too, because deleting a wallet
// cascades over everything keyed by it.
func NewWalletRepositoryImpl(
	store *walletStore,
	accounts *accountStore,
	addresses *addressStore,
	syncStates *syncStateStore,
) domain.WalletRepository {
	return &walletRepositoryImpl{store, accounts, addresses, syncStates}
}

func (r walletRepositoryImpl) AddWallet(_ context.Context, wallet *domain.Wallet) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	for _, w := range r.store.wallets {
		if w.SeedHash == wallet.SeedHash {
			return domain.ErrDuplicateSeed
		}
	}

	r.store.wallets[wallet.ID] = *wallet
	return nil
}

func (r walletRepositoryImpl) GetWallet(_ context.Context, walletID string) (*domain.Wallet, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getWallet(walletID)
}

func (r walletRepositoryImpl) GetAllWallets(_ context.Context) ([]*domain.Wallet, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	wallets := make([]*domain.Wallet, 0, len(r.store.wallets))
	for _, w := range r.store.wallets {
		wallet := w
		wallets = append(wallets, &wallet)
	}
	return wallets, nil
}

func (r walletRepositoryImpl) UpdateWallet(
	_ context.Context,
	walletID string,
	updateFn func(w *domain.Wallet) (*domain.Wallet, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentWallet, err := r.getWallet(walletID)
	if err != nil {
		return err
	}

	updatedWallet, err := updateFn(currentWallet)
	if err != nil {
		return err
	}

	r.store.wallets[walletID] = *updatedWallet
	return nil
}

func (r walletRepositoryImpl) DeleteWallet(_ context.Context, walletID string) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, err := r.getWallet(walletID); err != nil {
		return err
	}

	r.addresses.locker.Lock()
	for address, a := range r.addresses.addresses {
		if a.WalletID == walletID {
			delete(r.addresses.addresses, address)
		}
	}
	r.addresses.locker.Unlock()

	r.accounts.locker.Lock()
	for id, a := range r.accounts.accounts {
		if a.WalletID == walletID {
			delete(r.accounts.accounts, id)
		}
	}
	r.accounts.locker.Unlock()

	r.syncStates.locker.Lock()
	delete(r.syncStates.states, walletID)
	r.syncStates.locker.Unlock()

	delete(r.store.wallets, walletID)
	return nil
}

func (r walletRepositoryImpl) getWallet(walletID string) (*domain.Wallet, error) {
	wallet, ok := r.store.wallets[walletID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return &wallet, nil
}
