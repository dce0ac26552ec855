package inmemory

import (
	"context"
	"sort"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type addressRepositoryImpl struct {
	store *addressStore
}

// NewAddressRepositoryImpl returns a new inmemory AddressRepository
// implementation.
func NewAddressRepositoryImpl(store *addressStore) domain.AddressRepository {
	return &addressRepositoryImpl{store}
}

func (r addressRepositoryImpl) AddAddress(_ context.Context, address *domain.WatchedAddress) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.addresses[address.Address]; ok {
		return domain.ErrDuplicateAddress
	}

	r.store.addresses[address.Address] = *address
	return nil
}

func (r addressRepositoryImpl) GetAddress(_ context.Context, address string) (*domain.WatchedAddress, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getAddress(address)
}

func (r addressRepositoryImpl) GetAddressesForAccount(
	_ context.Context, accountID string,
) ([]*domain.WatchedAddress, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.collect(func(a domain.WatchedAddress) bool {
		return a.AccountID == accountID
	}), nil
}

func (r addressRepositoryImpl) GetAddressesForWallet(
	_ context.Context, walletID string,
) ([]*domain.WatchedAddress, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.collect(func(a domain.WatchedAddress) bool {
		return a.WalletID == walletID
	}), nil
}

func (r addressRepositoryImpl) UpdateAddress(
	_ context.Context,
	address string,
	updateFn func(a *domain.WatchedAddress) (*domain.WatchedAddress, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentAddress, err := r.getAddress(address)
	if err != nil {
		return err
	}

	updatedAddress, err := updateFn(currentAddress)
	if err != nil {
		return err
	}

	r.store.addresses[address] = *updatedAddress
	return nil
}

func (r addressRepositoryImpl) getAddress(address string) (*domain.WatchedAddress, error) {
	watched, ok := r.store.addresses[address]
	if !ok {
		return nil, domain.ErrAddressNotFound
	}
	return &watched, nil
}

// ordered by account, then external before change, then index
func (r addressRepositoryImpl) collect(match func(domain.WatchedAddress) bool) []*domain.WatchedAddress {
	addresses := make([]*domain.WatchedAddress, 0)
	for _, a := range r.store.addresses {
		if match(a) {
			address := a
			addresses = append(addresses, &address)
		}
	}

	sort.Slice(addresses, func(i, j int) bool {
		if addresses[i].AccountID != addresses[j].AccountID {
			return addresses[i].AccountID < addresses[j].AccountID
		}
		if addresses[i].IsChange != addresses[j].IsChange {
			return !addresses[i].IsChange
		}
		return addresses[i].Index < addresses[j].Index
	})
	return addresses
}
