package domain

import "context"

// AddressRepository is the interface for the persistence of WatchedAddress
// entities. Addresses are keyed by their address string, which is unique
// across the whole store.
type AddressRepository interface {
	// AddAddress inserts the watched address, failing with
	// ErrDuplicateAddress if the address string is already stored.
	AddAddress(ctx context.Context, address *WatchedAddress) error
	// GetAddress returns the watched address with the given address string,
	// or ErrAddressNotFound.
	GetAddress(ctx context.Context, address string) (*WatchedAddress, error)
	// GetAddressesForAccount returns the account's addresses ordered by
	// chain and index.
	GetAddressesForAccount(ctx context.Context, accountID string) ([]*WatchedAddress, error)
	// GetAddressesForWallet returns all addresses owned by any account of
	// the wallet.
	GetAddressesForWallet(ctx context.Context, walletID string) ([]*WatchedAddress, error)
	// UpdateAddress applies updateFn to the stored address and persists the
	// result. A failing updateFn leaves the address untouched.
	UpdateAddress(
		ctx context.Context,
		address string,
		updateFn func(a *WatchedAddress) (*WatchedAddress, error),
	) error
}
