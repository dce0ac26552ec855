package domain

import "context"

// WalletRepository is the interface for the persistence of Wallet entities.
type WalletRepository interface {
	// AddWallet inserts the wallet, failing with ErrDuplicateSeed if another
	// wallet with the same seed hash is already stored.
	AddWallet(ctx context.Context, wallet *Wallet) error
	// GetWallet returns the wallet with the given id, or ErrWalletNotFound.
	GetWallet(ctx context.Context, walletID string) (*Wallet, error)
	// GetAllWallets returns all stored wallets.
	GetAllWallets(ctx context.Context) ([]*Wallet, error)
	// UpdateWallet applies updateFn to the stored wallet and persists the
	// result. A failing updateFn leaves the wallet untouched.
	UpdateWallet(
		ctx context.Context,
		walletID string,
		updateFn func(w *Wallet) (*Wallet, error),
	) error
	// DeleteWallet removes the wallet and cascades to its accounts, watched
	// addresses and sync state.
	DeleteWallet(ctx context.Context, walletID string) error
}
