package domain

import "context"

// AccountRepository is the interface for the persistence of Account entities.
type AccountRepository interface {
	// AddAccount inserts the account, failing with ErrDuplicateAccountIndex
	// if the wallet already has an account at the same index.
	AddAccount(ctx context.Context, account *Account) error
	// GetAccount returns the account with the given id, or ErrAccountNotFound.
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	// GetAccountsForWallet returns the wallet's accounts ordered by index.
	GetAccountsForWallet(ctx context.Context, walletID string) ([]*Account, error)
	// UpdateAccount applies updateFn to the stored account and persists the
	// result. A failing updateFn leaves the account untouched.
	UpdateAccount(
		ctx context.Context,
		accountID string,
		updateFn func(a *Account) (*Account, error),
	) error
}
