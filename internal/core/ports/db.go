package ports

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
)

// DbManager interface gives access to the repositories of all stored
// entities and to transaction scoping.
type DbManager interface {
	WalletRepository() domain.WalletRepository
	AccountRepository() domain.AccountRepository
	AddressRepository() domain.AddressRepository
	SyncStateRepository() domain.SyncStateRepository

	Close() error

	// RunTransaction runs the handler within a single storage transaction
	// carried by the returned context. The transaction is committed only if
	// the handler returns a nil error, otherwise it is discarded and no
	// partial mutation survives.
	RunTransaction(
		ctx context.Context,
		readOnly bool,
		handler func(ctx context.Context) (interface{}, error),
	) (interface{}, error)
}
