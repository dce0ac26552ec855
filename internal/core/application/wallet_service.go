package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/internal/metrics"
)

// WalletService exposes the use cases of the wallet core: creating wallets
// and accounts, generating and presenting addresses, reading balances and
// sync progress. Every mutation is serialized per wallet through the
// internal locker, so it never interleaves with the sync listener working
// on the same wallet.
type WalletService struct {
	dbManager  ports.DbManager
	allocator  *AddressAllocator
	aggregator *BalanceAggregator
	watcher    *engineWatcher
	locker     *walletLocker
}

func NewWalletService(
	dbManager ports.DbManager,
	deriver ports.AddressDeriver,
	engine ports.SyncEngine,
) *WalletService {
	return &WalletService{
		dbManager: dbManager,
		allocator: NewAddressAllocator(
			dbManager.WalletRepository(),
			dbManager.AccountRepository(),
			dbManager.AddressRepository(),
			deriver,
		),
		aggregator: NewBalanceAggregator(
			dbManager.AccountRepository(),
			dbManager.AddressRepository(),
		),
		watcher: newEngineWatcher(engine),
		locker:  newWalletLocker(),
	}
}

// CreateWallet stores a new wallet together with its idle sync state. The
// encrypted seed and its content hash come from the collaborator that
// created the seed; a wallet whose seed hash is already stored on this
// device is rejected with ErrDuplicateSeed.
func (s *WalletService) CreateWallet(
	ctx context.Context,
	name string, network domain.Network,
	encryptedSeed []byte, seedHash string,
) (*domain.Wallet, error) {
	wallet, err := domain.NewWallet(name, network, encryptedSeed, seedHash)
	if err != nil {
		return nil, err
	}

	if _, err := s.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			if err := s.dbManager.WalletRepository().AddWallet(ctx, wallet); err != nil {
				return nil, err
			}
			return nil, s.dbManager.SyncStateRepository().PutSyncState(
				ctx, domain.NewSyncState(wallet.ID),
			)
		},
	); err != nil {
		return nil, err
	}

	log.Debugf("created wallet %s on %s", wallet.ID, wallet.Network)
	return wallet, nil
}

// CreateAccount appends a new account to the wallet at the next free index
// and seeds its external chain with the first receive address, which is
// registered with the sync engine.
func (s *WalletService) CreateAccount(
	ctx context.Context,
	walletID, label, extendedPublicKey string, gapLimit uint32,
) (*domain.Account, error) {
	unlock := s.locker.lock(walletID)
	defer unlock()

	var account *domain.Account
	res, err := s.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			if _, err := s.dbManager.WalletRepository().GetWallet(ctx, walletID); err != nil {
				return nil, err
			}
			accounts, err := s.dbManager.AccountRepository().GetAccountsForWallet(ctx, walletID)
			if err != nil {
				return nil, err
			}

			account, err = domain.NewAccount(
				walletID, uint32(len(accounts)), label, extendedPublicKey, gapLimit,
			)
			if err != nil {
				return nil, err
			}
			if err := s.dbManager.AccountRepository().AddAccount(ctx, account); err != nil {
				return nil, err
			}

			first, _, err := s.allocator.EnsureAddressAvailable(
				ctx, account.ID, domain.ExternalChain,
			)
			if err != nil {
				return nil, err
			}
			return first, nil
		},
	)
	if err != nil {
		return nil, err
	}

	s.watchAddress(ctx, res.(*domain.WatchedAddress).Address)
	return account, nil
}

// GenerateAddress is the user-triggered variant of the allocator run: it
// makes sure an unused address exists on the chain and returns it.
func (s *WalletService) GenerateAddress(
	ctx context.Context, accountID string, chain int,
) (*domain.WatchedAddress, error) {
	account, err := s.dbManager.AccountRepository().GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(account.WalletID)
	defer unlock()

	var derived bool
	res, err := s.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			address, wasDerived, err := s.allocator.EnsureAddressAvailable(ctx, accountID, chain)
			if err != nil {
				return nil, err
			}
			derived = wasDerived
			return address, nil
		},
	)
	if err != nil {
		return nil, err
	}

	address := res.(*domain.WatchedAddress)
	if derived {
		metrics.AddressesDerivedTotal.Inc()
		s.watchAddress(ctx, address.Address)
	}
	return address, nil
}

// ReceiveAddress returns the address to present for receiving funds, the
// lowest-index unused external address of the account. It never mutates
// anything; when it fails with ErrNoReceiveAddress the caller should run
// GenerateAddress.
func (s *WalletService) ReceiveAddress(
	ctx context.Context, accountID string,
) (*domain.WatchedAddress, error) {
	return s.allocator.ReceiveAddress(ctx, accountID)
}

// ExtendAddresses pre-derives up to count look-ahead addresses on the given
// chain, bounded by the account's gap limit, and registers them with the
// sync engine. Used to prepare recovery scans.
func (s *WalletService) ExtendAddresses(
	ctx context.Context, accountID string, chain int, count int,
) ([]*domain.WatchedAddress, error) {
	account, err := s.dbManager.AccountRepository().GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(account.WalletID)
	defer unlock()

	res, err := s.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return s.allocator.ExtendAddresses(ctx, accountID, chain, count)
		},
	)
	if err != nil {
		return nil, err
	}

	derived := res.([]*domain.WatchedAddress)
	for _, address := range derived {
		metrics.AddressesDerivedTotal.Inc()
		s.watchAddress(ctx, address.Address)
	}
	return derived, nil
}

// GetWallet returns the wallet with the given id.
func (s *WalletService) GetWallet(ctx context.Context, walletID string) (*domain.Wallet, error) {
	return s.dbManager.WalletRepository().GetWallet(ctx, walletID)
}

// ListWallets returns all wallets stored on this device.
func (s *WalletService) ListWallets(ctx context.Context) ([]*domain.Wallet, error) {
	return s.dbManager.WalletRepository().GetAllWallets(ctx)
}

// ListAccounts returns the wallet's accounts ordered by index.
func (s *WalletService) ListAccounts(
	ctx context.Context, walletID string,
) ([]*domain.Account, error) {
	return s.dbManager.AccountRepository().GetAccountsForWallet(ctx, walletID)
}

// ListAddresses returns the account's watched addresses ordered by chain
// and index.
func (s *WalletService) ListAddresses(
	ctx context.Context, accountID string,
) ([]*domain.WatchedAddress, error) {
	return s.dbManager.AddressRepository().GetAddressesForAccount(ctx, accountID)
}

// AccountBalance refreshes and returns the account's aggregate balance.
func (s *WalletService) AccountBalance(
	ctx context.Context, accountID string,
) (*domain.Balance, error) {
	account, err := s.dbManager.AccountRepository().GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	unlock := s.locker.lock(account.WalletID)
	defer unlock()

	return s.aggregator.AccountBalance(ctx, accountID)
}

// WalletBalance returns the wallet's total balance, synthesized from the
// aggregates of all its accounts.
func (s *WalletService) WalletBalance(
	ctx context.Context, walletID string,
) (*domain.Balance, error) {
	unlock := s.locker.lock(walletID)
	defer unlock()

	return s.aggregator.WalletBalance(ctx, walletID)
}

// SyncStatus returns the wallet's current sync state.
func (s *WalletService) SyncStatus(
	ctx context.Context, walletID string,
) (*domain.SyncState, error) {
	return s.dbManager.SyncStateRepository().GetSyncState(ctx, walletID)
}

// DeleteWallet removes the wallet and everything it owns: accounts,
// watched addresses, balances and sync state.
func (s *WalletService) DeleteWallet(ctx context.Context, walletID string) error {
	unlock := s.locker.lock(walletID)
	defer unlock()

	_, err := s.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			return nil, s.dbManager.WalletRepository().DeleteWallet(ctx, walletID)
		},
	)
	return err
}

func (s *WalletService) watchAddress(ctx context.Context, address string) {
	if err := s.watcher.watch(ctx, address); err != nil {
		metrics.WatchFailuresTotal.Inc()
		log.WithError(err).Warnf("trying to request watch for address %s", address)
	}
}
