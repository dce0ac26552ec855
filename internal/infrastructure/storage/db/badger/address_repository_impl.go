package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type addressRepositoryImpl struct {
	db *DbManager
}

func NewAddressRepositoryImpl(db *DbManager) domain.AddressRepository {
	return addressRepositoryImpl{
		db: db,
	}
}

func (a addressRepositoryImpl) AddAddress(
	ctx context.Context,
	address *domain.WatchedAddress,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxInsert(tx, address.Address, address)
	} else {
		err = a.db.Store.Insert(address.Address, address)
	}
	if err == badgerhold.ErrKeyExists {
		return domain.ErrDuplicateAddress
	}
	return err
}

func (a addressRepositoryImpl) GetAddress(
	ctx context.Context,
	address string,
) (*domain.WatchedAddress, error) {
	return a.getAddress(ctx, address)
}

func (a addressRepositoryImpl) GetAddressesForAccount(
	ctx context.Context,
	accountID string,
) ([]*domain.WatchedAddress, error) {
	addresses, err := a.findAddresses(ctx, badgerhold.Where("AccountID").Eq(accountID))
	if err != nil {
		return nil, err
	}

	sortAddresses(addresses)
	return toPointers(addresses), nil
}

func (a addressRepositoryImpl) GetAddressesForWallet(
	ctx context.Context,
	walletID string,
) ([]*domain.WatchedAddress, error) {
	addresses, err := a.findAddresses(ctx, badgerhold.Where("WalletID").Eq(walletID))
	if err != nil {
		return nil, err
	}

	sortAddresses(addresses)
	return toPointers(addresses), nil
}

func (a addressRepositoryImpl) UpdateAddress(
	ctx context.Context,
	address string,
	updateFn func(a *domain.WatchedAddress) (*domain.WatchedAddress, error),
) error {
	currentAddress, err := a.getAddress(ctx, address)
	if err != nil {
		return err
	}

	updatedAddress, err := updateFn(currentAddress)
	if err != nil {
		return err
	}

	return a.updateAddress(ctx, address, *updatedAddress)
}

func (a addressRepositoryImpl) getAddress(
	ctx context.Context,
	address string,
) (*domain.WatchedAddress, error) {
	var watched domain.WatchedAddress
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxGet(tx, address, &watched)
	} else {
		err = a.db.Store.Get(address, &watched)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrAddressNotFound
		}
		return nil, err
	}

	return &watched, nil
}

func (a addressRepositoryImpl) findAddresses(
	ctx context.Context,
	query *badgerhold.Query,
) ([]domain.WatchedAddress, error) {
	var addresses []domain.WatchedAddress
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxFind(tx, &addresses, query)
	} else {
		err = a.db.Store.Find(&addresses, query)
	}

	return addresses, err
}

func (a addressRepositoryImpl) updateAddress(
	ctx context.Context,
	address string,
	watched domain.WatchedAddress,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return a.db.Store.TxUpdate(tx, address, watched)
	}
	return a.db.Store.Update(address, watched)
}

// ordered by account, then external before change, then index
func sortAddresses(addresses []domain.WatchedAddress) {
	sort.Slice(addresses, func(i, j int) bool {
		if addresses[i].AccountID != addresses[j].AccountID {
			return addresses[i].AccountID < addresses[j].AccountID
		}
		if addresses[i].IsChange != addresses[j].IsChange {
			return !addresses[i].IsChange
		}
		return addresses[i].Index < addresses[j].Index
	})
}

func toPointers(addresses []domain.WatchedAddress) []*domain.WatchedAddress {
	list := make([]*domain.WatchedAddress, 0, len(addresses))
	for i := range addresses {
		list = append(list, &addresses[i])
	}
	return list
}
