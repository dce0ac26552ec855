package dbbadger

import (
	"context"
	"sort"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type accountRepositoryImpl struct {
	db *DbManager
}

func NewAccountRepositoryImpl(db *DbManager) domain.AccountRepository {
	return accountRepositoryImpl{
		db: db,
	}
}

func (a accountRepositoryImpl) AddAccount(
	ctx context.Context,
	account *domain.Account,
) error {
	query := badgerhold.
		Where("WalletID").Eq(account.WalletID).
		And("Index").Eq(account.Index)
	dupes, err := a.findAccounts(ctx, query)
	if err != nil {
		return err
	}
	if len(dupes) > 0 {
		return domain.ErrDuplicateAccountIndex
	}

	return a.insertAccount(ctx, account)
}

func (a accountRepositoryImpl) GetAccount(
	ctx context.Context,
	accountID string,
) (*domain.Account, error) {
	return a.getAccount(ctx, accountID)
}

func (a accountRepositoryImpl) GetAccountsForWallet(
	ctx context.Context,
	walletID string,
) ([]*domain.Account, error) {
	accounts, err := a.findAccounts(ctx, badgerhold.Where("WalletID").Eq(walletID))
	if err != nil {
		return nil, err
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Index < accounts[j].Index
	})

	list := make([]*domain.Account, 0, len(accounts))
	for i := range accounts {
		list = append(list, &accounts[i])
	}
	return list, nil
}

func (a accountRepositoryImpl) UpdateAccount(
	ctx context.Context,
	accountID string,
	updateFn func(a *domain.Account) (*domain.Account, error),
) error {
	currentAccount, err := a.getAccount(ctx, accountID)
	if err != nil {
		return err
	}

	updatedAccount, err := updateFn(currentAccount)
	if err != nil {
		return err
	}

	return a.updateAccount(ctx, accountID, *updatedAccount)
}

func (a accountRepositoryImpl) getAccount(
	ctx context.Context,
	accountID string,
) (*domain.Account, error) {
	var account domain.Account
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxGet(tx, accountID, &account)
	} else {
		err = a.db.Store.Get(accountID, &account)
	}
	if err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}

func (a accountRepositoryImpl) findAccounts(
	ctx context.Context,
	query *badgerhold.Query,
) ([]domain.Account, error) {
	var accounts []domain.Account
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxFind(tx, &accounts, query)
	} else {
		err = a.db.Store.Find(&accounts, query)
	}

	return accounts, err
}

func (a accountRepositoryImpl) insertAccount(
	ctx context.Context,
	account *domain.Account,
) error {
	var err error
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		err = a.db.Store.TxInsert(tx, account.ID, account)
	} else {
		err = a.db.Store.Insert(account.ID, account)
	}
	return err
}

func (a accountRepositoryImpl) updateAccount(
	ctx context.Context,
	accountID string,
	account domain.Account,
) error {
	if ctx.Value(txKey) != nil {
		tx := ctx.Value(txKey).(*badger.Txn)
		return a.db.Store.TxUpdate(tx, accountID, account)
	}
	return a.db.Store.Update(accountID, account)
}
