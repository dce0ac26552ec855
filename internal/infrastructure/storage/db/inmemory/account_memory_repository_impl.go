package inmemory

import (
	"context"
	"sort"

	"github.com/dashwallet/walletd/internal/core/domain"
)

type accountRepositoryImpl struct {
	store *accountStore
}

// NewAccountRepositoryImpl returns a new inmemory AccountRepository
// implementation.
func NewAccountRepositoryImpl(store *accountStore) domain.AccountRepository {
	return &accountRepositoryImpl{store}
}

func (r accountRepositoryImpl) AddAccount(_ context.Context, account *domain.Account) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	for _, a := range r.store.accounts {
		if a.WalletID == account.WalletID && a.Index == account.Index {
			return domain.ErrDuplicateAccountIndex
		}
	}

	r.store.accounts[account.ID] = *cloneAccount(account)
	return nil
}

func (r accountRepositoryImpl) GetAccount(_ context.Context, accountID string) (*domain.Account, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getAccount(accountID)
}

func (r accountRepositoryImpl) GetAccountsForWallet(
	_ context.Context, walletID string,
) ([]*domain.Account, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	accounts := make([]*domain.Account, 0)
	for _, a := range r.store.accounts {
		if a.WalletID == walletID {
			account := a
			accounts = append(accounts, cloneAccount(&account))
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Index < accounts[j].Index
	})
	return accounts, nil
}

func (r accountRepositoryImpl) UpdateAccount(
	_ context.Context,
	accountID string,
	updateFn func(a *domain.Account) (*domain.Account, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentAccount, err := r.getAccount(accountID)
	if err != nil {
		return err
	}

	updatedAccount, err := updateFn(currentAccount)
	if err != nil {
		return err
	}

	r.store.accounts[accountID] = *cloneAccount(updatedAccount)
	return nil
}

func (r accountRepositoryImpl) getAccount(accountID string) (*domain.Account, error) {
	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return cloneAccount(&account), nil
}

// cloneAccount severs the balance pointer and the slice backing array, so
// the value copy stored in the map really is isolated from its readers.
func cloneAccount(account *domain.Account) *domain.Account {
	clone := *account
	clone.TxIDs = append([]string{}, account.TxIDs...)
	if account.Balance != nil {
		balance := *account.Balance
		clone.Balance = &balance
	}
	return &clone
}
