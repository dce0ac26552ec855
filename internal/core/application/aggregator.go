package application

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
)

// BalanceAggregator rolls watched-address balances up into account
// aggregates and account aggregates into wallet totals. Aggregation is
// plain commutative integer addition, so the result is identical for any
// ordering of the underlying addresses.
type BalanceAggregator struct {
	accountRepository domain.AccountRepository
	addressRepository domain.AddressRepository
}

func NewBalanceAggregator(
	accountRepository domain.AccountRepository,
	addressRepository domain.AddressRepository,
) *BalanceAggregator {
	return &BalanceAggregator{
		accountRepository: accountRepository,
		addressRepository: addressRepository,
	}
}

// AccountBalance sums the component fields of all the account's address
// balances and refreshes the account's persisted aggregate in place,
// creating it on first demand. Summation fails with ErrBalanceOverflow
// instead of wrapping.
func (b *BalanceAggregator) AccountBalance(
	ctx context.Context, accountID string,
) (*domain.Balance, error) {
	addresses, err := b.addressRepository.GetAddressesForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	sum := domain.NewBalance()
	for _, address := range addresses {
		if err := sum.Add(address.Balance); err != nil {
			return nil, err
		}
	}

	var aggregate *domain.Balance
	if err := b.accountRepository.UpdateAccount(
		ctx, accountID,
		func(a *domain.Account) (*domain.Account, error) {
			if a.Balance == nil {
				a.Balance = domain.NewBalance()
			}
			a.Balance.Update(*sum)
			aggregate = a.Balance
			return a, nil
		},
	); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// WalletBalance sums AccountBalance across all accounts of the wallet. The
// result is synthesized fresh on every call and never persisted, so it
// always reflects current state without an invalidation mechanism.
func (b *BalanceAggregator) WalletBalance(
	ctx context.Context, walletID string,
) (*domain.Balance, error) {
	accounts, err := b.accountRepository.GetAccountsForWallet(ctx, walletID)
	if err != nil {
		return nil, err
	}

	total := domain.NewBalance()
	for _, account := range accounts {
		accountBalance, err := b.AccountBalance(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		if err := total.Add(*accountBalance); err != nil {
			return nil, err
		}
	}

	return total, nil
}
