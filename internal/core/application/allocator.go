package application

import (
	"context"
	"fmt"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/pkg/hdwallet"
)

// hardenedKeyStart bounds the index space reachable from an extended public
// key; the allocator never derives at or beyond it.
const hardenedKeyStart = int64(hdwallet.HardenedKeyStart)

// AddressAllocator enforces the gap-limit discipline of an account chain:
// it decides when the next address must be derived and which address to
// present as the receive address.
type AddressAllocator struct {
	walletRepository  domain.WalletRepository
	accountRepository domain.AccountRepository
	addressRepository domain.AddressRepository
	deriver           ports.AddressDeriver
}

func NewAddressAllocator(
	walletRepository domain.WalletRepository,
	accountRepository domain.AccountRepository,
	addressRepository domain.AddressRepository,
	deriver ports.AddressDeriver,
) *AddressAllocator {
	return &AddressAllocator{
		walletRepository:  walletRepository,
		accountRepository: accountRepository,
		addressRepository: addressRepository,
		deriver:           deriver,
	}
}

// EnsureAddressAvailable guarantees that the account's chain ends with at
// least one unused address. If the chain is empty or its last address has
// observed a transaction, the next index is derived and stored; otherwise
// nothing is mutated. Either way the lowest-index unused address is
// returned, together with whether it was derived by this call. A failed
// derivation creates nothing.
func (a *AddressAllocator) EnsureAddressAvailable(
	ctx context.Context, accountID string, chain int,
) (*domain.WatchedAddress, bool, error) {
	account, err := a.accountRepository.GetAccount(ctx, accountID)
	if err != nil {
		return nil, false, err
	}

	chainAddresses, err := a.chainAddresses(ctx, accountID, chain)
	if err != nil {
		return nil, false, err
	}

	if len(chainAddresses) > 0 && !chainAddresses[len(chainAddresses)-1].IsUsed() {
		for _, address := range chainAddresses {
			if !address.IsUsed() {
				return address, false, nil
			}
		}
	}

	nextIndex := uint32(0)
	if len(chainAddresses) > 0 {
		lastIndex := chainAddresses[len(chainAddresses)-1].Index
		if int64(lastIndex)+1 >= hardenedKeyStart {
			return nil, false, domain.ErrAddressIndexOverflow
		}
		nextIndex = lastIndex + 1
	}

	derived, err := a.deriveAddress(ctx, account, chain, nextIndex)
	if err != nil {
		return nil, false, err
	}
	return derived, true, nil
}

// ReceiveAddress returns the lowest-index unused external address of the
// account. It is a query with no side effects; when every external address
// is used, or none exists, the caller must run EnsureAddressAvailable first.
func (a *AddressAllocator) ReceiveAddress(
	ctx context.Context, accountID string,
) (*domain.WatchedAddress, error) {
	chainAddresses, err := a.chainAddresses(ctx, accountID, domain.ExternalChain)
	if err != nil {
		return nil, err
	}

	for _, address := range chainAddresses {
		if !address.IsUsed() {
			return address, nil
		}
	}
	return nil, ErrNoReceiveAddress
}

// ExtendAddresses derives up to count look-ahead addresses on the chain,
// stopping early when another derivation would push the distance between
// the highest known and the highest used index beyond the gap limit.
// It returns the addresses actually derived.
func (a *AddressAllocator) ExtendAddresses(
	ctx context.Context, accountID string, chain int, count int,
) ([]*domain.WatchedAddress, error) {
	account, err := a.accountRepository.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	chainAddresses, err := a.chainAddresses(ctx, accountID, chain)
	if err != nil {
		return nil, err
	}

	highestKnown := int64(-1)
	if len(chainAddresses) > 0 {
		highestKnown = int64(chainAddresses[len(chainAddresses)-1].Index)
	}
	highestUsed := account.LastUsedIndex(chain)

	derived := make([]*domain.WatchedAddress, 0, count)
	for i := 0; i < count; i++ {
		nextIndex := highestKnown + 1
		if nextIndex-highestUsed > int64(account.GapLimit) {
			break
		}
		if nextIndex >= hardenedKeyStart {
			return derived, domain.ErrAddressIndexOverflow
		}

		address, err := a.deriveAddress(ctx, account, chain, uint32(nextIndex))
		if err != nil {
			return derived, err
		}
		derived = append(derived, address)
		highestKnown = nextIndex
	}

	return derived, nil
}

func (a *AddressAllocator) chainAddresses(
	ctx context.Context, accountID string, chain int,
) ([]*domain.WatchedAddress, error) {
	addresses, err := a.addressRepository.GetAddressesForAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	chainAddresses := make([]*domain.WatchedAddress, 0, len(addresses))
	for _, address := range addresses {
		if address.Chain() == chain {
			chainAddresses = append(chainAddresses, address)
		}
	}
	return chainAddresses, nil
}

func (a *AddressAllocator) deriveAddress(
	ctx context.Context, account *domain.Account, chain int, index uint32,
) (*domain.WatchedAddress, error) {
	wallet, err := a.walletRepository.GetWallet(ctx, account.WalletID)
	if err != nil {
		return nil, err
	}

	addressStr, err := a.deriver.DeriveAddress(
		account.ExtendedPublicKey, chain, index, wallet.Network,
	)
	if err != nil {
		return nil, err
	}
	if err := ValidateAddress(addressStr, wallet.Network); err != nil {
		return nil, fmt.Errorf("derived address %s: %w", addressStr, err)
	}

	address := domain.NewWatchedAddress(
		addressStr,
		account.ID,
		account.WalletID,
		account.AddressDerivationPath(wallet.Network, chain, index),
		index,
		chain == domain.InternalChain,
	)
	if err := a.addressRepository.AddAddress(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}
