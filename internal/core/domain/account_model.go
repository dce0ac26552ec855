package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Account is one BIP44 account under a wallet. It owns the set of watched
// addresses derived from its extended public key, partitioned into the
// external (receive) and internal (change) chains.
//
// The last used indices are the highest address indices that have observed
// at least one transaction on each chain, -1 when no address has been used
// yet. They are updated by activity ingestion and bound, together with the
// gap limit, how far ahead the allocator may derive.
type Account struct {
	ID                    string
	WalletID              string
	Index                 uint32
	Label                 string
	ExtendedPublicKey     string
	GapLimit              uint32
	LastUsedExternalIndex int64
	LastUsedInternalIndex int64
	TxIDs                 []string
	Balance               *Balance
	CreatedAt             time.Time
}

// NewAccount returns a new Account under the given wallet. The extended
// public key is expected to sit at the account level of the derivation tree,
// private derivation above it is an external collaborator's concern.
func NewAccount(
	walletID string, index uint32, label, extendedPublicKey string, gapLimit uint32,
) (*Account, error) {
	if len(extendedPublicKey) <= 0 {
		return nil, ErrMissingExtendedPubKey
	}
	if gapLimit < 1 {
		return nil, ErrInvalidGapLimit
	}

	return &Account{
		ID:                    uuid.New().String(),
		WalletID:              walletID,
		Index:                 index,
		Label:                 label,
		ExtendedPublicKey:     extendedPublicKey,
		GapLimit:              gapLimit,
		LastUsedExternalIndex: -1,
		LastUsedInternalIndex: -1,
		TxIDs:                 []string{},
		CreatedAt:             time.Now(),
	}, nil
}

// DerivationPath returns the account-level BIP44 path, computed from the
// network's coin type rather than stored.
func (a *Account) DerivationPath(network Network) string {
	return fmt.Sprintf("m/%d'/%d'/%d'", Bip44Purpose, network.CoinType(), a.Index)
}

// AddressDerivationPath returns the full path of the address at the given
// chain and index under this account.
func (a *Account) AddressDerivationPath(network Network, chain int, index uint32) string {
	return fmt.Sprintf("%s/%d/%d", a.DerivationPath(network), chain, index)
}
