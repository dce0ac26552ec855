package domain

import "time"

// WatchedAddress is one derived address whose activity the sync engine
// monitors on the wallet's behalf. It is created by the allocator together
// with a zero-valued Balance and lives as long as its owning account.
type WatchedAddress struct {
	Address        string
	AccountID      string
	WalletID       string
	Label          string
	Index          uint32
	IsChange       bool
	DerivationPath string
	CreatedAt      time.Time
	LastActivityAt *time.Time
	TxIDs          []string
	Utxos          []string
	Balance        Balance
}

// NewWatchedAddress returns a WatchedAddress owned by the given account,
// with an empty transaction set and a zero balance.
func NewWatchedAddress(
	address, accountID, walletID, derivationPath string,
	index uint32, isChange bool,
) *WatchedAddress {
	return &WatchedAddress{
		Address:        address,
		AccountID:      accountID,
		WalletID:       walletID,
		Index:          index,
		IsChange:       isChange,
		DerivationPath: derivationPath,
		CreatedAt:      time.Now(),
		TxIDs:          []string{},
		Utxos:          []string{},
	}
}
