package domain

import "time"

// MarkSynced records the time of the last completed sync round.
func (w *Wallet) MarkSynced(at time.Time) {
	w.LastSyncedAt = &at
}

// HasSynced returns whether the wallet has ever completed a sync round.
func (w *Wallet) HasSynced() bool {
	return w.LastSyncedAt != nil
}

// CoinType returns the BIP44 coin type all accounts of the wallet derive
// under.
func (w *Wallet) CoinType() int {
	return w.Network.CoinType()
}
