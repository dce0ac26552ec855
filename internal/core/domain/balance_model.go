package domain

import "time"

// Balance aggregates the satoshi-denominated totals of one owner, either a
// single watched address or a whole account or wallet.
//
// The five component fields and Total are all sourced independently from the
// sync engine. Total is authoritative as reported and is never recomputed
// from the components, since the engine may count confirmations differently.
type Balance struct {
	Confirmed      uint64
	Pending        uint64
	InstantLocked  uint64
	Mempool        uint64
	MempoolInstant uint64
	Total          uint64
	UpdatedAt      time.Time
}

// NewBalance returns a zero-valued Balance.
func NewBalance() *Balance {
	return &Balance{}
}
