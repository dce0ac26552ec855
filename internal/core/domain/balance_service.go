package domain

import "time"

// Available returns the spendable portion of the balance: confirmed funds
// plus anything locked by the instant-finality mechanism, on chain or still
// in the mempool. The sum saturates instead of wrapping.
func (b *Balance) Available() uint64 {
	return saturatingAdd(saturatingAdd(b.Confirmed, b.InstantLocked), b.MempoolInstant)
}

// Unconfirmed returns the pending, non-instant portion of the balance.
func (b *Balance) Unconfirmed() uint64 {
	return b.Pending
}

// Update replaces all component fields with the given snapshot in place, so
// that references to the Balance held elsewhere keep observing the entity.
func (b *Balance) Update(snapshot Balance) {
	b.Confirmed = snapshot.Confirmed
	b.Pending = snapshot.Pending
	b.InstantLocked = snapshot.InstantLocked
	b.Mempool = snapshot.Mempool
	b.MempoolInstant = snapshot.MempoolInstant
	b.Total = snapshot.Total
	b.UpdatedAt = time.Now()
}

// Add accumulates the component fields of the other balance into the current
// one. It fails with ErrBalanceOverflow before touching any field if one of
// the sums would wrap.
func (b *Balance) Add(other Balance) error {
	fields := [][2]uint64{
		{b.Confirmed, other.Confirmed},
		{b.Pending, other.Pending},
		{b.InstantLocked, other.InstantLocked},
		{b.Mempool, other.Mempool},
		{b.MempoolInstant, other.MempoolInstant},
		{b.Total, other.Total},
	}
	for _, f := range fields {
		if _, ok := checkedAdd(f[0], f[1]); !ok {
			return ErrBalanceOverflow
		}
	}

	b.Confirmed += other.Confirmed
	b.Pending += other.Pending
	b.InstantLocked += other.InstantLocked
	b.Mempool += other.Mempool
	b.MempoolInstant += other.MempoolInstant
	b.Total += other.Total
	return nil
}

func checkedAdd(a, b uint64) (uint64, bool) {
	sum := a + b
	if sum < a {
		return 0, false
	}
	return sum, true
}

func saturatingAdd(a, b uint64) uint64 {
	if sum, ok := checkedAdd(a, b); ok {
		return sum
	}
	return ^uint64(0)
}
