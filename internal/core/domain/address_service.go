package domain

import "time"

// Chain returns the BIP44 chain index the address belongs to.
func (w *WatchedAddress) Chain() int {
	if w.IsChange {
		return InternalChain
	}
	return ExternalChain
}

// IsUsed returns whether the address has observed at least one transaction.
// Unused addresses drive both the gap-limit check and the receive-address
// selection.
func (w *WatchedAddress) IsUsed() bool {
	return len(w.TxIDs) > 0
}

// HasTxID returns whether the transaction is already associated with the
// address.
func (w *WatchedAddress) HasTxID(txid string) bool {
	for _, id := range w.TxIDs {
		if id == txid {
			return true
		}
	}
	return false
}

// HasUtxo returns whether the outpoint is already associated with the
// address.
func (w *WatchedAddress) HasUtxo(outpoint string) bool {
	for _, op := range w.Utxos {
		if op == outpoint {
			return true
		}
	}
	return false
}

// AddTxID appends the transaction id if not already present and reports
// whether the set changed. Repeated notifications for the same id are no-ops.
func (w *WatchedAddress) AddTxID(txid string) bool {
	if len(txid) <= 0 || w.HasTxID(txid) {
		return false
	}
	w.TxIDs = append(w.TxIDs, txid)
	return true
}

// AddUtxo appends the outpoint if not already present and reports whether
// the set changed.
func (w *WatchedAddress) AddUtxo(outpoint string) bool {
	if len(outpoint) <= 0 || w.HasUtxo(outpoint) {
		return false
	}
	w.Utxos = append(w.Utxos, outpoint)
	return true
}

// RecordActivity applies one notification from the sync engine to the
// address: it associates the optional transaction id and outpoint, replaces
// the balance with the reported snapshot in place and stamps the activity
// time. It returns whether the transaction-id set changed, which callers use
// to know if the address just became used.
func (w *WatchedAddress) RecordActivity(txid, outpoint string, snapshot Balance) bool {
	becameUsed := w.AddTxID(txid) && len(w.TxIDs) == 1
	w.AddUtxo(outpoint)
	w.Balance.Update(snapshot)

	now := time.Now()
	w.LastActivityAt = &now
	return becameUsed
}
