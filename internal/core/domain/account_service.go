package domain

// LastUsedIndex returns the highest used address index on the given chain,
// -1 if no address on that chain has observed a transaction yet.
func (a *Account) LastUsedIndex(chain int) int64 {
	if chain == InternalChain {
		return a.LastUsedInternalIndex
	}
	return a.LastUsedExternalIndex
}

// MarkIndexUsed raises the last used index of the given chain if the
// provided index is beyond it.
func (a *Account) MarkIndexUsed(chain int, index uint32) {
	if chain == InternalChain {
		if int64(index) > a.LastUsedInternalIndex {
			a.LastUsedInternalIndex = int64(index)
		}
		return
	}
	if int64(index) > a.LastUsedExternalIndex {
		a.LastUsedExternalIndex = int64(index)
	}
}

// HasTxID returns whether the transaction is already known to the account.
func (a *Account) HasTxID(txid string) bool {
	for _, id := range a.TxIDs {
		if id == txid {
			return true
		}
	}
	return false
}

// AddTxID appends the transaction id to the account's known set if not
// already present. It returns whether the set changed.
func (a *Account) AddTxID(txid string) bool {
	if len(txid) <= 0 || a.HasTxID(txid) {
		return false
	}
	a.TxIDs = append(a.TxIDs, txid)
	return true
}
