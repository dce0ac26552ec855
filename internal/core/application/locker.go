package application

import "sync"

// walletLocker serializes all mutations of one wallet's entities behind a
// single mutex per wallet id, so that user-triggered operations and the
// sync listener never interleave on the same account or address set.
type walletLocker struct {
	mtx   sync.Mutex
	locks map[string]*sync.Mutex
}

func newWalletLocker() *walletLocker {
	return &walletLocker{locks: map[string]*sync.Mutex{}}
}

// lock acquires the wallet's mutex and returns the release function.
func (l *walletLocker) lock(walletID string) func() {
	l.mtx.Lock()
	m, ok := l.locks[walletID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[walletID] = m
	}
	l.mtx.Unlock()

	m.Lock()
	return m.Unlock
}
