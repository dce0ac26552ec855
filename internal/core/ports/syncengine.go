package ports

import (
	"context"

	"github.com/dashwallet/walletd/internal/core/domain"
)

const (
	ActivityEventType EventType = iota
	SyncProgressEventType
	QuitEventType
)

// EventType discriminates the notifications produced by the sync engine.
type EventType int

func (et EventType) String() string {
	switch et {
	case ActivityEventType:
		return "ActivityEvent"
	case SyncProgressEventType:
		return "SyncProgressEvent"
	case QuitEventType:
		return "QuitEvent"
	default:
		return "Unknown"
	}
}

// Event is emitted by the sync engine through its event channel.
type Event interface {
	Type() EventType
}

// ActivityEvent reports that a watched address observed a new transaction or
// outpoint, or that its confirmation state changed. TxID and UtxoOutpoint
// may each be empty; the balance snapshot is always authoritative.
type ActivityEvent struct {
	Address         string
	TxID            string
	UtxoOutpoint    string
	BalanceSnapshot domain.Balance
}

func (e ActivityEvent) Type() EventType {
	return ActivityEventType
}

// SyncProgressEvent reports the chain-sync progress of one wallet.
type SyncProgressEvent struct {
	WalletID      string
	CurrentHeight uint64
	TargetHeight  uint64
	Status        domain.SyncStatus
	Message       string
}

func (e SyncProgressEvent) Type() EventType {
	return SyncProgressEventType
}

// QuitEvent signals that the engine stopped producing events.
type QuitEvent struct{}

func (e QuitEvent) Type() EventType {
	return QuitEventType
}

// SyncEngine is the boundary toward the external blockchain synchronization
// engine. The core requests addresses to be monitored and consumes the
// engine's notifications; everything else about syncing is the engine's
// concern.
type SyncEngine interface {
	// WatchAddress asks the engine to begin monitoring the address.
	WatchAddress(ctx context.Context, address string) error
	// Events returns the channel the engine emits its notifications on.
	Events() <-chan Event
}
