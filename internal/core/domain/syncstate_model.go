package domain

import "time"

const (
	StatusIdle SyncStatus = iota
	StatusConnecting
	StatusDownloading
	StatusScanning
	StatusSynced
	StatusError
)

// SyncStatus is the coarse progress tag reported by the sync engine.
type SyncStatus int

func (s SyncStatus) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConnecting:
		return "connecting"
	case StatusDownloading:
		return "downloading"
	case StatusScanning:
		return "scanning"
	case StatusSynced:
		return "synced"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// SyncState is the per-wallet progress record of the external sync engine.
// One instance exists per wallet from creation on and is overwritten
// wholesale on each progress event, never mutated field by field.
type SyncState struct {
	WalletID            string
	CurrentHeight       uint64
	TargetHeight        uint64
	Progress            float64
	Status              SyncStatus
	LastError           string
	StartedAt           time.Time
	EstimatedCompletion *time.Time
}

// NewSyncState returns the idle sync state a wallet starts its life with.
func NewSyncState(walletID string) *SyncState {
	return &SyncState{
		WalletID:  walletID,
		Status:    StatusIdle,
		StartedAt: time.Now(),
	}
}

// NextSyncState builds the replacement state for a progress event. The
// fractional progress and the completion estimate are computed from the
// reported heights and the time elapsed since the previous state started.
func NextSyncState(
	walletID string, prev *SyncState, currentHeight, targetHeight uint64,
	status SyncStatus, message string,
) *SyncState {
	startedAt := time.Now()
	if prev != nil {
		startedAt = prev.StartedAt
	}

	progress := 0.0
	if targetHeight > 0 {
		progress = float64(currentHeight) / float64(targetHeight)
		if progress > 1 {
			progress = 1
		}
	}
	if status == StatusSynced {
		progress = 1
	}

	next := &SyncState{
		WalletID:      walletID,
		CurrentHeight: currentHeight,
		TargetHeight:  targetHeight,
		Progress:      progress,
		Status:        status,
		LastError:     message,
		StartedAt:     startedAt,
	}

	if progress > 0 && progress < 1 {
		elapsed := time.Since(startedAt)
		remaining := time.Duration(float64(elapsed) * (1 - progress) / progress)
		eta := time.Now().Add(remaining)
		next.EstimatedCompletion = &eta
	}

	return next
}
