package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/internal/metrics"
)

// SyncListener consumes the notifications of the external sync engine and
// applies them to the data model. Events are handled one at a time on the
// goroutine running Listen, and each mutation additionally takes the wallet
// lock shared with WalletService; combined they realize the single logical
// writer per wallet. The allocator and the aggregator run as synchronous
// continuations inside the same storage transaction as the activity update,
// so the gap-limit invariant is restored before the next event is handled.
type SyncListener struct {
	dbManager ports.DbManager
	engine    ports.SyncEngine
	svc       *WalletService
}

func NewSyncListener(
	dbManager ports.DbManager,
	engine ports.SyncEngine,
	svc *WalletService,
) *SyncListener {
	return &SyncListener{
		dbManager: dbManager,
		engine:    engine,
		svc:       svc,
	}
}

// Listen blocks consuming engine events until the engine emits a quit event
// or closes its channel.
func (l *SyncListener) Listen() {
	for event := range l.engine.Events() {
		metrics.SyncEventsTotal.WithLabelValues(event.Type().String()).Inc()

		switch e := event.(type) {
		case ports.ActivityEvent:
			if err := l.handleActivity(e); err != nil {
				log.WithError(err).Warnf("trying to apply activity for address %s", e.Address)
			}
		case ports.SyncProgressEvent:
			if err := l.handleProgress(e); err != nil {
				log.WithError(err).Warnf("trying to apply sync progress for wallet %s", e.WalletID)
			}
		case ports.QuitEvent:
			log.Debug("sync listener stopped")
			return
		}
	}
}

func (l *SyncListener) handleActivity(event ports.ActivityEvent) error {
	ctx := context.Background()

	// resolve ownership first so the wallet lock can be taken before the
	// write transaction starts
	address, err := l.dbManager.AddressRepository().GetAddress(ctx, event.Address)
	if err != nil {
		if errors.Is(err, domain.ErrAddressNotFound) {
			metrics.UnknownAddressTotal.Inc()
			return fmt.Errorf("%w: %s", domain.ErrAddressNotWatched, event.Address)
		}
		return err
	}

	unlock := l.svc.locker.lock(address.WalletID)
	defer unlock()

	res, err := l.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			if err := l.dbManager.AddressRepository().UpdateAddress(
				ctx, event.Address,
				func(a *domain.WatchedAddress) (*domain.WatchedAddress, error) {
					a.RecordActivity(event.TxID, event.UtxoOutpoint, event.BalanceSnapshot)
					return a, nil
				},
			); err != nil {
				return nil, err
			}

			if len(event.TxID) > 0 {
				if err := l.dbManager.AccountRepository().UpdateAccount(
					ctx, address.AccountID,
					func(a *domain.Account) (*domain.Account, error) {
						a.AddTxID(event.TxID)
						a.MarkIndexUsed(address.Chain(), address.Index)
						return a, nil
					},
				); err != nil {
					return nil, err
				}
			}

			// a previously unused address may just have become used, so the
			// chain must grow before the next notification is handled
			next, derived, err := l.svc.allocator.EnsureAddressAvailable(
				ctx, address.AccountID, address.Chain(),
			)
			if err != nil {
				return nil, err
			}

			if _, err := l.svc.aggregator.AccountBalance(ctx, address.AccountID); err != nil {
				return nil, err
			}

			if derived {
				return next, nil
			}
			return nil, nil
		},
	)
	if err != nil {
		return err
	}

	if res != nil {
		derived := res.(*domain.WatchedAddress)
		metrics.AddressesDerivedTotal.Inc()
		if err := l.svc.watcher.watch(ctx, derived.Address); err != nil {
			metrics.WatchFailuresTotal.Inc()
			log.WithError(err).Warnf("trying to request watch for address %s", derived.Address)
		}
	}
	return nil
}

func (l *SyncListener) handleProgress(event ports.SyncProgressEvent) error {
	ctx := context.Background()

	// the engine must only report on wallets stored on this device; an
	// unknown wallet id means the protocol desynchronized and no sync state
	// may be written for it
	if _, err := l.dbManager.WalletRepository().GetWallet(ctx, event.WalletID); err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			metrics.UnknownWalletTotal.Inc()
		}
		return err
	}

	unlock := l.svc.locker.lock(event.WalletID)
	defer unlock()

	_, err := l.dbManager.RunTransaction(
		ctx, false,
		func(ctx context.Context) (interface{}, error) {
			prev, err := l.dbManager.SyncStateRepository().GetSyncState(ctx, event.WalletID)
			if err != nil && !errors.Is(err, domain.ErrSyncStateNotFound) {
				return nil, err
			}

			next := domain.NextSyncState(
				event.WalletID, prev,
				event.CurrentHeight, event.TargetHeight,
				event.Status, event.Message,
			)
			if err := l.dbManager.SyncStateRepository().PutSyncState(ctx, next); err != nil {
				return nil, err
			}

			if event.Status == domain.StatusSynced {
				if err := l.dbManager.WalletRepository().UpdateWallet(
					ctx, event.WalletID,
					func(w *domain.Wallet) (*domain.Wallet, error) {
						w.MarkSynced(time.Now())
						return w, nil
					},
				); err != nil {
					return nil, err
				}
			}
			return nil, nil
		},
	)
	return err
}
