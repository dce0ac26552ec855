package dbbadger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
)

type txContextKey struct{}
type syncTxContextKey struct{}

var (
	txKey     = txContextKey{}
	syncTxKey = syncTxContextKey{}
)

// DbManager holds all the badgerhold stores in a single data structure.
// Wallets, accounts and watched addresses share one store; sync states get
// a dedicated store because their write churn follows the chain tip.
type DbManager struct {
	Store     *badgerhold.Store
	SyncStore *badgerhold.Store

	walletRepository    domain.WalletRepository
	accountRepository   domain.AccountRepository
	addressRepository   domain.AddressRepository
	syncStateRepository domain.SyncStateRepository
}

// NewDbManager opens (or creates if not exists) the badger stores on disk.
// It expects a base data dir and an optional logger.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	walletDb, err := createDb(filepath.Join(baseDbDir, "wallet"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening wallet db: %w", err)
	}

	syncDb, err := createDb(filepath.Join(baseDbDir, "sync"), logger)
	if err != nil {
		return nil, fmt.Errorf("opening sync db: %w", err)
	}

	db := &DbManager{
		Store:     walletDb,
		SyncStore: syncDb,
	}
	db.walletRepository = NewWalletRepositoryImpl(db)
	db.accountRepository = NewAccountRepositoryImpl(db)
	db.addressRepository = NewAddressRepositoryImpl(db)
	db.syncStateRepository = NewSyncStateRepositoryImpl(db)
	return db, nil
}

func (d *DbManager) WalletRepository() domain.WalletRepository {
	return d.walletRepository
}

func (d *DbManager) AccountRepository() domain.AccountRepository {
	return d.accountRepository
}

func (d *DbManager) AddressRepository() domain.AddressRepository {
	return d.addressRepository
}

func (d *DbManager) SyncStateRepository() domain.SyncStateRepository {
	return d.syncStateRepository
}

func (d *DbManager) Close() error {
	if err := d.Store.Close(); err != nil {
		return err
	}
	return d.SyncStore.Close()
}

// RunTransaction runs the handler with open transactions on both stores
// carried in the context. Both transactions commit only if the handler
// succeeds; the two stores commit independently of each other.
func (d *DbManager) RunTransaction(
	ctx context.Context,
	readOnly bool,
	handler func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	tx := d.Store.Badger().NewTransaction(!readOnly)
	defer tx.Discard()
	syncTx := d.SyncStore.Badger().NewTransaction(!readOnly)
	defer syncTx.Discard()

	ctx = context.WithValue(ctx, txKey, tx)
	ctx = context.WithValue(ctx, syncTxKey, syncTx)

	res, err := handler(ctx)
	if err != nil {
		return nil, err
	}

	if !readOnly {
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		if err := syncTx.Commit(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

var _ ports.DbManager = (*DbManager)(nil)

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (db *badgerhold.Store, err error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	db, err = badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})

	return
}
