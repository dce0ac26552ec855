package application_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/internal/core/application"
	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/internal/infrastructure/storage/db/inmemory"
	"github.com/dashwallet/walletd/internal/infrastructure/syncengine"
)

const testXPub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"

// base58 letters only, so the derived strings pass address validation
const letters = "abcdefghijkmnopqrstuvwxyz"

// fakeDeriver derives structurally valid mainnet addresses that encode chain
// and index, keeping derivation deterministic without key material.
type fakeDeriver struct{}

func (fakeDeriver) DeriveAddress(
	_ string, chain int, index uint32, _ domain.Network,
) (string, error) {
	i := int(index)
	suffix := []byte{letters[chain], letters[(i/25)%25], letters[i%25]}
	return "X" + strings.Repeat("m", 22) + string(suffix), nil
}

// failingDeriver rejects every derivation, standing in for a collaborator
// fed a corrupted extended public key.
type failingDeriver struct{}

func (failingDeriver) DeriveAddress(
	string, int, uint32, domain.Network,
) (string, error) {
	return "", domain.ErrMalformedExtendedKey
}

func ctx() context.Context {
	return context.Background()
}

func newTestEnv() (*application.WalletService, ports.DbManager, *syncengine.Manual) {
	db := inmemory.NewDbManager()
	engine := syncengine.NewManual()
	svc := application.NewWalletService(db, fakeDeriver{}, engine)
	return svc, db, engine
}

func createTestWallet(
	t *testing.T, svc *application.WalletService, name string,
) *domain.Wallet {
	t.Helper()

	wallet, err := svc.CreateWallet(
		ctx(), name, domain.NetworkMainnet, []byte("ciphertext"), "hash-"+name,
	)
	require.NoError(t, err)
	return wallet
}

func createTestAccount(
	t *testing.T, svc *application.WalletService, walletID string, gapLimit uint32,
) *domain.Account {
	t.Helper()

	account, err := svc.CreateAccount(ctx(), walletID, "main", testXPub, gapLimit)
	require.NoError(t, err)
	return account
}
