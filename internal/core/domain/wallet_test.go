package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/internal/core/domain"
)

var (
	encryptedSeed = []byte("ciphertext")
	seedHash      = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func TestNewWallet(t *testing.T) {
	t.Parallel()

	w, err := domain.NewWallet("main", domain.NetworkMainnet, encryptedSeed, seedHash)
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NotEmpty(t, w.ID)
	require.Equal(t, "main", w.Name)
	require.Equal(t, domain.NetworkMainnet, w.Network)
	require.Equal(t, encryptedSeed, w.EncryptedSeed)
	require.Equal(t, seedHash, w.SeedHash)
	require.False(t, w.CreatedAt.IsZero())
	require.Nil(t, w.LastSyncedAt)
	require.False(t, w.HasSynced())
}

func TestFailingNewWallet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		walletName    string
		network       domain.Network
		encryptedSeed []byte
		seedHash      string
		expectedError error
	}{
		{
			name:          "missing_name",
			walletName:    "",
			network:       domain.NetworkMainnet,
			encryptedSeed: encryptedSeed,
			seedHash:      seedHash,
			expectedError: domain.ErrInvalidWalletName,
		},
		{
			name:          "invalid_network",
			walletName:    "main",
			network:       domain.Network("moonnet"),
			encryptedSeed: encryptedSeed,
			seedHash:      seedHash,
			expectedError: domain.ErrInvalidNetwork,
		},
		{
			name:          "missing_encrypted_seed",
			walletName:    "main",
			network:       domain.NetworkTestnet,
			encryptedSeed: nil,
			seedHash:      seedHash,
			expectedError: domain.ErrMissingEncryptedSeed,
		},
		{
			name:          "missing_seed_hash",
			walletName:    "main",
			network:       domain.NetworkTestnet,
			encryptedSeed: encryptedSeed,
			seedHash:      "",
			expectedError: domain.ErrMissingSeedHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := domain.NewWallet(tt.walletName, tt.network, tt.encryptedSeed, tt.seedHash)
			require.Nil(t, w)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestWalletMarkSynced(t *testing.T) {
	t.Parallel()

	w, err := domain.NewWallet("main", domain.NetworkMainnet, encryptedSeed, seedHash)
	require.NoError(t, err)

	at := time.Now()
	w.MarkSynced(at)
	require.True(t, w.HasSynced())
	require.Equal(t, at, *w.LastSyncedAt)
}

func TestWalletCoinType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		network  domain.Network
		coinType int
	}{
		{domain.NetworkMainnet, 5},
		{domain.NetworkTestnet, 1},
		{domain.NetworkDevnet, 1},
		{domain.NetworkRegtest, 1},
	}

	for _, tt := range tests {
		w, err := domain.NewWallet("main", tt.network, encryptedSeed, seedHash)
		require.NoError(t, err)
		require.Equal(t, tt.coinType, w.CoinType())
	}
}
