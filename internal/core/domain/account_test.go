package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/internal/core/domain"
)

const accountXPub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"

func TestNewAccount(t *testing.T) {
	t.Parallel()

	a, err := domain.NewAccount("wallet-id", 0, "savings", accountXPub, domain.DefaultGapLimit)
	require.NoError(t, err)
	require.NotNil(t, a)
	require.NotEmpty(t, a.ID)
	require.Equal(t, "wallet-id", a.WalletID)
	require.Equal(t, "savings", a.Label)
	require.Equal(t, uint32(domain.DefaultGapLimit), a.GapLimit)
	require.Equal(t, int64(-1), a.LastUsedExternalIndex)
	require.Equal(t, int64(-1), a.LastUsedInternalIndex)
	require.Empty(t, a.TxIDs)
	require.Nil(t, a.Balance)
}

func TestFailingNewAccount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		xpub          string
		gapLimit      uint32
		expectedError error
	}{
		{
			name:          "missing_xpub",
			xpub:          "",
			gapLimit:      domain.DefaultGapLimit,
			expectedError: domain.ErrMissingExtendedPubKey,
		},
		{
			name:          "invalid_gap_limit",
			xpub:          accountXPub,
			gapLimit:      0,
			expectedError: domain.ErrInvalidGapLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := domain.NewAccount("wallet-id", 0, "", tt.xpub, tt.gapLimit)
			require.Nil(t, a)
			require.EqualError(t, err, tt.expectedError.Error())
		})
	}
}

func TestAccountDerivationPath(t *testing.T) {
	t.Parallel()

	a, err := domain.NewAccount("wallet-id", 2, "", accountXPub, domain.DefaultGapLimit)
	require.NoError(t, err)

	require.Equal(t, "m/44'/5'/2'", a.DerivationPath(domain.NetworkMainnet))
	require.Equal(t, "m/44'/1'/2'", a.DerivationPath(domain.NetworkTestnet))
	require.Equal(
		t, "m/44'/5'/2'/0/7",
		a.AddressDerivationPath(domain.NetworkMainnet, domain.ExternalChain, 7),
	)
	require.Equal(
		t, "m/44'/1'/2'/1/0",
		a.AddressDerivationPath(domain.NetworkDevnet, domain.InternalChain, 0),
	)
}

func TestAccountMarkIndexUsed(t *testing.T) {
	t.Parallel()

	a, err := domain.NewAccount("wallet-id", 0, "", accountXPub, domain.DefaultGapLimit)
	require.NoError(t, err)

	a.MarkIndexUsed(domain.ExternalChain, 3)
	require.Equal(t, int64(3), a.LastUsedIndex(domain.ExternalChain))
	require.Equal(t, int64(-1), a.LastUsedIndex(domain.InternalChain))

	// lower indices never move the watermark backwards
	a.MarkIndexUsed(domain.ExternalChain, 1)
	require.Equal(t, int64(3), a.LastUsedIndex(domain.ExternalChain))

	a.MarkIndexUsed(domain.InternalChain, 0)
	require.Equal(t, int64(0), a.LastUsedIndex(domain.InternalChain))
	require.Equal(t, int64(3), a.LastUsedIndex(domain.ExternalChain))
}

func TestAccountAddTxID(t *testing.T) {
	t.Parallel()

	a, err := domain.NewAccount("wallet-id", 0, "", accountXPub, domain.DefaultGapLimit)
	require.NoError(t, err)

	require.True(t, a.AddTxID("tx1"))
	require.False(t, a.AddTxID("tx1"))
	require.False(t, a.AddTxID(""))
	require.True(t, a.AddTxID("tx2"))
	require.Len(t, a.TxIDs, 2)
	require.True(t, a.HasTxID("tx1"))
	require.False(t, a.HasTxID("tx3"))
}
