package hdwallet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/pkg/hdwallet"
)

// BIP32 test vector 1 keys, valid for structural derivation on any network.
const (
	testXPub = "xpub661MyMwAqRbcFtXgS5sYJABqqG9YLmC4Q1Rdap9gSE8NqtwybGhePY2gZ29ESFjqJoCu1Rupje8YtGqsefD265TMg7usUDFdp6W1EGMcet8"
	testXPrv = "xprv9s21ZrQH143K3QTDL4LXw2F7HEK3wJUD2nW2nRk4stbPy6cq3jPPqjiChkVvvNKmPGJxWUtg6LnF5kejMRNNU3TGtRBeJgk33yuGBxrMPHi"
)

func TestDeriveAddress(t *testing.T) {
	t.Parallel()

	address, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: testXPub,
		Chain:             hdwallet.ExternalChain,
		Index:             0,
		Params:            hdwallet.MainNetParams,
	})
	require.NoError(t, err)
	require.True(t, hdwallet.IsValidAddress(address, hdwallet.MainNetParams))

	// derivation is deterministic
	again, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: testXPub,
		Chain:             hdwallet.ExternalChain,
		Index:             0,
		Params:            hdwallet.MainNetParams,
	})
	require.NoError(t, err)
	require.Equal(t, address, again)

	// distinct indices and chains give distinct addresses
	next, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: testXPub,
		Chain:             hdwallet.ExternalChain,
		Index:             1,
		Params:            hdwallet.MainNetParams,
	})
	require.NoError(t, err)
	require.NotEqual(t, address, next)

	change, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: testXPub,
		Chain:             hdwallet.InternalChain,
		Index:             0,
		Params:            hdwallet.MainNetParams,
	})
	require.NoError(t, err)
	require.NotEqual(t, address, change)

	// the test networks share the key but not the encoding
	testnet, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: testXPub,
		Chain:             hdwallet.ExternalChain,
		Index:             0,
		Params:            hdwallet.TestNetParams,
	})
	require.NoError(t, err)
	require.NotEqual(t, address, testnet)
	require.True(t, hdwallet.IsValidAddress(testnet, hdwallet.TestNetParams))
}

func TestFailingDeriveAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		opts          hdwallet.DeriveAddressOpts
		expectedError error
	}{
		{
			name: "empty_key",
			opts: hdwallet.DeriveAddressOpts{
				ExtendedPublicKey: "",
				Chain:             hdwallet.ExternalChain,
				Params:            hdwallet.MainNetParams,
			},
			expectedError: hdwallet.ErrInvalidExtendedKey,
		},
		{
			name: "malformed_key",
			opts: hdwallet.DeriveAddressOpts{
				ExtendedPublicKey: "notanextendedkey",
				Chain:             hdwallet.ExternalChain,
				Params:            hdwallet.MainNetParams,
			},
			expectedError: hdwallet.ErrInvalidExtendedKey,
		},
		{
			name: "private_key",
			opts: hdwallet.DeriveAddressOpts{
				ExtendedPublicKey: testXPrv,
				Chain:             hdwallet.ExternalChain,
				Params:            hdwallet.MainNetParams,
			},
			expectedError: hdwallet.ErrPrivateExtendedKey,
		},
		{
			name: "invalid_chain",
			opts: hdwallet.DeriveAddressOpts{
				ExtendedPublicKey: testXPub,
				Chain:             2,
				Params:            hdwallet.MainNetParams,
			},
			expectedError: hdwallet.ErrInvalidChain,
		},
		{
			name: "hardened_index",
			opts: hdwallet.DeriveAddressOpts{
				ExtendedPublicKey: testXPub,
				Chain:             hdwallet.ExternalChain,
				Index:             hdwallet.HardenedKeyStart,
				Params:            hdwallet.MainNetParams,
			},
			expectedError: hdwallet.ErrIndexOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address, err := hdwallet.DeriveAddress(tt.opts)
			require.Empty(t, address)
			require.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address string
		params  hdwallet.Params
		valid   bool
	}{
		{
			name:    "valid_mainnet",
			address: "XnUvRBZcyQpecoEpHUuQKZGRSuGynWhzBY",
			params:  hdwallet.MainNetParams,
			valid:   true,
		},
		{
			name:    "valid_testnet",
			address: "yPnZYzLCvLcbEBLyDHyLWY1s51iyEFS4LU",
			params:  hdwallet.TestNetParams,
			valid:   true,
		},
		{
			name:    "wrong_prefix",
			address: "yPnZYzLCvLcbEBLyDHyLWY1s51iyEFS4LU",
			params:  hdwallet.MainNetParams,
			valid:   false,
		},
		{
			name:    "too_short",
			address: "Xshort",
			params:  hdwallet.MainNetParams,
			valid:   false,
		},
		{
			name:    "too_long",
			address: "XnUvRBZcyQpecoEpHUuQKZGRSuGynWhzBYqqqqqq",
			params:  hdwallet.MainNetParams,
			valid:   false,
		},
		{
			name:    "non_base58_character",
			address: "XnUvRBZcyQpecoEpHUuQKZGRSuGynWh0BY",
			params:  hdwallet.MainNetParams,
			valid:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.valid, hdwallet.IsValidAddress(tt.address, tt.params))
		})
	}
}
