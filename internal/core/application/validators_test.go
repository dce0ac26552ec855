package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dashwallet/walletd/internal/core/application"
	"github.com/dashwallet/walletd/internal/core/domain"
)

func TestValidateAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		address       string
		network       domain.Network
		expectedError error
	}{
		{
			name:    "valid_mainnet",
			address: "XnUvRBZcyQpecoEpHUuQKZGRSuGynWhzBY",
			network: domain.NetworkMainnet,
		},
		{
			name:    "valid_testnet",
			address: "yPnZYzLCvLcbEBLyDHyLWY1s51iyEFS4LU",
			network: domain.NetworkTestnet,
		},
		{
			name:    "valid_devnet",
			address: "yPnZYzLCvLcbEBLyDHyLWY1s51iyEFS4LU",
			network: domain.NetworkDevnet,
		},
		{
			name:          "wrong_network_prefix",
			address:       "yPnZYzLCvLcbEBLyDHyLWY1s51iyEFS4LU",
			network:       domain.NetworkMainnet,
			expectedError: domain.ErrInvalidAddress,
		},
		{
			name:          "malformed",
			address:       "notanaddress",
			network:       domain.NetworkMainnet,
			expectedError: domain.ErrInvalidAddress,
		},
		{
			name:          "empty",
			address:       "",
			network:       domain.NetworkTestnet,
			expectedError: domain.ErrInvalidAddress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := application.ValidateAddress(tt.address, tt.network)
			if tt.expectedError != nil {
				require.EqualError(t, err, tt.expectedError.Error())
			} else {
				require.NoError(t, err)
			}
		})
	}
}
