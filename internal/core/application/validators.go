package application

import (
	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/pkg/hdwallet"
)

// ValidateAddress checks the structural correctness of an address for the
// given network before it may enter the store: length, base58 character set
// and network prefix. Checksum verification stays with the chain backend.
func ValidateAddress(address string, network domain.Network) error {
	if !hdwallet.IsValidAddress(address, networkParams(network)) {
		return domain.ErrInvalidAddress
	}
	return nil
}

func networkParams(network domain.Network) hdwallet.Params {
	if network == domain.NetworkMainnet {
		return hdwallet.MainNetParams
	}
	return hdwallet.TestNetParams
}
