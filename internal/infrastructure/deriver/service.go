package deriver

import (
	"errors"
	"fmt"

	"github.com/dashwallet/walletd/internal/core/domain"
	"github.com/dashwallet/walletd/internal/core/ports"
	"github.com/dashwallet/walletd/pkg/hdwallet"
)

type service struct{}

// NewService returns the default AddressDeriver implementation, deriving
// P2PKH addresses by non-hardened child derivation under the account-level
// extended public key.
func NewService() ports.AddressDeriver {
	return &service{}
}

func (s *service) DeriveAddress(
	extendedPublicKey string, chain int, index uint32, network domain.Network,
) (string, error) {
	params := hdwallet.TestNetParams
	if network == domain.NetworkMainnet {
		params = hdwallet.MainNetParams
	}

	address, err := hdwallet.DeriveAddress(hdwallet.DeriveAddressOpts{
		ExtendedPublicKey: extendedPublicKey,
		Chain:             chain,
		Index:             index,
		Params:            params,
	})
	if err != nil {
		switch {
		case errors.Is(err, hdwallet.ErrInvalidExtendedKey),
			errors.Is(err, hdwallet.ErrPrivateExtendedKey):
			return "", fmt.Errorf("%w: %s", domain.ErrMalformedExtendedKey, err)
		case errors.Is(err, hdwallet.ErrIndexOutOfRange):
			return "", domain.ErrAddressIndexOverflow
		}
		return "", err
	}
	return address, nil
}
