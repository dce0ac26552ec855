package ports

import "github.com/dashwallet/walletd/internal/core/domain"

// AddressDeriver is the boundary toward the key-derivation collaborator.
// Implementations derive the plain address string at chain/index under an
// account-level extended public key. No private key material ever crosses
// this boundary.
type AddressDeriver interface {
	DeriveAddress(
		extendedPublicKey string,
		chain int,
		index uint32,
		network domain.Network,
	) (string, error)
}
