package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the root entity of the hierarchy. It holds one encrypted seed,
// opaque to this core, and owns an ordered set of accounts stored separately.
// The seed hash is supplied by the collaborator that creates wallets and is
// used only to detect duplicate imports on the same device.
type Wallet struct {
	ID            string
	Name          string
	Network       Network
	EncryptedSeed []byte
	SeedHash      string
	CreatedAt     time.Time
	LastSyncedAt  *time.Time
}

// NewWallet returns a new Wallet for the given network. The encrypted seed
// and its content hash must be provided by the caller, no key material is
// ever derived or inspected here.
func NewWallet(
	name string, network Network, encryptedSeed []byte, seedHash string,
) (*Wallet, error) {
	if len(name) <= 0 {
		return nil, ErrInvalidWalletName
	}
	if err := network.Validate(); err != nil {
		return nil, err
	}
	if len(encryptedSeed) <= 0 {
		return nil, ErrMissingEncryptedSeed
	}
	if len(seedHash) <= 0 {
		return nil, ErrMissingSeedHash
	}

	return &Wallet{
		ID:            uuid.New().String(),
		Name:          name,
		Network:       network,
		EncryptedSeed: encryptedSeed,
		SeedHash:      seedHash,
		CreatedAt:     time.Now(),
	}, nil
}
