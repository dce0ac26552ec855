package hdwallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

const (
	// ExternalChain is the BIP44 receive chain.
	ExternalChain = 0
	// InternalChain is the BIP44 change chain.
	InternalChain = 1

	// HardenedKeyStart is the first index outside the non-hardened key space
	// reachable from an extended public key.
	HardenedKeyStart = hdkeychain.HardenedKeyStart
)

var (
	// ErrInvalidExtendedKey is returned when the extended key string cannot
	// be parsed.
	ErrInvalidExtendedKey = errors.New("invalid extended key")
	// ErrPrivateExtendedKey is returned when a private extended key is
	// provided where only public keys are accepted.
	ErrPrivateExtendedKey = errors.New("extended key must be public")
	// ErrInvalidChain is returned for a chain index other than 0 or 1.
	ErrInvalidChain = errors.New("chain must be either external (0) or internal (1)")
	// ErrIndexOutOfRange is returned when the address index falls into the
	// hardened key space.
	ErrIndexOutOfRange = errors.New("address index exceeds the non-hardened key space")
)

// DeriveAddressOpts are the parameters of DeriveAddress.
type DeriveAddressOpts struct {
	ExtendedPublicKey string
	Chain             int
	Index             uint32
	Params            Params
}

func (o DeriveAddressOpts) validate() error {
	if len(o.ExtendedPublicKey) <= 0 {
		return ErrInvalidExtendedKey
	}
	if o.Chain != ExternalChain && o.Chain != InternalChain {
		return ErrInvalidChain
	}
	if o.Index >= HardenedKeyStart {
		return ErrIndexOutOfRange
	}
	return nil
}

// DeriveAddress derives the P2PKH address at chain/index under the given
// account-level extended public key. Only non-hardened derivation happens
// here; the hardened part of the path up to the account level is the key
// owner's concern.
func DeriveAddress(opts DeriveAddressOpts) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	accountKey, err := hdkeychain.NewKeyFromString(opts.ExtendedPublicKey)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidExtendedKey, err)
	}
	if accountKey.IsPrivate() {
		return "", ErrPrivateExtendedKey
	}

	chainKey, err := accountKey.Derive(uint32(opts.Chain))
	if err != nil {
		return "", fmt.Errorf("deriving chain key: %w", err)
	}
	childKey, err := chainKey.Derive(opts.Index)
	if err != nil {
		return "", fmt.Errorf("deriving child key: %w", err)
	}

	pubKey, err := childKey.ECPubKey()
	if err != nil {
		return "", fmt.Errorf("extracting public key: %w", err)
	}

	pubKeyHash := btcutil.Hash160(pubKey.SerializeCompressed())
	return base58.CheckEncode(pubKeyHash, opts.Params.PubKeyHashVersion), nil
}
