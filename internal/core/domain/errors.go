package domain

import "errors"

var (
	// ErrInvalidNetwork ...
	ErrInvalidNetwork = errors.New("network is unknown")
	// ErrInvalidWalletName ...
	ErrInvalidWalletName = errors.New("wallet name must not be empty")
	// ErrMissingEncryptedSeed ...
	ErrMissingEncryptedSeed = errors.New("encrypted seed must not be empty")
	// ErrMissingSeedHash ...
	ErrMissingSeedHash = errors.New("seed hash must not be empty")
	// ErrMissingExtendedPubKey ...
	ErrMissingExtendedPubKey = errors.New("extended public key must not be empty")
	// ErrInvalidGapLimit is thrown when creating an account with a gap limit
	// lower than 1, which would prevent the allocator from ever presenting a
	// receive address
	ErrInvalidGapLimit = errors.New("gap limit must be at least 1")
	// ErrInvalidAddress ...
	ErrInvalidAddress = errors.New("address is not valid for the network")

	// ErrMalformedExtendedKey is thrown when the account's extended public key
	// cannot be parsed while deriving a new address
	ErrMalformedExtendedKey = errors.New("extended public key is malformed")
	// ErrAddressIndexOverflow is thrown when the next address index would
	// exceed the 32-bit non-hardened key space
	ErrAddressIndexOverflow = errors.New("address index out of range")

	// ErrAddressNotWatched is thrown when the sync engine reports activity for
	// an address this wallet never asked to watch. It signals a protocol
	// desynchronization and must never be swallowed
	ErrAddressNotWatched = errors.New("address is not watched by any account")

	// ErrBalanceOverflow is thrown when summing balances would wrap the
	// unsigned 64-bit satoshi range
	ErrBalanceOverflow = errors.New("balance sum overflows")

	// ErrWalletNotFound ...
	ErrWalletNotFound = errors.New("wallet not found")
	// ErrAccountNotFound ...
	ErrAccountNotFound = errors.New("account not found")
	// ErrAddressNotFound ...
	ErrAddressNotFound = errors.New("address not found")
	// ErrSyncStateNotFound ...
	ErrSyncStateNotFound = errors.New("sync state not found")
	// ErrDuplicateSeed is thrown when importing a wallet whose seed hash
	// matches one already stored on this device
	ErrDuplicateSeed = errors.New("a wallet with the same seed already exists")
	// ErrDuplicateAddress ...
	ErrDuplicateAddress = errors.New("address is already watched")
	// ErrDuplicateAccountIndex ...
	ErrDuplicateAccountIndex = errors.New("account index already in use for wallet")
)
