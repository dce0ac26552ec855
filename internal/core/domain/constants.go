package domain

const (
	// ExternalChain is the BIP44 chain holding receive addresses
	ExternalChain = 0
	// InternalChain is the BIP44 chain holding change addresses
	InternalChain = 1

	// Bip44Purpose is the purpose field of every derivation path managed here
	Bip44Purpose = 44
	// MainnetCoinType is the registered coin type of the main network
	MainnetCoinType = 5
	// TestnetCoinType is the coin type shared by all test networks
	TestnetCoinType = 1

	// DefaultGapLimit bounds the number of consecutive unused addresses kept
	// ahead of the last used one on a chain
	DefaultGapLimit = 20
)
