package domain

// Network identifies the chain a wallet lives on. It selects the BIP44 coin
// type of every derivation path and the address version addresses are
// encoded with.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
	NetworkRegtest Network = "regtest"
)

// Validate returns ErrInvalidNetwork for anything but the known networks.
func (n Network) Validate() error {
	switch n {
	case NetworkMainnet, NetworkTestnet, NetworkDevnet, NetworkRegtest:
		return nil
	default:
		return ErrInvalidNetwork
	}
}

// CoinType returns the BIP44 coin type of the network. All test networks
// share the testnet coin type.
func (n Network) CoinType() int {
	if n == NetworkMainnet {
		return MainnetCoinType
	}
	return TestnetCoinType
}

func (n Network) String() string {
	return string(n)
}
