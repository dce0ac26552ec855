package hdwallet

// Params groups the address-encoding constants of a network.
type Params struct {
	Name string
	// PubKeyHashVersion is the version byte prepended to the public key hash
	// when base58check-encoding a P2PKH address.
	PubKeyHashVersion byte
	// AddressPrefix is the leading character every P2PKH address of the
	// network starts with, implied by the version byte.
	AddressPrefix byte
}

var (
	// MainNetParams hold the encoding constants of the main network.
	MainNetParams = Params{
		Name:              "mainnet",
		PubKeyHashVersion: 0x4c,
		AddressPrefix:     'X',
	}
	// TestNetParams hold the encoding constants shared by all test networks.
	TestNetParams = Params{
		Name:              "testnet",
		PubKeyHashVersion: 0x8c,
		AddressPrefix:     'y',
	}
)
