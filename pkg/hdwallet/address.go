package hdwallet

const (
	minAddressLength = 26
	maxAddressLength = 35

	base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
)

// IsValidAddress performs the structural validation of a P2PKH address for
// the given network: length bounds, base58 character set and the network's
// leading prefix. It deliberately skips the checksum so it stays a cheap
// pure function; full verification is the chain backend's job.
func IsValidAddress(address string, params Params) bool {
	if len(address) < minAddressLength || len(address) > maxAddressLength {
		return false
	}
	if address[0] != params.AddressPrefix {
		return false
	}
	for i := 0; i < len(address); i++ {
		if !isBase58Char(address[i]) {
			return false
		}
	}
	return true
}

func isBase58Char(c byte) bool {
	for i := 0; i < len(base58Alphabet); i++ {
		if base58Alphabet[i] == c {
			return true
		}
	}
	return false
}
