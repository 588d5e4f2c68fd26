// Package keccak provides the Keccak-256 hash used by Ethereum (the original
// Keccak padding, not the standardised SHA3-256).
package keccak

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/calebcase/ethunit/hexutil"
)

// EmptyHash is the Keccak-256 digest of zero bytes.
const EmptyHash = "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"

// Sum256 returns the Keccak-256 digest of the concatenated data.
func Sum256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		d.Write(b)
	}

	return d.Sum(nil)
}

// Sha3 hashes s and returns the 0x prefixed lowercase hex digest. A 0x
// prefixed s is hex decoded first, anything else is hashed as is.
//
// When the digest is EmptyHash there is no result and ok is false. This
// applies to "" and "0x" alike.
func Sha3(s string) (digest string, ok bool, err error) {
	data := []byte(s)

	if hexutil.IsZeroPrefixed(s) {
		data, err = hexutil.HexToBin(s)
		if err != nil {
			return "", false, err
		}
	}

	sum := hex.EncodeToString(Sum256(data))
	if sum == EmptyHash {
		return "", false, nil
	}

	return hexutil.Prefix + sum, true, nil
}
