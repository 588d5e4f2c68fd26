/*
Package hexutil handles the hex text used on the Ethereum JSON-RPC wire.

Two encodings are produced:

Bytes are encoded as two lowercase digits per byte. The encoding keeps the
exact byte length, so leading zero bytes survive.

Integers are encoded by magnitude with the least number of digits (no
leading zeros). Zero has no digits at all and therefore encodes as the empty
string, or as a bare "0x" when prefixed.

The "0x" prefix checks in this package are case sensitive. "0X" is not a
prefix here.
*/
package hexutil

import (
	"encoding/hex"
	"math/big"
	"strings"

	"github.com/zeebo/errs"
)

// ErrInvalidHex is the error class for text that is not usable hex.
var ErrInvalidHex = errs.Class("invalid hex input")

// Prefix is the hex prefix.
const Prefix = "0x"

// IsZeroPrefixed reports whether s starts with a literal "0x".
func IsZeroPrefixed(s string) bool {
	return strings.HasPrefix(s, Prefix)
}

// StripZero removes a leading "0x".
func StripZero(s string) string {
	if IsZeroPrefixed(s) {
		return s[len(Prefix):]
	}

	return s
}

// IsNegative reports whether s starts with a minus sign.
func IsNegative(s string) bool {
	return strings.HasPrefix(s, "-")
}

// IsHex reports whether s is made of lowercase hex digits with an optional
// "0x" prefix. The empty string and a bare "0x" are hex.
func IsHex(s string) bool {
	for _, c := range []byte(StripZero(s)) {
		if !isLowerHexDigit(c) {
			return false
		}
	}

	return true
}

func isLowerHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f')
}

// HexToBin decodes s into bytes after removing an optional "0x".
func HexToBin(s string) (data []byte, err error) {
	body := StripZero(s)

	if len(body)%2 != 0 {
		return nil, ErrInvalidHex.New("odd length: %q", s)
	}

	data, err = hex.DecodeString(body)
	if err != nil {
		return nil, ErrInvalidHex.New("%q: %v", s, err)
	}

	return data, nil
}

// Encode returns the lowercase hex digits of b without a prefix.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// EncodeBig returns the minimal lowercase hex digits of the magnitude of i
// without a prefix. Zero (and nil) encode as "".
func EncodeBig(i *big.Int) string {
	if i == nil || i.Sign() == 0 {
		return ""
	}

	return new(big.Int).Abs(i).Text(16)
}

// AddPrefix prepends "0x" when prefixed is set.
func AddPrefix(digits string, prefixed bool) string {
	if prefixed {
		return Prefix + digits
	}

	return digits
}
