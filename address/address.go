// Package address validates Ethereum account addresses and applies the
// EIP-55 mixed case checksum.
//
// An address is 40 hex characters with an optional 0x or 0X prefix. The
// checksum is carried in the case of the letters: letter i is upper case
// when hex digit i of keccak256(lowercase address) is 8 or more.
package address

import (
	"strings"

	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/keccak"
)

// ErrInvalidAddress is the error class for text that is not an address.
var ErrInvalidAddress = errs.Class("invalid address")

// Length is the number of hex characters in an address.
const Length = 40

// body strips an optional 0x or 0X prefix and checks the shape of what is
// left.
func body(s string) (string, bool) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
	}

	if len(s) != Length {
		return s, false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return s, false
		}
	}

	return s, true
}

// IsAddress reports whether s is an address. Addresses in a single case are
// accepted on shape alone; mixed case ones must carry a valid checksum.
func IsAddress(s string) bool {
	b, ok := body(s)
	if !ok {
		return false
	}

	if b == strings.ToLower(b) || b == strings.ToUpper(b) {
		return true
	}

	return IsAddressChecksum(s)
}

// upper reports, per character, whether the checksum wants it upper case.
func upper(lower string) [Length]bool {
	sum := keccak.Sum256([]byte(lower))

	var out [Length]bool
	for i := range out {
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}

		out[i] = nibble&0x0f >= 8
	}

	return out
}

// IsAddressChecksum reports whether the letter case of s matches its
// checksum. Digits are not checked.
func IsAddressChecksum(s string) bool {
	b, ok := body(s)
	if !ok {
		return false
	}

	want := upper(strings.ToLower(b))

	for i := 0; i < Length; i++ {
		c := b[i]
		switch {
		case 'a' <= c && c <= 'f':
			if want[i] {
				return false
			}
		case 'A' <= c && c <= 'F':
			if !want[i] {
				return false
			}
		}
	}

	return true
}

// ToChecksumAddress returns s in checksum case with a 0x prefix.
func ToChecksumAddress(s string) (string, error) {
	b, ok := body(strings.ToLower(s))
	if !ok {
		return "", ErrInvalidAddress.New("%q", s)
	}

	want := upper(b)

	out := []byte("0x" + b)
	for i := 0; i < Length; i++ {
		c := out[2+i]
		if want[i] && 'a' <= c && c <= 'f' {
			out[2+i] = c - 'a' + 'A'
		}
	}

	return string(out), nil
}
