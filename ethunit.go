// Package ethunit converts between the number forms an Ethereum client deals
// with: caller supplied decimals, hex wire text and wei amounts.
//
// The work is split across packages:
//
//  decimal  parse caller input into Integral or Fractional values
//  hexutil  0x prefixes, hex bytes and minimal hex integers
//  unit     wei/ether denominations
//  address  EIP-55 checksum addresses
//  keccak   Keccak-256
//  abi      method signatures and selectors
//
// This package holds what spans them.
package ethunit

import (
	"math/big"

	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/decimal"
	"github.com/calebcase/ethunit/hexutil"
)

var (
	// Error is the ethunit error class.
	Error = errs.Class("ethunit")

	// ErrOutOfRange is returned when a value does not fit the requested
	// integer type.
	ErrOutOfRange = errs.Class("out of range")
)

// ToHex encodes in as hex, with a 0x prefix when prefixed is set.
//
// Numbers (and strings holding decimal text) are encoded as a minimal hex
// integer: zero has no digits, so ToHex(decimal.Int(0), true) is "0x".
// Negative numbers get a leading minus sign ("-0x12"). Numbers with a
// fractional part have no hex form.
//
// Any other string is encoded byte for byte after dropping a leading 0x.
func ToHex(in decimal.Input, prefixed bool) (_ string, err error) {
	defer Error.WrapP(&err)

	if s, ok := in.Text(); ok && !decimal.IsNumeric(s) {
		digits := hexutil.Encode([]byte(hexutil.StripZero(s)))

		return hexutil.AddPrefix(digits, prefixed), nil
	}

	i, err := integral(in)
	if err != nil {
		return "", err
	}

	out := hexutil.AddPrefix(hexutil.EncodeBig(i.Magnitude), prefixed)
	if i.Negative {
		out = "-" + out
	}

	return out, nil
}

// ToBn parses in. It is decimal.Parse.
func ToBn(in decimal.Input) (decimal.Value, error) {
	return decimal.Parse(in)
}

// FormatBigNumber parses in as a whole number.
func FormatBigNumber(in decimal.Input) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	i, err := integral(in)
	if err != nil {
		return nil, err
	}

	return i.Big(), nil
}

// FormatNumber parses in as a whole number that fits an int64.
func FormatNumber(in decimal.Input) (_ int64, err error) {
	defer Error.WrapP(&err)

	i, err := integral(in)
	if err != nil {
		return 0, err
	}

	b := i.Big()
	if !b.IsInt64() {
		return 0, ErrOutOfRange.New("%s does not fit in 64 bits", b)
	}

	return b.Int64(), nil
}

func integral(in decimal.Input) (decimal.Integral, error) {
	v, err := decimal.Parse(in)
	if err != nil {
		return decimal.Integral{}, err
	}

	i, ok := v.(decimal.Integral)
	if !ok {
		return decimal.Integral{}, decimal.ErrInvalidNumberFormat.New("not a whole number: %s", v)
	}

	return i, nil
}
