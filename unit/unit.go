// Package unit converts amounts between the ether denominations and wei.
//
// Names are matched exactly. Case variants such as kwei and Kwei are separate
// table entries that carry the same magnitude.
package unit

import (
	"math/big"

	"github.com/holiman/uint256"
	sdecimal "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/decimal"
)

// Error classes.
var (
	Error                = errs.Class("unit")
	ErrUnsupportedUnit   = errs.Class("unsupported unit")
	ErrFractionPrecision = errs.Class("fraction part is out of limit")
	ErrOutOfRange        = errs.Class("out of range")
)

// Unit is a denomination and its size in wei as base 10 text.
type Unit struct {
	Name string
	Wei  string
}

// Magnitude returns the size of u in wei.
func (u Unit) Magnitude() *big.Int {
	m, _ := new(big.Int).SetString(u.Wei, 10)

	return m
}

// Digits returns the number of base 10 digits in the size of u. It bounds
// how many fraction digits an amount in u may carry.
func (u Unit) Digits() int {
	return len(u.Wei)
}

// Ether is the name of the ether unit.
const Ether = "ether"

var units = [...]Unit{
	{"noether", "0"},
	{"wei", "1"},
	{"kwei", "1000"},
	{"Kwei", "1000"},
	{"babbage", "1000"},
	{"femtoether", "1000"},
	{"mwei", "1000000"},
	{"Mwei", "1000000"},
	{"lovelace", "1000000"},
	{"picoether", "1000000"},
	{"gwei", "1000000000"},
	{"Gwei", "1000000000"},
	{"shannon", "1000000000"},
	{"nanoether", "1000000000"},
	{"nano", "1000000000"},
	{"szabo", "1000000000000"},
	{"microether", "1000000000000"},
	{"micro", "1000000000000"},
	{"finney", "1000000000000000"},
	{"milliether", "1000000000000000"},
	{"milli", "1000000000000000"},
	{"ether", "1000000000000000000"},
	{"kether", "1000000000000000000000"},
	{"grand", "1000000000000000000000"},
	{"mether", "1000000000000000000000000"},
	{"gether", "1000000000000000000000000000"},
	{"tether", "1000000000000000000000000000000"},
}

var index = func() map[string]int {
	idx := make(map[string]int, len(units))
	for i, u := range units {
		idx[u.Name] = i
	}

	return idx
}()

// Units returns a copy of the table in ascending order.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units[:])

	return out
}

// Get returns the unit with the given name.
func Get(name string) (Unit, error) {
	i, ok := index[name]
	if !ok {
		return Unit{}, ErrUnsupportedUnit.New("%q", name)
	}

	return units[i], nil
}

// Lookup returns the size in wei of the named unit.
func Lookup(name string) (*big.Int, error) {
	u, err := Get(name)
	if err != nil {
		return nil, err
	}

	return u.Magnitude(), nil
}

// divisor returns the size of the named unit, refusing units of size zero.
func divisor(name string) (*big.Int, error) {
	m, err := Lookup(name)
	if err != nil {
		return nil, err
	}

	if m.Sign() == 0 {
		return nil, ErrUnsupportedUnit.New("cannot divide by %s", name)
	}

	return m, nil
}

// ToWei converts an amount in the named unit to wei.
//
// Fractional amounts may have at most as many fraction digits as the unit
// size has digits. Any part of the fraction below one wei is truncated.
func ToWei(in decimal.Input, name string) (_ *big.Int, err error) {
	defer Error.WrapP(&err)

	u, err := Get(name)
	if err != nil {
		return nil, err
	}

	v, err := decimal.Parse(in)
	if err != nil {
		return nil, err
	}

	return scale(v, u)
}

func scale(v decimal.Value, u Unit) (*big.Int, error) {
	m := u.Magnitude()

	switch v := v.(type) {
	case decimal.Integral:
		return new(big.Int).Mul(v.Big(), m), nil
	case decimal.Fractional:
		if v.Digits > u.Digits() {
			return nil, ErrFractionPrecision.New(
				"%s has %d fraction digits, %s allows %d",
				v,
				v.Digits,
				u.Name,
				u.Digits(),
			)
		}

		base := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(v.Digits)), nil)

		fraction := new(big.Int).Mul(v.Fraction, m)
		fraction.Quo(fraction, base)

		wei := new(big.Int).Mul(v.Whole, m)
		wei.Add(wei, fraction)

		if v.Negative {
			wei.Neg(wei)
		}

		return wei, nil
	}

	return nil, decimal.ErrInvalidInputKind.New("%T", v)
}

// FromWei divides an amount of wei by the size of the named unit. The
// quotient is truncated toward zero and the remainder takes the sign of the
// amount.
func FromWei(in decimal.Input, name string) (q, r *big.Int, err error) {
	defer Error.WrapP(&err)

	m, err := divisor(name)
	if err != nil {
		return nil, nil, err
	}

	v, err := decimal.Parse(in)
	if err != nil {
		return nil, nil, err
	}

	integral, ok := v.(decimal.Integral)
	if !ok {
		return nil, nil, decimal.ErrInvalidNumberFormat.New("fractional wei amount: %s", v)
	}

	q, r = new(big.Int).QuoRem(integral.Big(), m, new(big.Int))

	return q, r, nil
}

// ToEther converts an amount in the named unit to whole ether and the wei
// left over.
func ToEther(in decimal.Input, name string) (q, r *big.Int, err error) {
	defer Error.WrapP(&err)

	wei, err := ToWei(in, name)
	if err != nil {
		return nil, nil, err
	}

	m, err := Lookup(Ether)
	if err != nil {
		return nil, nil, err
	}

	q, r = new(big.Int).QuoRem(wei, m, new(big.Int))

	return q, r, nil
}

// ToWeiUint256 is ToWei for amounts that must fit an EVM word.
func ToWeiUint256(in decimal.Input, name string) (_ *uint256.Int, err error) {
	defer Error.WrapP(&err)

	wei, err := ToWei(in, name)
	if err != nil {
		return nil, err
	}

	if wei.Sign() < 0 {
		return nil, ErrOutOfRange.New("negative amount: %s wei", wei)
	}

	u, overflow := uint256.FromBig(wei)
	if overflow {
		return nil, ErrOutOfRange.New("more than 256 bits: %s wei", wei)
	}

	return u, nil
}

// Format returns an amount of wei as an exact decimal in the named unit.
func Format(wei *big.Int, name string) (_ sdecimal.Decimal, err error) {
	defer Error.WrapP(&err)

	if wei == nil {
		return sdecimal.Decimal{}, decimal.ErrInvalidInputKind.New("nil amount")
	}

	u, err := Get(name)
	if err != nil {
		return sdecimal.Decimal{}, err
	}

	if u.Magnitude().Sign() == 0 {
		return sdecimal.Decimal{}, ErrUnsupportedUnit.New("cannot divide by %s", name)
	}

	// Unit sizes are powers of ten: 10^(digits-1).
	return sdecimal.NewFromBigInt(wei, -int32(u.Digits()-1)), nil
}
