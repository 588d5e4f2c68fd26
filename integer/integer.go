package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the integer error class.
var Error = errs.Class("integer")

// Int is a signed integer stored as a sign and a magnitude. The magnitude is
// never negative and a zero value is never negative.
type Int struct {
	Magnitude *big.Int
	Negative  bool
}

// New splits i into sign and magnitude. The magnitude is a copy.
func New(i *big.Int) Int {
	if i == nil {
		return Int{Magnitude: new(big.Int)}
	}

	return Int{
		Magnitude: new(big.Int).Abs(i),
		Negative:  i.Sign() < 0,
	}
}

// FromInt64 returns the Int for v.
func FromInt64(v int64) Int {
	return New(big.NewInt(v))
}

// FromUint64 returns the Int for v.
func FromUint64(v uint64) Int {
	return Int{Magnitude: new(big.Int).SetUint64(v)}
}

// Parse reads digits in the given base with an optional leading minus sign.
func Parse(s string, base int) (_ Int, err error) {
	defer Error.WrapP(&err)

	negative := false
	if len(s) > 0 && s[0] == '-' {
		negative = true
		s = s[1:]
	}

	if len(s) == 0 || s[0] == '+' || s[0] == '-' {
		return Int{}, Error.New("invalid base %d integer: %q", base, s)
	}

	m, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, Error.New("invalid base %d integer: %q", base, s)
	}

	return Int{
		Magnitude: m,
		Negative:  negative && m.Sign() != 0,
	}, nil
}

func (i Int) magnitude() *big.Int {
	if i.Magnitude == nil {
		return new(big.Int)
	}

	return i.Magnitude
}

// Big returns a new big.Int carrying the sign.
func (i Int) Big() *big.Int {
	b := new(big.Int).Set(i.magnitude())
	if i.Negative {
		b.Neg(b)
	}

	return b
}

// Sign returns -1, 0 or +1.
func (i Int) Sign() int {
	if i.magnitude().Sign() == 0 {
		return 0
	}

	if i.Negative {
		return -1
	}

	return 1
}

// Neg returns i with the opposite sign. Zero stays non-negative.
func (i Int) Neg() Int {
	return Int{
		Magnitude: new(big.Int).Set(i.magnitude()),
		Negative:  !i.Negative && i.magnitude().Sign() != 0,
	}
}

// Cmp compares i and j as signed integers.
func (i Int) Cmp(j Int) int {
	return i.Big().Cmp(j.Big())
}

// String returns the base 10 form.
func (i Int) String() string {
	return i.Big().String()
}

// Text returns the form in the given base with a leading minus sign for
// negative values.
func (i Int) Text(base int) string {
	return i.Big().Text(base)
}

// MarshalText implements encoding.TextMarshaler.
func (i Int) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Int) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text), 10)
	if err != nil {
		return err
	}

	*i = v

	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The magnitude is written big-endian with the sign in the trailing bit.
func (i Int) MarshalBinary() (data []byte, err error) {
	z := new(big.Int).Lsh(i.magnitude(), 1)
	if i.Negative && i.magnitude().Sign() != 0 {
		z.SetBit(z, 0, 1)
	}

	data = z.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (i *Int) UnmarshalBinary(data []byte) (err error) {
	if len(data) == 0 {
		return Error.New("empty binary integer")
	}

	z := new(big.Int).SetBytes(data)

	negative := z.Bit(0) == 1
	z.Rsh(z, 1)

	if negative && z.Sign() == 0 {
		return Error.New("negative zero: %08b", data)
	}

	i.Magnitude = z
	i.Negative = negative

	return nil
}
