package decimal

import (
	"fmt"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	sdecimal "github.com/shopspring/decimal"
	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/hexutil"
	"github.com/calebcase/ethunit/integer"
)

// Error classes.
var (
	Error                  = errs.Class("decimal")
	ErrInvalidInputKind    = errs.Class("invalid input kind")
	ErrInvalidNumberFormat = errs.Class("invalid number format")
)

// Kind identifies the variant held by an Input.
type Kind uint8

// Input kinds.
const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindBig
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBig:
		return "big"
	}

	return fmt.Sprintf("invalid(%d)", uint8(k))
}

// Input is a number as supplied by a caller. The zero Input is invalid.
type Input struct {
	kind Kind
	i    int64
	u    uint64
	f    float64
	s    string
	b    *big.Int
}

// Int returns an Input holding v.
func Int(v int64) Input { return Input{kind: KindInt, i: v} }

// Uint returns an Input holding v.
func Uint(v uint64) Input { return Input{kind: KindUint, u: v} }

// Float returns an Input holding v.
func Float(v float64) Input { return Input{kind: KindFloat, f: v} }

// String returns an Input holding s.
func String(s string) Input { return Input{kind: KindString, s: s} }

// Big returns an Input holding a copy of v.
func Big(v *big.Int) Input {
	if v == nil {
		return Input{kind: KindBig}
	}

	return Input{kind: KindBig, b: new(big.Int).Set(v)}
}

// Kind returns the variant held.
func (in Input) Kind() Kind { return in.kind }

// Text returns the held string for KindString inputs.
func (in Input) Text() (s string, ok bool) {
	return in.s, in.kind == KindString
}

func (in Input) String() string {
	switch in.kind {
	case KindInt:
		return strconv.FormatInt(in.i, 10)
	case KindUint:
		return strconv.FormatUint(in.u, 10)
	case KindFloat:
		return strconv.FormatFloat(in.f, 'f', -1, 64)
	case KindString:
		return strconv.Quote(in.s)
	case KindBig:
		if in.b == nil {
			return "<nil>"
		}

		return in.b.String()
	}

	return in.kind.String()
}

// Value is the parsed form of an Input: Integral or Fractional.
type Value interface {
	String() string

	value()
}

// Integral is a whole number.
type Integral struct {
	integer.Int
}

func (Integral) value() {}

// Fractional is a number with a fractional part. Fraction < 10^Digits.
type Fractional struct {
	Whole    *big.Int
	Fraction *big.Int
	Digits   int
	Negative bool
}

func (Fractional) value() {}

// String returns the decimal text, keeping leading zeros in the fraction.
func (f Fractional) String() string {
	sb := &strings.Builder{}

	if f.Negative {
		sb.WriteByte('-')
	}

	sb.WriteString(orZero(f.Whole).String())
	sb.WriteByte('.')

	fraction := orZero(f.Fraction).String()
	if f.Digits == 0 {
		fraction = ""
	}

	for i := len(fraction); i < f.Digits; i++ {
		sb.WriteByte('0')
	}

	sb.WriteString(fraction)

	return sb.String()
}

func orZero(i *big.Int) *big.Int {
	if i == nil {
		return new(big.Int)
	}

	return i
}

// MaxExponent bounds the exponent of scientific literals such as "1.5e18".
// Literals are expanded to plain digits, so the bound caps that text at a
// few hundred digits. 10^256 is already far past a 256 bit word, and 10^-256
// is far below one wei in the largest unit.
const MaxExponent = 256

var (
	decimalPattern    = regexp.MustCompile(`^[+-]?[0-9.]*[0-9][0-9.]*$`)
	scientificPattern = regexp.MustCompile(`^[+-]?([0-9]+\.?[0-9]*|\.[0-9]+)[eE][+-]?[0-9]+$`)
)

// IsNumeric reports whether s is decimal text: an optional sign followed by
// digits and dots, or a scientific literal.
func IsNumeric(s string) bool {
	return decimalPattern.MatchString(s) || scientificPattern.MatchString(s)
}

// Parse converts in to a Value.
func Parse(in Input) (_ Value, err error) {
	defer Error.WrapP(&err)

	switch in.kind {
	case KindBig:
		if in.b == nil {
			return nil, ErrInvalidInputKind.New("nil big integer")
		}

		return Integral{integer.New(in.b)}, nil
	case KindInt:
		return Integral{integer.FromInt64(in.i)}, nil
	case KindUint:
		return Integral{integer.FromUint64(in.u)}, nil
	case KindFloat:
		if math.IsNaN(in.f) || math.IsInf(in.f, 0) {
			return nil, ErrInvalidNumberFormat.New("%v", in.f)
		}

		return parseDecimal(strconv.FormatFloat(in.f, 'f', -1, 64))
	case KindString:
		if IsNumeric(in.s) {
			return parseDecimal(in.s)
		}

		return parseHex(in.s)
	}

	return nil, ErrInvalidInputKind.New("%s", in.kind)
}

// MustParse is like Parse but panics on error.
func MustParse(in Input) Value {
	v, err := Parse(in)
	if err != nil {
		panic(err)
	}

	return v
}

func parseDecimal(s string) (Value, error) {
	text := s

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	if i := strings.IndexAny(s, "eE"); i >= 0 {
		exp, err := strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil || exp > MaxExponent || exp < -MaxExponent {
			return nil, ErrInvalidNumberFormat.New("exponent outside [-%d, %d]: %q", MaxExponent, MaxExponent, text)
		}

		d, err := sdecimal.NewFromString(s)
		if err != nil {
			return nil, ErrInvalidNumberFormat.New("%q: %v", text, err)
		}

		s = d.String()
	}

	parts := strings.Split(s, ".")

	switch len(parts) {
	case 1:
		m, err := parseDigits(parts[0])
		if err != nil {
			return nil, err
		}

		return Integral{integer.Int{
			Magnitude: m,
			Negative:  negative && m.Sign() != 0,
		}}, nil
	case 2:
		whole, err := parseDigits(parts[0])
		if err != nil {
			return nil, err
		}

		fraction, err := parseDigits(parts[1])
		if err != nil {
			return nil, err
		}

		return Fractional{
			Whole:    whole,
			Fraction: fraction,
			Digits:   len(parts[1]),
			Negative: negative,
		}, nil
	}

	return nil, ErrInvalidNumberFormat.New("more than one decimal point: %q", text)
}

func parseDigits(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}

	m, ok := new(big.Int).SetString(s, 10)
	if !ok || m.Sign() < 0 {
		return nil, ErrInvalidNumberFormat.New("%q", s)
	}

	return m, nil
}

func parseHex(s string) (Value, error) {
	text := s
	s = strings.ToLower(s)

	negative := false
	if hexutil.IsNegative(s) {
		negative = true
		s = s[1:]
	}

	var m *big.Int

	switch {
	case hexutil.IsZeroPrefixed(s) || strings.ContainsAny(s, "abcdef"):
		body := hexutil.StripZero(s)

		var ok bool
		m, ok = new(big.Int).SetString(body, 16)
		if !ok || strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
			// Unparseable hex reads as zero.
			m = new(big.Int)
		}
	case s == "":
		m = new(big.Int)
	default:
		return nil, hexutil.ErrInvalidHex.New("must be valid hex string: %q", text)
	}

	return Integral{integer.Int{
		Magnitude: m,
		Negative:  negative && m.Sign() != 0,
	}}, nil
}
