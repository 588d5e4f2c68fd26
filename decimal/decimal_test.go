package decimal_test

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/ethunit/decimal"
	"github.com/calebcase/ethunit/hexutil"
)

func TestParseIntegral(t *testing.T) {
	type TC struct {
		Input  decimal.Input
		Output string
		Mark   error
	}

	huge, ok := new(big.Int).SetString("-115792089237316195423570985008687907853269984665640564039457584007913129639935", 10)
	require.True(t, ok)

	tcs := []TC{
		{Input: decimal.String(""), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.Int(11), Output: "11", Mark: oops.New("unexpected")},
		{Input: decimal.Int(-11), Output: "-11", Mark: oops.New("unexpected")},
		{Input: decimal.Uint(math.MaxUint64), Output: "18446744073709551615", Mark: oops.New("unexpected")},
		{Input: decimal.String("0x12"), Output: "18", Mark: oops.New("unexpected")},
		{Input: decimal.String("0X12"), Output: "18", Mark: oops.New("unexpected")},
		{Input: decimal.String("-0x12"), Output: "-18", Mark: oops.New("unexpected")},
		{Input: decimal.Int(0x12), Output: "18", Mark: oops.New("unexpected")},
		{Input: decimal.String("ae"), Output: "174", Mark: oops.New("unexpected")},
		{Input: decimal.String("AE"), Output: "174", Mark: oops.New("unexpected")},
		{Input: decimal.String("-ae"), Output: "-174", Mark: oops.New("unexpected")},
		{Input: decimal.String("-1"), Output: "-1", Mark: oops.New("unexpected")},
		{Input: decimal.String("+1"), Output: "1", Mark: oops.New("unexpected")},
		{Input: decimal.String("-0"), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.String("-"), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.String("0x5218"), Output: "21016", Mark: oops.New("unexpected")},
		{Input: decimal.String("0x"), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.String("0xfg"), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.String("bad"), Output: "2989", Mark: oops.New("unexpected")},
		{Input: decimal.String("0x-5"), Output: "0", Mark: oops.New("unexpected")},
		{Input: decimal.String("1e3"), Output: "1000", Mark: oops.New("unexpected")},
		{Input: decimal.String("-2.5E2"), Output: "-250", Mark: oops.New("unexpected")},
		{Input: decimal.String("600000"), Output: "600000", Mark: oops.New("unexpected")},
		{Input: decimal.Float(48), Output: "48", Mark: oops.New("unexpected")},
		{Input: decimal.Big(big.NewInt(1)), Output: "1", Mark: oops.New("unexpected")},
		{Input: decimal.Big(huge), Output: huge.String(), Mark: oops.New("unexpected")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			v, err := decimal.Parse(tc.Input)
			require.NoError(t, err, tc.Mark)

			integral, ok := v.(decimal.Integral)
			if !ok {
				t.Logf("Value: %s\n", spew.Sdump(v))
			}
			require.True(t, ok, tc.Mark)
			require.Equal(t, tc.Output, integral.String(), tc.Mark)
			require.True(t, integral.Magnitude.Sign() >= 0, tc.Mark)
			require.Equal(t, tc.Output, integral.Big().String(), tc.Mark)
		})
	}
}

func TestParseFractional(t *testing.T) {
	type TC struct {
		Input    decimal.Input
		Whole    string
		Fraction string
		Digits   int
		Negative bool
		Text     string
		Mark     error
	}

	tcs := []TC{
		{
			Input: decimal.String("-0.1"),
			Whole: "0", Fraction: "1", Digits: 1, Negative: true,
			Text: "-0.1",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.Float(-0.1),
			Whole: "0", Fraction: "1", Digits: 1, Negative: true,
			Text: "-0.1",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("0.1"),
			Whole: "0", Fraction: "1", Digits: 1, Negative: false,
			Text: "0.1",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("-1.69"),
			Whole: "1", Fraction: "69", Digits: 2, Negative: true,
			Text: "-1.69",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.Float(-1.69),
			Whole: "1", Fraction: "69", Digits: 2, Negative: true,
			Text: "-1.69",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("1.69"),
			Whole: "1", Fraction: "69", Digits: 2, Negative: false,
			Text: "1.69",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("0.05"),
			Whole: "0", Fraction: "5", Digits: 2, Negative: false,
			Text: "0.05",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("0.000012"),
			Whole: "0", Fraction: "12", Digits: 6, Negative: false,
			Text: "0.000012",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("3.10"),
			Whole: "3", Fraction: "10", Digits: 2, Negative: false,
			Text: "3.10",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String(".5"),
			Whole: "0", Fraction: "5", Digits: 1, Negative: false,
			Text: "0.5",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("7."),
			Whole: "7", Fraction: "0", Digits: 0, Negative: false,
			Text: "7.",
			Mark: oops.New("unexpected"),
		},
		{
			Input: decimal.String("1.5e-3"),
			Whole: "0", Fraction: "15", Digits: 4, Negative: false,
			Text: "0.0015",
			Mark: oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			v, err := decimal.Parse(tc.Input)
			require.NoError(t, err, tc.Mark)

			f, ok := v.(decimal.Fractional)
			if !ok {
				t.Logf("Value: %s\n", spew.Sdump(v))
			}
			require.True(t, ok, tc.Mark)

			require.Equal(t, tc.Whole, f.Whole.String(), tc.Mark)
			require.Equal(t, tc.Fraction, f.Fraction.String(), tc.Mark)
			require.Equal(t, tc.Digits, f.Digits, tc.Mark)
			require.Equal(t, tc.Negative, f.Negative, tc.Mark)
			require.Equal(t, tc.Text, f.String(), tc.Mark)

			limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(f.Digits)), nil)
			require.True(t, f.Fraction.Cmp(limit) < 0, tc.Mark)
		})
	}
}

func TestParseErrors(t *testing.T) {
	type TC struct {
		Input decimal.Input
		Class func(error) bool
	}

	tcs := []TC{
		{Input: decimal.Input{}, Class: decimal.ErrInvalidInputKind.Has},
		{Input: decimal.Big(nil), Class: decimal.ErrInvalidInputKind.Has},
		{Input: decimal.String("1.2.3"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("-1..2"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.Float(math.NaN()), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.Float(math.Inf(1)), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("xyz"), Class: hexutil.ErrInvalidHex.Has},
		{Input: decimal.String("12g"), Class: hexutil.ErrInvalidHex.Has},
		{Input: decimal.String("."), Class: hexutil.ErrInvalidHex.Has},
		{Input: decimal.String("1e257"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("1e-257"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("-1.5E+257"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("1e100000000"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("1e-100000000"), Class: decimal.ErrInvalidNumberFormat.Has},
		{Input: decimal.String("1e99999999999999999999"), Class: decimal.ErrInvalidNumberFormat.Has},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			v, err := decimal.Parse(tc.Input)
			require.Error(t, err)
			require.Nil(t, v)
			require.True(t, tc.Class(err), "%+v", err)
			require.True(t, decimal.Error.Has(err))
		})
	}
}

func TestParseExponentLimit(t *testing.T) {
	v, err := decimal.Parse(decimal.String(fmt.Sprintf("1e%d", decimal.MaxExponent)))
	require.NoError(t, err)
	require.IsType(t, decimal.Integral{}, v)
	require.Equal(t, "1"+strings.Repeat("0", decimal.MaxExponent), v.String())

	v, err = decimal.Parse(decimal.String(fmt.Sprintf("-1E-%d", decimal.MaxExponent)))
	require.NoError(t, err)

	f, ok := v.(decimal.Fractional)
	require.True(t, ok, spew.Sdump(v))
	require.True(t, f.Negative)
	require.Equal(t, decimal.MaxExponent, f.Digits)
	require.Equal(t, "1", f.Fraction.String())
	require.Equal(t, "0", f.Whole.String())

	_, err = decimal.Parse(decimal.String(fmt.Sprintf("1e%d", decimal.MaxExponent+1)))
	require.True(t, decimal.ErrInvalidNumberFormat.Has(err))

	_, err = decimal.Parse(decimal.String(fmt.Sprintf("1e-%d", decimal.MaxExponent+1)))
	require.True(t, decimal.ErrInvalidNumberFormat.Has(err))
}

func TestIsNumeric(t *testing.T) {
	for _, s := range []string{"0", "-1", "+1", "1.69", ".5", "5.", "1.2.3", "1e3", "1.5E-2", "-.5e1"} {
		require.True(t, decimal.IsNumeric(s), s)
	}

	for _, s := range []string{"", "-", ".", "0x12", "ae", "1e", "e3", "1 000", "1,5"} {
		require.False(t, decimal.IsNumeric(s), s)
	}
}

func TestInput(t *testing.T) {
	require.Equal(t, decimal.KindInvalid, decimal.Input{}.Kind())
	require.Equal(t, decimal.KindString, decimal.String("x").Kind())

	s, ok := decimal.String("x").Text()
	require.True(t, ok)
	require.Equal(t, "x", s)

	_, ok = decimal.Int(1).Text()
	require.False(t, ok)

	b := big.NewInt(5)
	in := decimal.Big(b)
	b.SetInt64(6)
	require.Equal(t, "5", in.String())

	require.Equal(t, "-0.1", decimal.Float(-0.1).String())
	require.Equal(t, `"ab"`, decimal.String("ab").String())
	require.Equal(t, "invalid(0)", decimal.Input{}.String())
}

func TestMustParse(t *testing.T) {
	require.Equal(t, "5", decimal.MustParse(decimal.Int(5)).String())
	require.Panics(t, func() {
		decimal.MustParse(decimal.String("1.2.3"))
	})
}
