package main

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/calebcase/oops"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v2"

	"github.com/calebcase/ethunit"
	"github.com/calebcase/ethunit/abi"
	"github.com/calebcase/ethunit/address"
	"github.com/calebcase/ethunit/decimal"
	"github.com/calebcase/ethunit/hexutil"
	"github.com/calebcase/ethunit/keccak"
	"github.com/calebcase/ethunit/unit"
)

// arg returns the single positional argument.
func arg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", oops.Trace(errUsage)
	}

	return c.Args().First(), nil
}

func printQuoRem(w io.Writer, q, r *big.Int) error {
	if r.Sign() == 0 {
		_, err := fmt.Fprintln(w, q)

		return err
	}

	_, err := fmt.Fprintln(w, q, r)

	return err
}

var toWeiCommand = &cli.Command{
	Name:      "towei",
	Usage:     "convert an amount in --unit to wei",
	ArgsUsage: "<amount>",
	Flags:     []cli.Flag{UnitFlag},
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		wei, err := unit.ToWei(decimal.String(s), c.String(UnitFlag.Name))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, wei)

		return err
	},
}

var fromWeiCommand = &cli.Command{
	Name:  "fromwei",
	Usage: "convert wei to --unit",
	Description: "Prints the whole amount, followed by the remainder in wei when it is not zero.\n" +
		"With --format the amount is printed as a single decimal instead.",
	ArgsUsage: "<wei>",
	Flags:     []cli.Flag{UnitFlag, FormatFlag},
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		name := c.String(UnitFlag.Name)

		if c.Bool(FormatFlag.Name) {
			wei, err := ethunit.FormatBigNumber(decimal.String(s))
			if err != nil {
				return err
			}

			d, err := unit.Format(wei, name)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.App.Writer, d.String())

			return err
		}

		q, r, err := unit.FromWei(decimal.String(s), name)
		if err != nil {
			return err
		}

		return printQuoRem(c.App.Writer, q, r)
	},
}

var toEtherCommand = &cli.Command{
	Name:        "toether",
	Usage:       "convert an amount in --unit to ether",
	Description: "Prints the whole amount, followed by the remainder in wei when it is not zero.",
	ArgsUsage:   "<amount>",
	Flags:       []cli.Flag{UnitFlag},
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		q, r, err := unit.ToEther(decimal.String(s), c.String(UnitFlag.Name))
		if err != nil {
			return err
		}

		return printQuoRem(c.App.Writer, q, r)
	},
}

var toHexCommand = &cli.Command{
	Name:      "tohex",
	Usage:     "encode a number, or the bytes of any other text, as hex",
	ArgsUsage: "<value>",
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		out, err := ethunit.ToHex(decimal.String(s), c.Bool(PrefixFlag.Name))
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, out)

		return err
	},
}

var hexToBinCommand = &cli.Command{
	Name:      "hextobin",
	Usage:     "decode hex to raw bytes",
	ArgsUsage: "<hex>",
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		data, err := hexutil.HexToBin(s)
		if err != nil {
			return err
		}

		_, err = c.App.Writer.Write(data)

		return err
	},
}

var sha3Command = &cli.Command{
	Name:        "sha3",
	Usage:       "Keccak-256 of text, or of bytes given as 0x prefixed hex",
	Description: "Prints nothing when the input is empty.",
	ArgsUsage:   "<value>",
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		digest, ok, err := keccak.Sha3(s)
		if err != nil {
			return err
		}

		if !ok {
			newLogger("sha3").Debugw("empty input", "value", s)

			return nil
		}

		_, err = fmt.Fprintln(c.App.Writer, digest)

		return err
	},
}

var checksumCommand = &cli.Command{
	Name:      "checksum",
	Usage:     "print an address in EIP-55 checksum case",
	ArgsUsage: "<address>",
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		out, err := address.ToChecksumAddress(s)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(c.App.Writer, out)

		return err
	},
}

var isAddressCommand = &cli.Command{
	Name:      "isaddress",
	Usage:     "report whether the argument is an address",
	ArgsUsage: "<address>",
	Flags:     []cli.Flag{ChecksumFlag},
	Action: func(c *cli.Context) error {
		s, err := arg(c)
		if err != nil {
			return err
		}

		valid := address.IsAddress(s)
		if c.Bool(ChecksumFlag.Name) {
			valid = address.IsAddressChecksum(s)
		}

		_, err = fmt.Fprintln(c.App.Writer, valid)

		return err
	},
}

var unitsCommand = &cli.Command{
	Name:  "units",
	Usage: "list the known denominations",
	Action: func(c *cli.Context) error {
		if c.NArg() != 0 {
			return oops.Trace(errUsage)
		}

		t := table.NewWriter()
		t.SetOutputMirror(c.App.Writer)
		t.AppendHeader(table.Row{"Unit", "Wei", "Decimals"})
		t.AppendSeparator()

		for _, u := range unit.Units() {
			t.AppendRow(table.Row{u.Name, u.Wei, u.Digits() - 1})
		}

		t.Render()

		return nil
	},
}

// readABI reads JSON from a file, or from the app reader when path is "-".
func readABI(c *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(c.App.Reader)
	}

	return os.ReadFile(path)
}

var signatureCommand = &cli.Command{
	Name:      "signature",
	Usage:     "print the method signature of a JSON ABI entry",
	ArgsUsage: "<file|->",
	Flags:     []cli.Flag{AllFlag},
	Action: func(c *cli.Context) error {
		path, err := arg(c)
		if err != nil {
			return err
		}

		data, err := readABI(c, path)
		if err != nil {
			return Error.Wrap(err)
		}

		var sigs []string

		if c.Bool(AllFlag.Name) {
			sigs, err = abi.MethodSignatures(data)
		} else {
			var sig string
			sig, err = abi.MethodSignature(data)
			sigs = []string{sig}
		}

		if err != nil {
			return err
		}

		for _, sig := range sigs {
			if _, err := fmt.Fprintln(c.App.Writer, sig); err != nil {
				return err
			}
		}

		return nil
	},
}

var selectorCommand = &cli.Command{
	Name:        "selector",
	Usage:       "print the 4 byte selector of a method signature",
	Description: "The argument is a signature such as \"transfer(address,uint256)\" or a JSON ABI entry.",
	ArgsUsage:   "<signature|json>",
	Action: func(c *cli.Context) error {
		sig, err := arg(c)
		if err != nil {
			return err
		}

		if strings.HasPrefix(strings.TrimSpace(sig), "{") {
			sig, err = abi.MethodSignature([]byte(sig))
			if err != nil {
				return err
			}
		}

		_, err = fmt.Fprintln(c.App.Writer, abi.Selector(sig))

		return err
	},
}
