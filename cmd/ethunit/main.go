// ethunit converts Ethereum amounts between units, encodes numbers as hex and
// checks addresses from the shell.
package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/zeebo/errs"
)

// Error is the ethunit command error class.
var Error = errs.Class("ethunit")

var errUsage = Error.New("wrong number of arguments")

var (
	UnitFlag = &cli.StringFlag{
		Name:    "unit",
		Aliases: []string{"u"},
		Value:   "ether",
		Usage:   "denomination of the amount (see the units command)",
		EnvVars: []string{unitEnv},
	}
	PrefixFlag = &cli.BoolFlag{
		Name:    "prefix",
		Value:   true,
		Usage:   "prefix hex output with 0x",
		EnvVars: []string{prefixEnv},
	}
	FormatFlag = &cli.BoolFlag{
		Name:  "format",
		Usage: "print a single decimal amount instead of quotient and remainder",
	}
	ChecksumFlag = &cli.BoolFlag{
		Name:  "checksum",
		Usage: "require a valid EIP-55 checksum",
	}
	AllFlag = &cli.BoolFlag{
		Name:  "all",
		Usage: "read a JSON ABI array and print every function",
	}
)

func newApp(w io.Writer, r io.Reader) *cli.App {
	return &cli.App{
		Name:                 "ethunit",
		Usage:                "Ethereum unit conversion, hex encoding and address checksums",
		Writer:               w,
		ErrWriter:            w,
		Reader:               r,
		EnableBashCompletion: true,
		Flags: []cli.Flag{
			PrefixFlag,
		},
		Commands: []*cli.Command{
			toWeiCommand,
			fromWeiCommand,
			toEtherCommand,
			toHexCommand,
			hexToBinCommand,
			sha3Command,
			checksumCommand,
			isAddressCommand,
			unitsCommand,
			signatureCommand,
			selectorCommand,
		},
	}
}

func main() {
	logger := newLogger("ethunit")
	loadEnv(logger)

	app := newApp(os.Stdout, os.Stdin)
	app.ErrWriter = os.Stderr

	if err := app.Run(os.Args); err != nil {
		logger.Errorw("command failed", "err", err)
		os.Exit(1)
	}
}
