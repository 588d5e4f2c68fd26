// Package abi turns JSON ABI entries into method signatures such as
// "approve(address,uint256)" and their 4 byte selectors. It does not encode
// or decode call data.
package abi

import (
	"strings"

	"github.com/valyala/fastjson"
	"github.com/zeebo/errs"

	"github.com/calebcase/ethunit/hexutil"
	"github.com/calebcase/ethunit/keccak"
)

// Error is the abi error class.
var Error = errs.Class("abi")

// MethodSignature returns the signature of a single JSON ABI entry.
//
// A name that already carries an argument list (a "(" after the first
// character) is returned as is. Otherwise the argument list is built from the
// types of the inputs. Inputs without a type are left out.
func MethodSignature(data []byte) (_ string, err error) {
	var p fastjson.Parser

	v, err := p.ParseBytes(data)
	if err != nil {
		return "", Error.Wrap(err)
	}

	return signature(v)
}

// MethodSignatures returns the signatures of the functions in a JSON ABI
// array, in order. Entries without a type are taken to be functions.
func MethodSignatures(data []byte) (_ []string, err error) {
	var p fastjson.Parser

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	entries, err := v.Array()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var out []string

	for i, entry := range entries {
		if entry.Type() != fastjson.TypeObject {
			return nil, Error.New("entry %d: not an object", i)
		}

		if typ := entry.GetStringBytes("type"); typ != nil && string(typ) != "function" {
			continue
		}

		sig, err := signature(entry)
		if err != nil {
			return nil, Error.New("entry %d: %v", i, err)
		}

		out = append(out, sig)
	}

	return out, nil
}

func signature(v *fastjson.Value) (string, error) {
	if v.Type() != fastjson.TypeObject {
		return "", Error.New("entry is not an object")
	}

	raw := v.Get("name")
	if raw == nil || raw.Type() != fastjson.TypeString {
		return "", Error.New("entry has no name")
	}

	name := string(raw.GetStringBytes())
	if strings.Index(name, "(") > 0 {
		return name, nil
	}

	var types []string
	for _, input := range v.GetArray("inputs") {
		typ := input.GetStringBytes("type")
		if typ == nil {
			continue
		}

		types = append(types, string(typ))
	}

	return name + "(" + strings.Join(types, ",") + ")", nil
}

// Selector returns the 0x prefixed first 4 bytes of the Keccak-256 hash of a
// method signature.
func Selector(signature string) string {
	return hexutil.Prefix + hexutil.Encode(keccak.Sum256([]byte(signature))[:4])
}
