/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"encoding/hex"
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/averonix/rsacore"
	"github.com/averonix/rsacore/factory"
)

// loadPrivateKey reads the raw key components from the "key" section of a
// YAML file and assembles a private key under the given policy. Expected
// fields, all hex-encoded big-endian integers: n, e, p, q, dmp1, dmq1, iqmp.
func loadPrivateKey(path string, opts *factory.Opts) (*rsacore.PrivateKey, error) {
	v, err := openKeyFile(path)
	if err != nil {
		return nil, err
	}
	components := make(map[string]*big.Int)
	for _, field := range []string{"n", "e", "p", "q", "dmp1", "dmq1", "iqmp"} {
		c, err := hexComponent(v, field)
		if err != nil {
			return nil, err
		}
		components[field] = c
	}
	return rsacore.NewPrivateKey(
		components["n"], components["e"],
		components["p"], components["q"],
		components["dmp1"], components["dmq1"], components["iqmp"],
		opts.MinModulusBits, opts.MaxModulusBits,
	)
}

// loadPublicKey reads only the n and e fields of a key file.
func loadPublicKey(path string) (n, e *big.Int, err error) {
	v, err := openKeyFile(path)
	if err != nil {
		return nil, nil, err
	}
	if n, err = hexComponent(v, "n"); err != nil {
		return nil, nil, err
	}
	if e, err = hexComponent(v, "e"); err != nil {
		return nil, nil, err
	}
	return n, e, nil
}

func openKeyFile(path string) (*viper.Viper, error) {
	if path == "" {
		return nil, errors.New("no key file given, use --key")
	}
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WithMessagef(err, "could not read key file %s", path)
	}
	return v, nil
}

func hexComponent(v *viper.Viper, field string) (*big.Int, error) {
	raw := v.GetString("key." + field)
	if raw == "" {
		return nil, errors.Errorf("key file is missing the %q component", field)
	}
	b, err := hex.DecodeString(strings.TrimSpace(raw))
	if err != nil {
		return nil, errors.WithMessagef(err, "key component %q is not valid hex", field)
	}
	return new(big.Int).SetBytes(b), nil
}

// readBlock reads a hex-encoded block from a file.
func readBlock(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("no input file given, use --in")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	block, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, errors.WithMessagef(err, "input file %s is not valid hex", path)
	}
	return block, nil
}

// writeBlock writes a block to a file as hex, or to stdout when no file was
// given.
func writeBlock(path string, block []byte) error {
	encoded := hex.EncodeToString(block) + "\n"
	if path == "" {
		_, err := os.Stdout.WriteString(encoded)
		return err
	}
	return os.WriteFile(path, []byte(encoded), 0o600)
}
