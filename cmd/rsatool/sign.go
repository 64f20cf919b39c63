/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/spf13/cobra"

	"github.com/averonix/rsacore"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Run the private transform over a modulus-sized block",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadPolicy()
			if err != nil {
				return err
			}
			key, err := loadPrivateKey(keyFile, opts)
			if err != nil {
				return err
			}
			block, err := readBlock(inFile)
			if err != nil {
				return err
			}

			signer, err := rsacore.NewSigner(key, opts.MinModulusBits, opts.MaxModulusBits, nil, nil)
			if err != nil {
				return err
			}
			sig, err := signer.SignRaw(block)
			if err != nil {
				return err
			}
			logger.Infof("signed %d-byte block", len(block))
			return writeBlock(outFile, sig)
		},
	}
	addBlockFlags(cmd.Flags())
	return cmd
}
