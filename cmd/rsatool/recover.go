/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/spf13/cobra"

	"github.com/averonix/rsacore"
)

func recoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Run the public transform over a signature block",
		Long: "recover undoes the modular exponentiation of a signature block " +
			"with the public key, printing the recovered (still padded) block.",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadPolicy()
			if err != nil {
				return err
			}
			n, e, err := loadPublicKey(keyFile)
			if err != nil {
				return err
			}
			block, err := readBlock(inFile)
			if err != nil {
				return err
			}

			out := make([]byte, (n.BitLen()+7)/8)
			err = rsacore.PublicTransform(n.Bytes(), e.Bytes(), block, out, opts.MinModulusBits, opts.MaxModulusBits)
			if err != nil {
				return err
			}
			logger.Infof("recovered %d-byte block", len(out))
			return writeBlock(outFile, out)
		},
	}
	addBlockFlags(cmd.Flags())
	return cmd
}
