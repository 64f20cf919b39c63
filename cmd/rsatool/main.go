/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// rsatool signs and recovers raw RSA blocks from the command line. It works
// on modulus-sized blocks encoded as hex; padding is up to the caller, as it
// is for the library.
package main

import (
	"os"

	"github.com/hyperledger/fabric-lib-go/common/flogging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/averonix/rsacore/factory"
)

var logger = flogging.MustGetLogger("rsatool")

var (
	keyFile    string
	configFile string
	inFile     string
	outFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rsatool",
		Short: "Raw RSA transform tool",
		Long: "rsatool runs the raw RSA private and public transforms over " +
			"modulus-sized hex-encoded blocks. Key material is read from a YAML " +
			"file of raw hex components; no ASN.1 formats are involved.",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "optional YAML file with an rsacore policy section")

	rootCmd.AddCommand(signCmd())
	rootCmd.AddCommand(recoverCmd())

	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("%s", err)
		os.Exit(1)
	}
}

// addBlockFlags registers the flags shared by the block-transforming
// subcommands.
func addBlockFlags(fs *pflag.FlagSet) {
	fs.StringVar(&keyFile, "key", "", "YAML file holding the key components as hex")
	fs.StringVar(&inFile, "in", "", "file holding the hex-encoded input block")
	fs.StringVar(&outFile, "out", "", "file the hex-encoded output block is written to")
}

// loadPolicy returns the modulus size policy, from the --config file when
// one is given and from the defaults otherwise.
func loadPolicy() (*factory.Opts, error) {
	if configFile == "" {
		return factory.GetDefaultOpts(), nil
	}
	v := viper.New()
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return factory.FromViper(v)
}
