/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package factory holds the configurable policy options for the rsacore
// transforms and their loading from configuration sources.
package factory

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// configKey is the configuration subtree the options are read from.
const configKey = "rsacore"

// Opts holds the modulus size policy applied by key validation. The absolute
// 16384-bit ceiling is enforced by the core independently of these bounds.
type Opts struct {
	MinModulusBits int `mapstructure:"minModulusBits" json:"minModulusBits" yaml:"MinModulusBits"`
	MaxModulusBits int `mapstructure:"maxModulusBits" json:"maxModulusBits" yaml:"MaxModulusBits"`
}

// GetDefaultOpts offers a default policy; it returns a new instance every
// time.
func GetDefaultOpts() *Opts {
	return &Opts{
		MinModulusBits: 2048,
		MaxModulusBits: 8192,
	}
}

// Validate checks the bounds for internal consistency.
func (o *Opts) Validate() error {
	if o.MinModulusBits <= 0 {
		return errors.Errorf("minimum modulus size must be positive, got %d", o.MinModulusBits)
	}
	if o.MaxModulusBits < o.MinModulusBits {
		return errors.Errorf("maximum modulus size %d is below the minimum %d", o.MaxModulusBits, o.MinModulusBits)
	}
	return nil
}

// FromViper reads the options from the "rsacore" key of v, applying the
// defaults for any field that is not set.
func FromViper(v *viper.Viper) (*Opts, error) {
	o := GetDefaultOpts()
	if err := v.UnmarshalKey(configKey, o); err != nil {
		return nil, errors.WithMessage(err, "could not decode rsacore options")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// FromMap decodes the options from a generic configuration map, applying the
// defaults for any field that is not set.
func FromMap(m map[string]interface{}) (*Opts, error) {
	o := GetDefaultOpts()
	if err := mapstructure.Decode(m, o); err != nil {
		return nil, errors.WithMessage(err, "could not decode rsacore options")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}
