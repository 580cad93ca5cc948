// Package config loads run configuration files written in HCL.
//
// A configuration file looks like:
//
//	variant    = "dcfr"
//	iterations = 10000
//	seed       = 42
//
//	discount {
//	  alpha = 1.5
//	  beta  = 0
//	  gamma = 2
//	}
//
// Every attribute is optional. Discount exponents that are not set keep the
// recommended value for the selected variant.
package config

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-regret"
)

// ErrInvalidIterations is returned when the configured number of iterations is negative.
var ErrInvalidIterations = errors.New("iterations must not be negative")

// Config is a decoded run configuration file.
type Config struct {
	Variant    string    `hcl:"variant,optional"`
	Iterations int       `hcl:"iterations,optional"`
	Seed       int64     `hcl:"seed,optional"`
	Trace      bool      `hcl:"trace,optional"`
	Discount   *Discount `hcl:"discount,block"`
}

// Discount overrides individual DCFR-family discount exponents.
// Nil fields are left at the variant's default.
type Discount struct {
	Alpha *float64 `hcl:"alpha,optional"`
	Beta  *float64 `hcl:"beta,optional"`
	Gamma *float64 `hcl:"gamma,optional"`
}

// Load reads and decodes the HCL file at filename.
func Load(filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "parsing %s", filename)
	}

	return decode(file.Body, filename)
}

// Parse decodes HCL source. filename is used only in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "parsing %s", filename)
	}

	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Config, error) {
	var c Config
	if diags := gohcl.DecodeBody(body, nil, &c); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "decoding %s", filename)
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, filename)
	}

	return &c, nil
}

// Validate checks that the configured variant is known and that the
// iteration count and discount exponents are in range.
func (c *Config) Validate() error {
	if c.Iterations < 0 {
		return errors.Wrapf(ErrInvalidIterations, "iterations = %d", c.Iterations)
	}

	_, err := c.Params()
	return err
}

// Params resolves the configured variant and discount overrides.
// An unset variant selects plain regret matching.
func (c *Config) Params() (regret.Params, error) {
	v := regret.VariantRegretMatching
	if c.Variant != "" {
		var err error
		if v, err = regret.ParseVariant(c.Variant); err != nil {
			return regret.Params{}, err
		}
	}

	params := regret.DefaultParams(v)
	if d := c.Discount; d != nil {
		if d.Alpha != nil {
			params.Discount.Alpha = float32(*d.Alpha)
		}
		if d.Beta != nil {
			params.Discount.Beta = float32(*d.Beta)
		}
		if d.Gamma != nil {
			params.Discount.Gamma = float32(*d.Gamma)
		}
	}

	if err := params.Validate(); err != nil {
		return regret.Params{}, err
	}

	return params, nil
}
