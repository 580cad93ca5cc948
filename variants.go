package regret

import (
	"strings"

	"github.com/pkg/errors"
)

// Variant names a regret minimization algorithm.
type Variant string

const (
	VariantRegretMatching Variant = "rm"
	VariantCFRPlus        Variant = "cfr+"
	VariantDCFR           Variant = "dcfr"
	VariantDCFRPlus       Variant = "dcfr+"
	VariantLinearCFR      Variant = "lcfr"
	VariantPCFRPlus       Variant = "pcfr+"
	VariantPDCFRPlus      Variant = "pdcfr+"
)

var variants = []struct {
	variant Variant
	name    string
	aliases []string
}{
	{VariantRegretMatching, "Regret Matching", []string{"regret-matching", "vanilla"}},
	{VariantCFRPlus, "CFR+", []string{"cfrplus", "cfr-plus"}},
	{VariantDCFR, "DCFR", []string{"discounted"}},
	{VariantDCFRPlus, "DCFR+", []string{"dcfrplus", "dcfr-plus"}},
	{VariantLinearCFR, "Linear CFR", []string{"linear", "linear-cfr"}},
	{VariantPCFRPlus, "PCFR+", []string{"pcfrplus", "pcfr-plus"}},
	{VariantPDCFRPlus, "PDCFR+", []string{"pdcfrplus", "pdcfr-plus"}},
}

// Variants returns all supported variants.
func Variants() []Variant {
	result := make([]Variant, len(variants))
	for i, v := range variants {
		result[i] = v.variant
	}
	return result
}

// ParseVariant looks up a Variant by name or alias, ignoring case.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, v := range variants {
		if name == string(v.variant) || name == strings.ToLower(v.name) {
			return v.variant, nil
		}

		for _, alias := range v.aliases {
			if name == alias {
				return v.variant, nil
			}
		}
	}

	return "", errors.Wrapf(ErrUnknownVariant, "%q", name)
}

// String implements fmt.Stringer.
func (v Variant) String() string {
	for _, x := range variants {
		if x.variant == v {
			return x.name
		}
	}

	return string(v)
}

// Params are the configuration options for creating a Minimizer.
// An empty Params struct is valid and corresponds to plain regret matching.
type Params struct {
	Variant Variant
	// Discount exponents. Used by DCFR (all three), DCFR+ and PDCFR+
	// (Alpha and Gamma); ignored by the other variants.
	Discount DiscountParams
}

// DefaultParams returns the published recommended configuration of v.
func DefaultParams(v Variant) Params {
	params := Params{Variant: v}
	switch v {
	case VariantDCFR:
		params.Discount = RecommendedDiscounts
	case VariantDCFRPlus:
		params.Discount = DCFRPlusDiscounts
	case VariantPDCFRPlus:
		params.Discount = PDCFRPlusDiscounts
	}

	return params
}

// Validate checks that the Variant is known and the discount exponents valid.
func (p Params) Validate() error {
	_, err := p.Schedule()
	return err
}

// Schedule returns the Schedule of the configured variant.
func (p Params) Schedule() (Schedule, error) {
	if err := p.Discount.Validate(); err != nil {
		return nil, err
	}

	switch p.Variant {
	case "", VariantRegretMatching:
		return RegretMatching{}, nil
	case VariantCFRPlus:
		return CFRPlus{}, nil
	case VariantDCFR:
		return DCFR{p.Discount}, nil
	case VariantDCFRPlus:
		return DCFRPlus{p.Discount}, nil
	case VariantLinearCFR:
		return LinearCFR{}, nil
	case VariantPCFRPlus:
		return PCFRPlus{}, nil
	case VariantPDCFRPlus:
		return PDCFRPlus{p.Discount}, nil
	}

	return nil, errors.Wrapf(ErrUnknownVariant, "%q", string(p.Variant))
}

// NewFromParams creates a Minimizer over nActions actions as configured by params.
func NewFromParams(nActions int, params Params) (*Minimizer, error) {
	schedule, err := params.Schedule()
	if err != nil {
		return nil, err
	}

	return New(nActions, schedule)
}
