package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Feature is a named add-on with a daily surcharge. It is immutable once created.
type Feature struct {
	name      string
	dailyCost decimal.Decimal
}

// NewFeature validates and builds a Feature.
func NewFeature(name string, dailyCost decimal.Decimal) (Feature, error) {
	if name == "" {
		return Feature{}, fmt.Errorf("%w: feature name is required", ErrInvalidArgument)
	}
	if dailyCost.IsNegative() {
		return Feature{}, fmt.Errorf("%w: feature cost cannot be negative", ErrInvalidArgument)
	}
	return Feature{name: name, dailyCost: dailyCost}, nil
}

func (f Feature) Name() string {
	return f.name
}

func (f Feature) DailyCost() decimal.Decimal {
	return f.dailyCost
}

func (f Feature) String() string {
	return fmt.Sprintf("%s ($%s/day)", f.name, f.dailyCost.StringFixed(2))
}
