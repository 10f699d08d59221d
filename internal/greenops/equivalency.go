// Package greenops expresses emission totals as everyday equivalencies,
// such as miles driven or smartphones charged, using EPA factors.
package greenops

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
)

// EquivalencyType is a category of carbon equivalency.
type EquivalencyType int

const (
	// EquivalencyMilesDriven is miles driven in an average passenger vehicle.
	EquivalencyMilesDriven EquivalencyType = iota

	// EquivalencySmartphonesCharged is full smartphone charges.
	EquivalencySmartphonesCharged

	// EquivalencyTreeSeedlings is tree seedlings grown for 10 years.
	EquivalencyTreeSeedlings

	// EquivalencyHomeDays is days of average US home electricity use.
	EquivalencyHomeDays
)

// String returns the name of the equivalency type.
func (e EquivalencyType) String() string {
	switch e {
	case EquivalencyMilesDriven:
		return "MilesDriven"
	case EquivalencySmartphonesCharged:
		return "SmartphonesCharged"
	case EquivalencyTreeSeedlings:
		return "TreeSeedlings"
	case EquivalencyHomeDays:
		return "HomeDays"
	default:
		return fmt.Sprintf("EquivalencyType(%d)", e)
	}
}

// factor returns kg CO2e per unit of the activity.
func (e EquivalencyType) factor() float64 {
	switch e {
	case EquivalencyMilesDriven:
		return EPAMilesDrivenFactor
	case EquivalencySmartphonesCharged:
		return EPASmartphoneChargeFactor
	case EquivalencyTreeSeedlings:
		return EPATreeSeedlingFactor
	case EquivalencyHomeDays:
		return EPAHomeDayFactor
	default:
		return 0
	}
}

// EquivalencyResult is one calculated equivalency.
type EquivalencyResult struct {
	Type           EquivalencyType `json:"type"`
	Value          float64         `json:"value"`
	FormattedValue string          `json:"formatted_value"`
	Label          string          `json:"label"`
}

// EquivalencyOutput holds every equivalency for an emission total.
type EquivalencyOutput struct {
	// InputKg is the emission total in kilograms CO2e.
	InputKg float64 `json:"input_kg"`

	Results []EquivalencyResult `json:"results"`

	// DisplayText is prose for CLI and TUI output, e.g.
	// "Equivalent to driving ~110,400 miles or charging ~2,578,686 smartphones".
	DisplayText string `json:"display_text"`

	IsEmpty bool `json:"is_empty"`
}

// FromTonnes computes equivalencies for an emission total given in tonnes
// CO2, formatting numbers for tag.
//
// Totals below MinEquivalencyThresholdKg return an empty output and no
// error. Negative totals fail with ErrNegativeValue and non-finite ones
// with ErrCalculationOverflow.
func FromTonnes(tonnes float64, tag language.Tag) (EquivalencyOutput, error) {
	if math.IsNaN(tonnes) || math.IsInf(tonnes, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if tonnes < 0 {
		return EquivalencyOutput{IsEmpty: true}, ErrNegativeValue
	}

	kg := tonnes * TonnesToKg
	if math.IsInf(kg, 0) {
		return EquivalencyOutput{IsEmpty: true}, ErrCalculationOverflow
	}
	if kg < MinEquivalencyThresholdKg {
		return EquivalencyOutput{InputKg: kg, IsEmpty: true}, nil
	}

	f := NewFormatter(tag)
	types := []EquivalencyType{
		EquivalencyMilesDriven,
		EquivalencySmartphonesCharged,
		EquivalencyTreeSeedlings,
		EquivalencyHomeDays,
	}

	results := make([]EquivalencyResult, len(types))
	for i, typ := range types {
		v := kg / typ.factor()
		results[i] = EquivalencyResult{
			Type:           typ,
			Value:          v,
			FormattedValue: f.Equivalency(v),
			Label:          f.words.labels[typ],
		}
	}

	// The display line keeps to the two most relatable activities.
	return EquivalencyOutput{
		InputKg: kg,
		Results: results,
		DisplayText: fmt.Sprintf(f.words.display,
			strings.TrimPrefix(results[0].FormattedValue, "~"),
			strings.TrimPrefix(results[1].FormattedValue, "~")),
	}, nil
}
