// SPDX-License-Identifier: MIT

package sensitivity

import "fmt"

// Condition identifies one imaging-condition formula.
// The zero value is Corr.
type Condition uint8

const (
	// Corr is the time-domain zero-lag cross-correlation, key "corr".
	Corr Condition = iota

	// ISIC is the time-domain inverse-scattering imaging condition, key "isic".
	ISIC

	// CorrFreq is the on-the-fly DFT cross-correlation, key "corr_freq".
	CorrFreq

	// ISICFreq is the on-the-fly DFT inverse-scattering condition, key "isic_freq".
	ISICFreq

	numConditions
)

// SourceFormula identifies one linearized-source formula.
// The zero value is BornSource.
type SourceFormula uint8

const (
	// BornSource is the basic linearized source, key "corr".
	BornSource SourceFormula = iota

	// ISICSource is the ISIC-consistent linearized source, key "isic".
	ISICSource

	numSourceFormulas
)

// conditionTable is indexed [hasFreq][isic].
var conditionTable = [2][2]Condition{
	{Corr, ISIC},
	{CorrFreq, ISICFreq},
}

// sourceTable is indexed [isic].
var sourceTable = [2]SourceFormula{BornSource, ISICSource}

var conditionKeys = [numConditions]string{
	Corr:     "corr",
	ISIC:     "isic",
	CorrFreq: "corr_freq",
	ISICFreq: "isic_freq",
}

var sourceKeys = [numSourceFormulas]string{
	BornSource: "corr",
	ISICSource: "isic",
}

// SelectImagingCondition maps (frequencies present, isic) to a Condition.
// The function is total over its two booleans.
func SelectImagingCondition(hasFreq, isic bool) Condition {
	return conditionTable[b2i(hasFreq)][b2i(isic)]
}

// SelectSourceFormula maps the isic flag to a SourceFormula.
func SelectSourceFormula(isic bool) SourceFormula {
	return sourceTable[b2i(isic)]
}

// Conditions returns every Condition in key-table order.
func Conditions() []Condition {
	return []Condition{Corr, ISIC, CorrFreq, ISICFreq}
}

// SourceFormulas returns every SourceFormula in key-table order.
func SourceFormulas() []SourceFormula {
	return []SourceFormula{BornSource, ISICSource}
}

// ParseCondition maps an external key back to its Condition.
func ParseCondition(key string) (Condition, error) {
	for c, k := range conditionKeys {
		if k == key {
			return Condition(c), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", key, ErrUnknownCondition)
}

// ParseSourceFormula maps an external key back to its SourceFormula.
func ParseSourceFormula(key string) (SourceFormula, error) {
	for s, k := range sourceKeys {
		if k == key {
			return SourceFormula(s), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", key, ErrUnknownSource)
}

// String returns the external key.
func (c Condition) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Condition(%d)", uint8(c))
	}

	return conditionKeys[c]
}

// Valid reports whether c is one of the four defined conditions.
func (c Condition) Valid() bool { return c < numConditions }

// IsFrequencyDomain reports whether c consumes DFT accumulators.
func (c Condition) IsFrequencyDomain() bool { return c == CorrFreq || c == ISICFreq }

// IsISIC reports whether c carries the gradient correction term.
func (c Condition) IsISIC() bool { return c == ISIC || c == ISICFreq }

// String returns the external key.
func (s SourceFormula) String() string {
	if !s.Valid() {
		return fmt.Sprintf("SourceFormula(%d)", uint8(s))
	}

	return sourceKeys[s]
}

// Valid reports whether s is one of the two defined source formulas.
func (s SourceFormula) Valid() bool { return s < numSourceFormulas }

func b2i(b bool) int {
	if b {
		return 1
	}

	return 0
}
