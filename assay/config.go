package assay

import (
	"fmt"
	"sort"
)

// BinMode selects the arithmetic used to bin Low-regime values.
type BinMode string

const (
	BinModeAB BinMode = "ab" // A. baumannii: (z - 12) / bin size
	BinModeSA BinMode = "sa" // S. aureus: z / bin size
	BinModePA BinMode = "pa" // PAO1: z / bin size
)

// ParameterRecord holds the strain-specific values that drive classification
// and the axes of the figure.
type ParameterRecord struct {
	// Threshold splits the Low (<= Threshold) and High regimes on Z.
	Threshold float64
	BinMode   BinMode
	BinSize   float64

	XYRange float64
	ZRange  float64
	XYTick  float64
	ZTick   float64
}

// Validate reports whether the record can be used for classification and
// axis layout.
func (p ParameterRecord) Validate() error {
	if !(p.Threshold > 0) {
		return fmt.Errorf("threshold must be positive, got %v", p.Threshold)
	}
	if !(p.BinSize > 0) {
		return fmt.Errorf("bin size must be positive, got %v", p.BinSize)
	}
	switch p.BinMode {
	case BinModeAB, BinModeSA, BinModePA:
	default:
		return fmt.Errorf("unrecognized bin mode %q", p.BinMode)
	}
	if p.XYRange <= 0 || p.ZRange <= 0 {
		return fmt.Errorf("axis ranges must be positive, got xy=%v z=%v", p.XYRange, p.ZRange)
	}
	if p.XYTick <= 0 || p.ZTick <= 0 {
		return fmt.Errorf("axis ticks must be positive, got xy=%v z=%v", p.XYTick, p.ZTick)
	}

	return nil
}

// StrainConfig maps an antibiotic group to its parameters for one strain. It
// may hold a single All entry instead of per-group entries.
type StrainConfig map[AntibioticGroup]ParameterRecord

// Table maps strain identifiers to their StrainConfig.
type Table map[string]StrainConfig

// Resolve returns the record for strain and group, falling back to the
// strain's All entry when the group has none.
func (t Table) Resolve(strain string, group AntibioticGroup) (ParameterRecord, error) {
	strainCfg, exists := t[strain]
	if !exists {
		return ParameterRecord{}, fmt.Errorf("%w: %q (known strains: %v)", ErrUnknownStrain, strain, t.Strains())
	}

	if rec, exists := strainCfg[group]; exists {
		return rec, nil
	}

	if rec, exists := strainCfg[All]; exists {
		return rec, nil
	}

	return ParameterRecord{}, fmt.Errorf("%w: strain=%s group=%s", ErrNoConfigForGroup, strain, group)
}

// Strains returns the table's strain identifiers in sorted order.
func (t Table) Strains() []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

var defaultTable = Table{
	"AB_single": {
		NonBeta: {Threshold: 95, BinMode: BinModeAB, BinSize: 10, XYRange: 180, ZRange: 180, XYTick: 20, ZTick: 20},
		Beta:    {Threshold: 95, BinMode: BinModeAB, BinSize: 10, XYRange: 180, ZRange: 200, XYTick: 20, ZTick: 20},
	},
	"AB_combi": {
		All: {Threshold: 95, BinMode: BinModeAB, BinSize: 10, XYRange: 180, ZRange: 180, XYTick: 20, ZTick: 20},
	},
	"PAO1": {
		NonBeta: {Threshold: 160, BinMode: BinModePA, BinSize: 20, XYRange: 180, ZRange: 180, XYTick: 20, ZTick: 20},
		Beta:    {Threshold: 160, BinMode: BinModePA, BinSize: 20, XYRange: 180, ZRange: 600, XYTick: 20, ZTick: 100},
	},
	"SA": {
		All: {Threshold: 160, BinMode: BinModeSA, BinSize: 10, XYRange: 180, ZRange: 180, XYTick: 20, ZTick: 20},
	},
}

// DefaultTable returns the compiled-in strain table. The returned map is a
// copy; modifying it does not change package resolution.
func DefaultTable() Table {
	out := make(Table, len(defaultTable))
	for strain, cfg := range defaultTable {
		c := make(StrainConfig, len(cfg))
		for g, rec := range cfg {
			c[g] = rec
		}
		out[strain] = c
	}

	return out
}

// ResolveParameters looks up strain and group in the compiled-in table.
func ResolveParameters(strain string, group AntibioticGroup) (ParameterRecord, error) {
	return defaultTable.Resolve(strain, group)
}

// Resolve maps the antibiotic to its group and then resolves the strain's
// parameters for that group.
func Resolve(strain, antibiotic string) (ParameterRecord, AntibioticGroup, error) {
	group := ResolveGroup(antibiotic)
	rec, err := ResolveParameters(strain, group)

	return rec, group, err
}

// Strains lists the compiled-in strain identifiers.
func Strains() []string {
	return defaultTable.Strains()
}
