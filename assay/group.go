package assay

import "strings"

// AntibioticGroup is the categorical group used to pick a strain's
// visualization parameters.
type AntibioticGroup string

const (
	NonBeta AntibioticGroup = "non_beta" // non beta-lactam
	Beta    AntibioticGroup = "beta"     // beta-lactam

	// All is the catch-all key for strains that do not split their
	// parameters by antibiotic.
	All AntibioticGroup = "all"
)

// antibioticGroups maps lowercase antibiotic codes to their group. Strains
// whose config only has an All entry (A. baumannii combinations, S. aureus)
// need no entries here.
var antibioticGroups = map[string]AntibioticGroup{
	// A. baumannii, single antibiotics
	"amk": NonBeta,
	"gen": NonBeta,
	"tgc": NonBeta,
	"tet": NonBeta,
	"lvx": NonBeta,
	"cip": NonBeta,
	"rif": NonBeta,
	"cst": NonBeta,
	"pmb": NonBeta,
	"van": NonBeta,

	"caz":        Beta,
	"azetreonam": Beta,
	"meropenem":  Beta,
	"fdc":        Beta,

	// PAO1
	"chir": NonBeta,
	"pf":   NonBeta,
	"dox":  NonBeta,

	"caz_p":        Beta,
	"azetreonam_p": Beta,
	"meropenem_p":  Beta,
}

// ResolveGroup returns the group for an antibiotic code. Lookup is case
// insensitive. Unknown codes are NonBeta, since most assay antibiotics are
// not beta-lactams.
func ResolveGroup(antibiotic string) AntibioticGroup {
	if g, exists := antibioticGroups[strings.ToLower(antibiotic)]; exists {
		return g
	}

	return NonBeta
}

// Antibiotics returns a copy of the antibiotic => group table.
func Antibiotics() map[string]AntibioticGroup {
	out := make(map[string]AntibioticGroup, len(antibioticGroups))
	for k, v := range antibioticGroups {
		out[k] = v
	}

	return out
}
