package assay

import "errors"

var (
	// ErrUnknownStrain is returned when a strain has no entry in the config
	// table.
	ErrUnknownStrain = errors.New("unknown strain")

	// ErrNoConfigForGroup is returned when a known strain has neither an entry
	// for the resolved antibiotic group nor an "all" entry. This is a gap in
	// the compiled-in table, not a data problem.
	ErrNoConfigForGroup = errors.New("no config for antibiotic group")
)
