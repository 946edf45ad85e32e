package measure

import "strings"

// DoseStage is the concentration regime a sheet was measured at.
type DoseStage int

const (
	IC50 DoseStage = iota
	MIC
	NineXMIC
)

var stageNames = map[DoseStage]string{
	IC50:     "IC50",
	MIC:      "MIC",
	NineXMIC: "9xMIC",
}

func (d DoseStage) String() string {
	if s, exists := stageNames[d]; exists {
		return s
	}

	return "unknown"
}

// Symbol is the plotly marker symbol used for points of this stage.
func (d DoseStage) Symbol() string {
	switch d {
	case IC50:
		return "circle"
	case MIC:
		return "x"
	case NineXMIC:
		return "square"
	default:
		return "diamond"
	}
}

// StageFromSheetName reads the dose stage out of a sheet name. The rules are
// checked in order: "_IC50" anywhere, a "_MIC" suffix, then "_9xMIC"
// anywhere. Sheets matching none of them carry no stage.
func StageFromSheetName(name string) (DoseStage, bool) {
	switch {
	case strings.Contains(name, "_IC50"):
		return IC50, true
	case strings.HasSuffix(name, "_MIC"):
		return MIC, true
	case strings.Contains(name, "_9xMIC"):
		return NineXMIC, true
	}

	return 0, false
}
