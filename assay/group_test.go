package assay

import "testing"

func TestResolveGroupKnown(t *testing.T) {
	cases := map[string]AntibioticGroup{
		"amk":          NonBeta,
		"AMK":          NonBeta,
		"Dox":          NonBeta,
		"caz":          Beta,
		"MEROPENEM":    Beta,
		"azetreonam_p": Beta,
	}

	for code, want := range cases {
		if got := ResolveGroup(code); got != want {
			t.Errorf("ResolveGroup(%q) = %s, expected %s", code, got, want)
		}
	}
}

func TestResolveGroupDefaultsToNonBeta(t *testing.T) {
	for _, code := range []string{"", "xyz", "colistin+meropenem", "caz ", "all"} {
		if got := ResolveGroup(code); got != NonBeta {
			t.Errorf("ResolveGroup(%q) = %s, expected %s", code, got, NonBeta)
		}
	}
}

func TestAntibioticsIsACopy(t *testing.T) {
	m := Antibiotics()
	m["amk"] = Beta

	if ResolveGroup("amk") != NonBeta {
		t.Error("Modifying the returned table changed resolution")
	}
}
