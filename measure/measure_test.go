package measure

import (
	"errors"
	"testing"
)

func TestStageFromSheetName(t *testing.T) {
	cases := []struct {
		name  string
		stage DoseStage
		ok    bool
	}{
		{"AMK_IC50", IC50, true},
		{"AMK_IC50_rep2", IC50, true},
		{"AMK_MIC", MIC, true},
		{"AMK_9xMIC", NineXMIC, true},
		{"AMK_9xMIC_rep2", NineXMIC, true},
		{"AMK_MIC_rep2", 0, false},
		{"Summary", 0, false},
		{"ic50", 0, false},
	}

	for _, c := range cases {
		stage, ok := StageFromSheetName(c.name)
		if ok != c.ok || (ok && stage != c.stage) {
			t.Errorf("StageFromSheetName(%q) = (%v, %v), expected (%v, %v)", c.name, stage, ok, c.stage, c.ok)
		}
	}
}

func TestStageStrings(t *testing.T) {
	if IC50.String() != "IC50" || MIC.String() != "MIC" || NineXMIC.String() != "9xMIC" {
		t.Error("Unexpected stage names")
	}
	if IC50.Symbol() != "circle" || MIC.Symbol() != "x" || NineXMIC.Symbol() != "square" {
		t.Error("Unexpected stage symbols")
	}
}

func TestAggregateSingleGroup(t *testing.T) {
	points := []Point{
		{X: 1, Y: 2, Z: 3, Condition: "s1", Stage: IC50},
		{X: 3, Y: 4, Z: 5, Condition: "s1", Stage: IC50},
	}

	got, err := Aggregate(points)
	if err != nil {
		t.Fatal(err)
	}

	expected := AggregatedPoint{X: 2, Y: 3, Z: 4, Condition: "s1", Stage: IC50, N: 2}
	if len(got) != 1 || got[0] != expected {
		t.Errorf("Expected [%+v], got %+v", expected, got)
	}
}

func TestAggregateOrder(t *testing.T) {
	points := []Point{
		{X: 1, Y: 1, Z: 1, Condition: "b_MIC", Stage: MIC},
		{X: 2, Y: 2, Z: 2, Condition: "a_IC50", Stage: IC50},
		{X: 3, Y: 3, Z: 3, Condition: "b_MIC", Stage: MIC},
		{X: 4, Y: 4, Z: 4, Condition: "a_9xMIC", Stage: NineXMIC},
	}

	got, err := Aggregate(points)
	if err != nil {
		t.Fatal(err)
	}

	order := []string{"a_9xMIC", "a_IC50", "b_MIC"}
	if len(got) != len(order) {
		t.Fatalf("Expected %d groups, got %d", len(order), len(got))
	}
	for i, cond := range order {
		if got[i].Condition != cond {
			t.Errorf("Position %d: expected %s, got %s", i, cond, got[i].Condition)
		}
	}
	if got[2].Z != 2 || got[2].N != 2 {
		t.Errorf("Unexpected b_MIC aggregate %+v", got[2])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if _, err := Aggregate(nil); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestStagesFirstAppearance(t *testing.T) {
	points := []Point{
		{Stage: MIC},
		{Stage: IC50},
		{Stage: MIC},
		{Stage: NineXMIC},
	}

	got := Stages(points)
	expected := []DoseStage{MIC, IC50, NineXMIC}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}

	if n := len(ByStage(points, MIC)); n != 2 {
		t.Errorf("Expected 2 MIC points, got %d", n)
	}
	if z := ZValues([]Point{{Z: 1}, {Z: 5}}); len(z) != 2 || z[1] != 5 {
		t.Errorf("Unexpected Z values %v", z)
	}
}
