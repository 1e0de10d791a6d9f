package catalog

import (
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/signalsfoundry/ds9-regions/model"
)

func TestFilter_BensonSample(t *testing.T) {
	all := Sample()
	got := Filter(all, "Benson")
	if len(got) != 24 {
		t.Fatalf("expected 24 Benson records, got %d", len(got))
	}
	at15 := 0
	for _, r := range got {
		if r.Ref == nil || *r.Ref != "Benson, 1984" {
			t.Fatalf("non-Benson record %q matched", r.Name)
		}
		if *r.Freq == 15.0 {
			at15++
		}
	}
	if at15 != 12 {
		t.Fatalf("expected 12 Benson records at 15 GHz, got %d", at15)
	}
	if got[0].Name != "A" || got[len(got)-1].Name != "L" {
		t.Fatalf("order not preserved: first=%q last=%q", got[0].Name, got[len(got)-1].Name)
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	all := Sample()
	got := Filter(all, "")
	if len(got) != len(all) {
		t.Fatalf("expected %d records, got %d", len(all), len(got))
	}
	for i := range all {
		if got[i].Name != all[i].Name || got[i].Shape != all[i].Shape {
			t.Fatalf("record %d differs: %q vs %q", i, got[i].Name, all[i].Name)
		}
	}
}

func TestFilter_NoMatch(t *testing.T) {
	if got := Filter(Sample(), "Westerhout"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestFilter_CaseSensitive(t *testing.T) {
	if got := Filter(Sample(), "benson"); len(got) != 0 {
		t.Fatalf("search should be case-sensitive, got %d matches", len(got))
	}
}

func TestFilter_SkipsNumericFields(t *testing.T) {
	recs := []model.RegionRecord{
		{Name: "A", Epoch: model.Num(1950), Freq: model.Num(15)},
		{Name: "B", Epoch: model.Num(2000), Extra: []model.Field{{Key: "year", Value: model.IntValue(1950)}}},
		{Name: "C", Text: model.Str("epoch 1950 source")},
	}
	got := Filter(recs, "1950")
	if len(got) != 1 || got[0].Name != "C" {
		t.Fatalf("expected only C to match, got %+v", got)
	}
}

func TestMatch_ReturnsIndices(t *testing.T) {
	idx := Match(Sample(), "F1")
	want := []int{24, 25, 26, 27, 28, 29, 30, 42, 43}
	if len(idx) != len(want) {
		t.Fatalf("Match = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("Match = %v, want %v", idx, want)
		}
	}
}

func TestProperty_FilterPreservesOrderAndSubset(t *testing.T) {
	all := Sample()
	rapid.Check(t, func(rt *rapid.T) {
		query := rapid.SampledFrom([]string{"", "A", "F", "F1", "Benson", "dePree", "not", "GHz", "-28:22", "zzz"}).Draw(rt, "query")

		idx := Match(all, query)
		for i := 1; i < len(idx); i++ {
			if idx[i] <= idx[i-1] {
				rt.Fatalf("indices not strictly increasing: %v", idx)
			}
		}
		for _, i := range idx {
			found := false
			for _, s := range all[i].SearchableStrings() {
				if strings.Contains(s, query) {
					found = true
				}
			}
			if !found {
				rt.Fatalf("record %d matched %q without a containing field", i, query)
			}
		}
	})
}
