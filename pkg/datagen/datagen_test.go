package datagen

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func floatPtr(v float64) *float64 { return &v }

func TestNormalSeries(t *testing.T) {
	s := &NormalSeries{
		ColumnName: "x",
		Mu:         floatPtr(10),
		Sigma:      floatPtr(0.5),
		Precision:  2,
		Seed:       42,
	}
	col := s.Generate(1000)

	if col.Name != "x" {
		t.Errorf("Name = %q, want x", col.Name)
	}
	if col.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", col.Len())
	}

	sum := 0.0
	for _, v := range col.Nums {
		sum += v
	}
	mean := sum / float64(col.Len())
	if math.Abs(mean-10) > 0.2 {
		t.Errorf("sample mean = %v, want ~10", mean)
	}
}

func TestNormalSeriesDeterministic(t *testing.T) {
	a := (&NormalSeries{ColumnName: "x", Seed: 7}).Generate(10)
	b := (&NormalSeries{ColumnName: "x", Seed: 7}).Generate(10)
	for i := range a.Nums {
		if a.Nums[i] != b.Nums[i] {
			t.Fatalf("sample %d differs across runs with the same seed", i)
		}
	}
}

func TestNormalSeriesRandomMuBounded(t *testing.T) {
	// With sigma pinned to 0 every sample equals mu, which must stay
	// inside [-MaxMuFactor, MaxMuFactor].
	for seed := uint64(1); seed <= 20; seed++ {
		s := &NormalSeries{ColumnName: "x", Sigma: floatPtr(0), MaxMuFactor: 5, Seed: seed}
		col := s.Generate(3)
		for _, v := range col.Nums {
			if v < -5 || v > 5 {
				t.Fatalf("seed %d: mu %v outside [-5, 5]", seed, v)
			}
		}
	}
}

func TestStringSeries(t *testing.T) {
	s := &StringSeries{ColumnName: "s", Length: 5, Population: "ab", Seed: 3}
	col := s.Generate(50)
	if col.Len() != 50 {
		t.Fatalf("Len() = %d, want 50", col.Len())
	}
	for _, v := range col.Text {
		if len(v) != 5 {
			t.Errorf("string %q has length %d, want 5", v, len(v))
		}
		if strings.Trim(v, "ab") != "" {
			t.Errorf("string %q uses letters outside the population", v)
		}
	}
}

func TestStringSeriesRandomLength(t *testing.T) {
	s := &StringSeries{ColumnName: "s", Length: 8, Population: "x", RandomLength: true, Seed: 3}
	col := s.Generate(100)
	seen := map[int]bool{}
	for _, v := range col.Text {
		if len(v) < 1 || len(v) >= 8 {
			t.Errorf("string length %d outside [1, 8)", len(v))
		}
		seen[len(v)] = true
	}
	if len(seen) < 2 {
		t.Error("expected varying string lengths")
	}
}

func TestTLASeries(t *testing.T) {
	col := (&TLASeries{ColumnName: "tla", Seed: 9}).Generate(30)
	for _, v := range col.Text {
		if len(v) != 3 {
			t.Errorf("TLA %q has length %d, want 3", v, len(v))
		}
		if v != strings.ToUpper(v) {
			t.Errorf("TLA %q is not uppercase", v)
		}
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		v         float64
		precision int
		want      string
	}{
		{1.23456, 2, "1.23"},
		{1.5, 0, "2"},
		{-0.5, 1, "-0.5"},
		{1.25, -1, "1.25"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.v, tt.precision); got != tt.want {
			t.Errorf("FormatFloat(%v, %d) = %q, want %q", tt.v, tt.precision, got, tt.want)
		}
	}
}

func TestColumnFloats(t *testing.T) {
	col := Column{Name: "n", Text: []string{"1.5", "2", "-3"}}
	nums, err := col.Floats()
	if err != nil {
		t.Fatalf("Floats() error = %v", err)
	}
	want := []float64{1.5, 2, -3}
	for i := range want {
		if nums[i] != want[i] {
			t.Errorf("Floats()[%d] = %v, want %v", i, nums[i], want[i])
		}
	}

	bad := Column{Name: "s", Text: []string{"abc"}}
	if _, err := bad.Floats(); err == nil {
		t.Error("expected error for non-numeric column")
	}
}

func TestFrameWriteCSV(t *testing.T) {
	f := Frame{Columns: []Column{
		{Name: "x", Nums: []float64{1.234, 5.678}, Precision: 1},
		{Name: "label", Text: []string{"a", "b"}},
	}}

	var buf bytes.Buffer
	if err := f.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	want := "x,label\n1.2,a\n5.7,b\n"
	if buf.String() != want {
		t.Errorf("CSV = %q, want %q", buf.String(), want)
	}
}

func TestToCounter(t *testing.T) {
	f := Frame{Columns: []Column{
		{Name: "v", Text: []string{"b", "a", "b", "c", "b", "a"}},
	}}
	out := ToCounter("v", "value", "count")(f)

	keys, _ := out.Column("value")
	counts, _ := out.Column("count")
	wantKeys := []string{"a", "b", "c"}
	wantCounts := []string{"2", "3", "1"}
	for i := range wantKeys {
		if keys.Text[i] != wantKeys[i] || counts.Text[i] != wantCounts[i] {
			t.Errorf("entry %d = (%s, %s), want (%s, %s)",
				i, keys.Text[i], counts.Text[i], wantKeys[i], wantCounts[i])
		}
	}
}

func TestToCounterNumericSort(t *testing.T) {
	f := Frame{Columns: []Column{
		{Name: "v", Nums: []float64{10, 2, 10, 2, 3}, Precision: 0},
	}}
	out := ToCounter("v", "value", "count")(f)

	keys, _ := out.Column("value")
	want := []string{"2", "3", "10"}
	for i := range want {
		if keys.Text[i] != want[i] {
			t.Errorf("key %d = %s, want %s", i, keys.Text[i], want[i])
		}
	}
}

func TestToHistogram(t *testing.T) {
	f := Frame{Columns: []Column{
		{Name: "v", Text: []string{"a", "a", "a", "b"}},
	}}
	out := ToHistogram("v", "value", "entries")(f)

	percents, _ := out.Column("entries")
	if percents.Nums[0] != 75 || percents.Nums[1] != 25 {
		t.Errorf("percentages = %v, want [75 25]", percents.Nums)
	}
}

func TestDataGeneratorExport(t *testing.T) {
	g := &DataGenerator{Series: []Series{
		&NormalSeries{ColumnName: "x", Mu: floatPtr(0), Sigma: floatPtr(1), Precision: 3, Seed: 1},
		&TLASeries{ColumnName: "tag", Seed: 2},
	}}

	path := filepath.Join(t.TempDir(), "out.csv")
	frame, err := g.GenerateAndExport(25, path)
	if err != nil {
		t.Fatalf("GenerateAndExport() error = %v", err)
	}
	if frame.Rows() != 25 {
		t.Errorf("Rows() = %d, want 25", frame.Rows())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if lines[0] != "x,tag" {
		t.Errorf("header = %q, want x,tag", lines[0])
	}
	if len(lines) != 26 {
		t.Errorf("got %d lines, want 26", len(lines))
	}
}
