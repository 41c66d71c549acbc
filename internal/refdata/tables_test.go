package refdata_test

import (
	"testing"

	"mentor-backend/internal/refdata"
)

func TestTablesAspectUniverse(t *testing.T) {
	tables := refdata.NewTables()
	aspects := tables.Aspects()

	if len(aspects) != 14 {
		t.Fatalf("expected 14 aspects, got %d", len(aspects))
	}

	seen := make(map[string]struct{}, len(aspects))
	for _, a := range aspects {
		if _, dup := seen[a.Name]; dup {
			t.Fatalf("duplicate aspect name %q", a.Name)
		}
		seen[a.Name] = struct{}{}
		if a.Dimension == "" || a.Represent == "" {
			t.Fatalf("aspect %q missing dimension or represent", a.Name)
		}
	}

	required := tables.RequiredAspectNames()
	if len(required) != len(aspects) {
		t.Fatalf("required names out of sync: %d vs %d", len(required), len(aspects))
	}
	for i, a := range aspects {
		if required[i] != a.Name {
			t.Fatalf("required name order mismatch at %d", i)
		}
	}
}

func TestTablesDimensionWeights(t *testing.T) {
	tables := refdata.NewTables()

	sums := make(map[string]float64)
	for _, a := range tables.Aspects() {
		sums[a.Dimension] += a.WeightWithinDimension
	}
	if len(sums) != 4 {
		t.Fatalf("expected 4 dimensions, got %d", len(sums))
	}
	for dim, sum := range sums {
		if sum < 0.999 || sum > 1.001 {
			t.Fatalf("weights in %q sum to %v, want 1", dim, sum)
		}
	}
}

func TestAspectByNameCaseInsensitive(t *testing.T) {
	tables := refdata.NewTables()

	a, ok := tables.AspectByName("HỌC MÁY (MACHINE LEARNING)")
	if !ok || a.Name != "Học máy (Machine Learning)" {
		t.Fatalf("expected case-insensitive hit, got %v %v", a, ok)
	}
	if _, ok := tables.AspectByName("không tồn tại"); ok {
		t.Fatalf("expected miss for unknown name")
	}
}

func TestCompetencyForScores(t *testing.T) {
	tables := refdata.NewTables()

	cl, ok := tables.CompetencyFor("Học máy (Machine Learning)", 3)
	if !ok || cl.Name != "Huấn luyện mô hình độc lập" {
		t.Fatalf("expected table hit, got %v %v", cl, ok)
	}

	// An integral float matches the int level it spells.
	if _, ok := tables.CompetencyFor("Học máy (Machine Learning)", 5.0); !ok {
		t.Fatalf("expected 5.0 to match level 5")
	}

	// Fractional scores and uncovered areas miss.
	if _, ok := tables.CompetencyFor("Học máy (Machine Learning)", 6.5); ok {
		t.Fatalf("expected miss for fractional score")
	}
	if _, ok := tables.CompetencyFor("Làm việc nhóm (Teamwork)", 3); ok {
		t.Fatalf("expected miss for uncovered area")
	}
}

func TestFindDomain(t *testing.T) {
	tables := refdata.NewTables()

	if len(tables.Domains()) != 8 {
		t.Fatalf("expected 8 domains, got %d", len(tables.Domains()))
	}

	d, ok := tables.FindDomain("  y tế  ")
	if !ok || d.Name != "Y tế" {
		t.Fatalf("expected trimmed case-insensitive hit, got %v %v", d, ok)
	}
	if _, ok := tables.FindDomain("Nông nghiệp"); ok {
		t.Fatalf("expected miss for unsupported domain")
	}

	names := tables.DomainNames()
	if len(names) != 8 || names[0] != "Y tế" {
		t.Fatalf("unexpected domain names: %v", names)
	}
}
