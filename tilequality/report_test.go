package tilequality

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func validReport() *Report {
	return &Report{
		XLabels: []string{"1", "2", "3"},
		Tiles:   []int{1101, 1102},
		Means: [][]float64{
			{0.1, -0.2, 0.0},
			{-0.1, 0.05, 0.02},
		},
	}
}

type validation struct {
	Name    string
	Mutate  func(*Report)
	WantErr string
}

func TestValidate(t *testing.T) {
	for _, v := range []validation{
		{
			Name:   "valid",
			Mutate: func(r *Report) {},
		},
		{
			Name:   "empty",
			Mutate: func(r *Report) { *r = Report{} },
		},
		{
			Name:    "short row",
			Mutate:  func(r *Report) { r.Means[1] = []float64{-0.1, 0.05} },
			WantErr: "x_labels",
		},
		{
			Name:    "row count mismatch",
			Mutate:  func(r *Report) { r.Means = r.Means[:1] },
			WantErr: "means has 1 rows but tiles has 2 entries",
		},
		{
			Name:    "duplicate tile",
			Mutate:  func(r *Report) { r.Tiles[1] = 1101 },
			WantErr: "unique",
		},
		{
			Name:    "nonpositive tile",
			Mutate:  func(r *Report) { r.Tiles[0] = 0 },
			WantErr: "positive",
		},
	} {
		r := validReport()
		v.Mutate(r)

		err := r.Validate()
		if v.WantErr == "" {
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", v.Name, err)
			}
			continue
		}

		if err == nil {
			t.Fatalf("%s: expected an error, got none", v.Name)
		}
		if !strings.Contains(err.Error(), v.WantErr) {
			t.Fatalf("%s: error %q does not mention %q", v.Name, err, v.WantErr)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	orig := validReport()

	encoded, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Report
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(*orig, decoded) {
		t.Fatalf("round trip changed the report:\nbefore: %+v\nafter: %+v", *orig, decoded)
	}
}

func TestWireFieldNames(t *testing.T) {
	encoded, err := json.Marshal(validReport())
	if err != nil {
		t.Fatal(err)
	}

	for _, field := range []string{`"x_labels"`, `"tiles"`, `"means"`} {
		if !strings.Contains(string(encoded), field) {
			t.Errorf("serialized report %s is missing field %s", encoded, field)
		}
	}
}

func TestMeansForTile(t *testing.T) {
	r := validReport()

	row, err := r.MeansForTile(1102)
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{-0.1, 0.05, 0.02}; !reflect.DeepEqual(row, want) {
		t.Fatalf("tile 1102: got %v, want %v", row, want)
	}

	if _, err := r.MeansForTile(2101); err == nil {
		t.Fatal("expected an error for an absent tile")
	}
}
