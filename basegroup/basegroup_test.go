package basegroup

import (
	"reflect"
	"testing"
)

func TestUngrouped(t *testing.T) {
	got := Labels(Ungrouped(3))
	if want := []string{"1", "2", "3"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLinearShortReadsStayUngrouped(t *testing.T) {
	groups, err := Linear(75)
	if err != nil {
		t.Fatal(err)
	}

	if len(groups) != 75 {
		t.Fatalf("got %d groups, want 75", len(groups))
	}
	for i, g := range groups {
		if g.Lower != i+1 || g.Upper != i+1 {
			t.Fatalf("group %d is %+v, want a single base", i, g)
		}
	}
}

func TestLinearGrouping(t *testing.T) {
	groups, err := Linear(100)
	if err != nil {
		t.Fatal(err)
	}

	labels := Labels(groups)

	// The first nine bases are never grouped.
	for i := 0; i < 9; i++ {
		if want := (Group{Lower: i + 1, Upper: i + 1}); groups[i] != want {
			t.Fatalf("group %d is %+v, want %+v", i, groups[i], want)
		}
	}

	if got, want := labels[9], "10-11"; got != want {
		t.Errorf("first grouped label: got %q, want %q", got, want)
	}
	if got, want := labels[len(labels)-1], "100"; got != want {
		t.Errorf("final label: got %q, want %q", got, want)
	}
	if got, want := len(labels), 55; got != want {
		t.Errorf("got %d labels, want %d", got, want)
	}
}

func TestLinearWideInterval(t *testing.T) {
	groups, err := Linear(1000)
	if err != nil {
		t.Fatal(err)
	}

	labels := Labels(groups)

	// A 1kb read needs a 20bp interval; the bucket holding base 10 is trimmed
	// so that later buckets start on a multiple of the interval.
	if got, want := labels[9], "10-19"; got != want {
		t.Errorf("trimmed bucket: got %q, want %q", got, want)
	}
	if got, want := labels[10], "20-39"; got != want {
		t.Errorf("first full bucket: got %q, want %q", got, want)
	}
	if got, want := labels[len(labels)-1], "1000"; got != want {
		t.Errorf("final label: got %q, want %q", got, want)
	}
}

func TestExponential(t *testing.T) {
	labels := Labels(Exponential(200))

	if got, want := labels[8], "9"; got != want {
		t.Errorf("label 8: got %q, want %q", got, want)
	}
	if got, want := labels[9], "10-14"; got != want {
		t.Errorf("label 9: got %q, want %q", got, want)
	}
	if got, want := labels[len(labels)-1], "200"; got != want {
		t.Errorf("final label: got %q, want %q", got, want)
	}
}

func TestLabelsAreContiguous(t *testing.T) {
	for _, maxLength := range []int{1, 75, 76, 100, 301, 1000, 5000} {
		groups, err := Linear(maxLength)
		if err != nil {
			t.Fatal(err)
		}

		if err := ValidateLabels(Labels(groups)); err != nil {
			t.Errorf("length %d: %v", maxLength, err)
		}
		if last := groups[len(groups)-1]; last.Upper != maxLength {
			t.Errorf("length %d: final group %+v does not reach the last base", maxLength, last)
		}
	}
}

func TestParse(t *testing.T) {
	type expectation struct {
		Label string
		Group Group
		Bad   bool
	}

	for _, v := range []expectation{
		{Label: "1", Group: Group{1, 1}},
		{Label: "10-14", Group: Group{10, 14}},
		{Label: "0", Bad: true},
		{Label: "5-2", Bad: true},
		{Label: "a-b", Bad: true},
		{Label: "", Bad: true},
	} {
		g, err := Parse(v.Label)
		if v.Bad {
			if err == nil {
				t.Errorf("Parse(%q): expected an error", v.Label)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", v.Label, err)
			continue
		}
		if g != v.Group {
			t.Errorf("Parse(%q): got %+v, want %+v", v.Label, g, v.Group)
		}
	}
}

func TestValidateLabelsRejectsGaps(t *testing.T) {
	if err := ValidateLabels([]string{"1", "2", "4-6"}); err == nil {
		t.Fatal("expected an error for a gap between buckets")
	}
	if err := ValidateLabels([]string{"2", "3"}); err == nil {
		t.Fatal("expected an error for a bucketing that skips base 1")
	}
}
