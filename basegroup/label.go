package basegroup

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Parse is the inverse of Group.Name. It accepts a single position ("3") or
// an inclusive range ("10-14").
func Parse(label string) (Group, error) {
	lower, upper, ranged := strings.Cut(label, "-")

	lo, err := strconv.Atoi(lower)
	if err != nil {
		return Group{}, pfx.Err(fmt.Errorf("label %q: %w", label, err))
	}

	hi := lo
	if ranged {
		if hi, err = strconv.Atoi(upper); err != nil {
			return Group{}, pfx.Err(fmt.Errorf("label %q: %w", label, err))
		}
	}

	if lo < 1 {
		return Group{}, fmt.Errorf("label %q: base positions are 1-based", label)
	}
	if hi < lo {
		return Group{}, fmt.Errorf("label %q: range ends before it starts", label)
	}

	return Group{Lower: lo, Upper: hi}, nil
}

// ValidateLabels confirms that a report's x_labels describe a coherent
// bucketing: every label parses, the first bucket starts at base 1, and each
// bucket picks up exactly where the previous one ended.
func ValidateLabels(labels []string) error {
	previousUpper := 0

	for i, label := range labels {
		g, err := Parse(label)
		if err != nil {
			return pfx.Err(err)
		}

		if g.Lower != previousUpper+1 {
			return fmt.Errorf("label %q at index %d starts at base %d but the previous bucket ended at %d", label, i, g.Lower, previousUpper)
		}

		previousUpper = g.Upper
	}

	return nil
}
