// Package basegroup implements the base-position bucketing policy used by
// FastQC-style quality reports. Short reads get one bucket per base; longer
// reads get fixed-width buckets chosen so that the report keeps fewer than 75
// buckets in total. The bucket labels produced here are the x_labels that
// appear in the per-tile quality block.
package basegroup

import (
	"fmt"
	"strconv"
)

// Group is one inclusive run of base positions, 1-based on both ends.
type Group struct {
	Lower int
	Upper int
}

// Name renders the group the way the report labels it: the bare position for
// a single-base group, "lower-upper" otherwise.
func (g Group) Name() string {
	if g.Lower == g.Upper {
		return strconv.Itoa(g.Lower)
	}

	return fmt.Sprintf("%d-%d", g.Lower, g.Upper)
}

// Ungrouped returns one group per base position.
func Ungrouped(maxLength int) []Group {
	groups := make([]Group, 0, maxLength)
	for base := 1; base <= maxLength; base++ {
		groups = append(groups, Group{Lower: base, Upper: base})
	}

	return groups
}

// linearInterval finds the smallest interval from {2,5,10}*10^k that keeps
// the total bucket count below 75 for a read of the given length, where the
// first 9 bases always stay ungrouped.
func linearInterval(length int) (int, error) {
	baseValues := []int{2, 5, 10}

	for multiplier := 1; multiplier < 10000000; multiplier *= 10 {
		for _, b := range baseValues {
			interval := b * multiplier

			groupCount := 9 + (length-9)/interval
			if (length-9)%interval != 0 {
				groupCount++
			}

			if groupCount < 75 {
				return interval, nil
			}
		}
	}

	return 0, fmt.Errorf("couldn't find a sensible interval grouping for length %d", length)
}

// Linear buckets positions 1..maxLength with the standard policy: everything
// ungrouped through 75 bases, and beyond that the first 9 bases ungrouped
// followed by evenly-spaced buckets of width chosen by linearInterval. The
// bucket containing position 10 is trimmed so that later buckets start on a
// multiple of the interval.
func Linear(maxLength int) ([]Group, error) {
	if maxLength <= 75 {
		return Ungrouped(maxLength), nil
	}

	interval, err := linearInterval(maxLength)
	if err != nil {
		return nil, err
	}

	var groups []Group
	for startingBase := 1; startingBase <= maxLength; {
		endBase := startingBase + interval - 1

		if startingBase < 10 {
			endBase = startingBase
		}

		if startingBase == 10 && interval > 10 {
			endBase = interval - 1
		}

		if endBase > maxLength {
			endBase = maxLength
		}

		groups = append(groups, Group{Lower: startingBase, Upper: endBase})

		switch {
		case startingBase < 10:
			startingBase++
		case startingBase == 10 && interval > 10:
			startingBase = interval
		default:
			startingBase += interval
		}
	}

	return groups, nil
}

// Exponential buckets positions with the legacy policy of progressively wider
// buckets, widening at fixed positions once the read is long enough to need
// them.
func Exponential(maxLength int) []Group {
	var groups []Group

	startingBase := 1
	interval := 1
	for startingBase <= maxLength {
		endBase := startingBase + interval - 1
		if endBase > maxLength {
			endBase = maxLength
		}

		groups = append(groups, Group{Lower: startingBase, Upper: endBase})

		startingBase += interval

		switch {
		case startingBase == 10 && maxLength > 75:
			interval = 5
		case startingBase == 50 && maxLength > 200:
			interval = 10
		case startingBase == 100 && maxLength > 300:
			interval = 50
		case startingBase == 500 && maxLength > 1000:
			interval = 100
		case startingBase == 1000 && maxLength > 2000:
			interval = 500
		}
	}

	return groups
}

// Labels renders a group list into the label strings used for x_labels.
func Labels(groups []Group) []string {
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Name()
	}

	return labels
}
