package textdiff

// Edit script normalization.
//
// The bidirectional search finds one of possibly many minimal scripts.
// Downstream pairing depends on the script's shape, not just its
// counts, so the choice must be canonical: slideChanges moves every
// run of changed elements to the earliest position that preserves the
// script. A run can move up by one when the unchanged element directly
// above it equals the run's last element; sliding swaps them without
// changing which content is matched.

// slideChanges normalizes the change marks for one side in place.
// Runs that meet another changed run while sliding merge with it and
// continue as one.
func slideChanges(changed []bool, keys []string) {
	i := 0
	for i < len(changed) {
		if !changed[i] {
			i++
			continue
		}

		start, end := i, i
		for end < len(changed) && changed[end] {
			end++
		}

		for start > 0 && keys[start-1] == keys[end-1] {
			changed[start-1] = true
			changed[end-1] = false
			start--
			end--
			for start > 0 && changed[start-1] {
				start--
			}
		}

		i = end
	}
}
