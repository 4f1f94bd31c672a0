package manifest

import "sort"

// Result holds the outcome of comparing two manifests.
// The three sets are disjoint by construction.
type Result struct {
	// Missing are keys present in source but not in destination
	Missing []string

	// Extra are keys present in destination but not in source
	Extra []string

	// Mismatched are keys present in both whose digests differ
	Mismatched []string
}

// Clean reports whether the two manifests matched exactly
func (r *Result) Clean() bool {
	return len(r.Missing) == 0 && len(r.Extra) == 0 && len(r.Mismatched) == 0
}

// Total returns the number of differing keys
func (r *Result) Total() int {
	return len(r.Missing) + len(r.Extra) + len(r.Mismatched)
}

// Compare computes the set differences between two manifests.
// Pure function; neither input is modified. Slices are sorted so output
// is stable even though manifests are unordered in memory.
func Compare(source, dest Manifest) *Result {
	result := &Result{
		Missing:    []string{},
		Extra:      []string{},
		Mismatched: []string{},
	}

	for key, srcDigest := range source {
		destDigest, ok := dest[key]
		if !ok {
			result.Missing = append(result.Missing, key)
			continue
		}
		if srcDigest != destDigest {
			result.Mismatched = append(result.Mismatched, key)
		}
	}

	for key := range dest {
		if _, ok := source[key]; !ok {
			result.Extra = append(result.Extra, key)
		}
	}

	sort.Strings(result.Missing)
	sort.Strings(result.Extra)
	sort.Strings(result.Mismatched)

	return result
}
