package validator

// Diff is the result of comparing two key collections as sets.
// Missing and Extra are disjoint; both are empty when the sets are equal.
type Diff struct {
	Missing []string // Reference keys absent from the target, in reference order
	Extra   []string // Target keys absent from the reference, in target order
}

// Equal reports whether the two key sets were identical.
func (d Diff) Equal() bool {
	return len(d.Missing) == 0 && len(d.Extra) == 0
}

// Compare performs a set-difference analysis between the target's keys and
// the reference's keys. Duplicates within one side do not affect the
// comparison and never produce repeated entries in the result.
func Compare(target, reference []string) Diff {
	have := toSet(target)
	want := toSet(reference)

	var d Diff
	listed := make(map[string]bool)
	for _, k := range reference {
		if !have[k] && !listed[k] {
			listed[k] = true
			d.Missing = append(d.Missing, k)
		}
	}
	listed = make(map[string]bool)
	for _, k := range target {
		if !want[k] && !listed[k] {
			listed[k] = true
			d.Extra = append(d.Extra, k)
		}
	}
	return d
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
