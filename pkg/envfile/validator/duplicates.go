package validator

// Duplicates returns the keys that appear more than once in keys. Each
// duplicated key is listed exactly once, however many times it repeats, in
// the order the duplication is first detected while scanning.
func Duplicates(keys []string) []string {
	counts := make(map[string]int, len(keys))
	var dups []string
	for _, k := range keys {
		counts[k]++
		if counts[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}
