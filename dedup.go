package dssd

import "github.com/subgroups/dssd/subgroup"

/*
Dedupe takes a slice of subgroup descriptions and returns a new slice with
structural duplicates removed, keeping the first occurrence of each and
preserving first-seen order. Two descriptions are duplicates when their
condition sets are equal regardless of condition order.
*/
func Dedupe(descriptions []subgroup.Description) []subgroup.Description {
	unique := make([]subgroup.Description, 0, len(descriptions))
	seen := make(map[string]bool, len(descriptions))
	for _, d := range descriptions {
		key := d.Key()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, d)
	}
	return unique
}
