package dssd

import "github.com/subgroups/dssd/subgroup"

/*
Entry pairs a subgroup description with the quality it was scored at when
it entered a TopK tracker.
*/
type Entry struct {
	Description subgroup.Description
	Quality     float64
}

/*
TopK retains the best j (description, quality) pairs seen over an entire
search, independently of the beam. Once full, a new entry is accepted only
if its quality strictly exceeds the minimum quality held, and acceptance
evicts the earliest-inserted entry holding that minimum; on quality ties
the newcomer is rejected. Evicting the earliest-inserted minimum is a
deliberate deterministic rule so that a fixed insertion order always
yields the same retained set.

TopK never deduplicates: structurally identical descriptions may coexist
in it. Deduplication happens once, on the final retained set.
*/
type TopK struct {
	j       int
	entries []Entry
}

/*
NewTopK takes a capacity j and returns an empty tracker that will never
hold more than j entries.
*/
func NewTopK(j int) *TopK {
	return &TopK{j: j}
}

/*
Add takes a description and its quality and offers them to the tracker,
returning whether they were retained.
*/
func (r *TopK) Add(d subgroup.Description, quality float64) bool {
	if len(r.entries) < r.j {
		r.entries = append(r.entries, Entry{d, quality})
		return true
	}
	min := 0
	for i, e := range r.entries {
		if e.Quality < r.entries[min].Quality {
			min = i
		}
	}
	if quality <= r.entries[min].Quality {
		return false
	}
	r.entries = append(r.entries[:min], r.entries[min+1:]...)
	r.entries = append(r.entries, Entry{d, quality})
	return true
}

/*
Len returns the number of entries currently retained.
*/
func (r *TopK) Len() int {
	return len(r.entries)
}

/*
Entries returns a copy of the retained entries in insertion order
(eviction preserves the relative order of survivors).
*/
func (r *TopK) Entries() []Entry {
	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}
