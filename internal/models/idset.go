package models

// IDSet is a set of task identifiers.
type IDSet map[int]struct{}

// NewIDSet creates a set containing the given IDs.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts an ID into the set. Safe to call on a non-nil set only;
// callers construct sets via NewIDSet.
func (s IDSet) Add(id int) {
	s[id] = struct{}{}
}

// Remove deletes an ID from the set. Removing an absent ID is a no-op.
func (s IDSet) Remove(id int) {
	delete(s, id)
}

// Has reports whether the ID is in the set. A nil set contains nothing.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of IDs in the set.
func (s IDSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s IDSet) Clone() IDSet {
	out := make(IDSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}
