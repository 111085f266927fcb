package program

// SeenSet tracks session identifiers already emitted across all days of a run.
// It is not safe for concurrent use; the catalog builder owns it for the whole run.
type SeenSet struct {
	ids map[string]struct{}
}

// NewSeenSet creates an empty SeenSet
func NewSeenSet() *SeenSet {
	return &SeenSet{ids: make(map[string]struct{})}
}

// Add records id and reports whether it was new
func (s *SeenSet) Add(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether id was already recorded
func (s *SeenSet) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of recorded identifiers
func (s *SeenSet) Len() int {
	return len(s.ids)
}
