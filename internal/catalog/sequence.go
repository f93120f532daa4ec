package catalog

// Sequence hands out strictly increasing product ids starting at 1.
// The zero value is ready to use. A Sequence is owned by whoever builds catalogs with it:
// reusing one across builds keeps ids unique, a fresh one restarts at 1.
type Sequence struct {
	last int
}

// NewSequence returns a sequence whose first id is 1.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next returns the next id.
func (s *Sequence) Next() int {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or 0 if none was issued.
func (s *Sequence) Last() int {
	return s.last
}
