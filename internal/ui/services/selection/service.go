package selection

// None is the index when nothing is selected
const None = -1

// Service tracks the highlighted row of a list whose length changes as the
// search query does. The index always stays within [None, count-1]; moving
// past either end clamps rather than wraps.
type Service struct {
	index int
	count int
}

// NewService creates a service with nothing selected
func NewService() *Service {
	return &Service{index: None}
}

// Index returns the selected index or None
func (s *Service) Index() int {
	return s.index
}

// Count returns the list length the index is clamped against
func (s *Service) Count() int {
	return s.count
}

// HasSelection reports whether a row is selected
func (s *Service) HasSelection() bool {
	return s.index >= 0 && s.index < s.count
}

// SetCount updates the list length and clamps the index into range
func (s *Service) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	s.count = n
	s.index = s.clamp(s.index)
}

// Down moves to min(index+1, count-1)
func (s *Service) Down() {
	s.index = s.clamp(s.index + 1)
}

// Up moves to max(index-1, None)
func (s *Service) Up() {
	s.index = s.clamp(s.index - 1)
}

// Set selects index i. Out-of-range values are ignored and reported false.
func (s *Service) Set(i int) bool {
	if i < None || i >= s.count {
		return false
	}
	s.index = i
	return true
}

// Reset clears the selection
func (s *Service) Reset() {
	s.index = None
}

func (s *Service) clamp(i int) int {
	if i > s.count-1 {
		i = s.count - 1
	}
	if i < None {
		i = None
	}
	return i
}
