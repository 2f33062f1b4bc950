package holiday

// Holiday is one national holiday entry for a calendar year.
type Holiday struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"date"`
	Name string `json:"name,omitempty"`
}

// Set is a membership index of holiday date keys ("YYYY-MM-DD").
type Set map[string]struct{}

// NewSet builds a Set from a holiday list. Date keys are taken verbatim;
// callers must normalize them first.
func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date] = struct{}{}
	}
	return s
}

// Contains reports whether the given date key is a national holiday.
func (s Set) Contains(dateKey string) bool {
	_, ok := s[dateKey]
	return ok
}
