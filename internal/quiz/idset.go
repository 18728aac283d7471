package quiz

import "encoding/json"

// IDSet is an insertion-ordered set of question ids. It serializes as a
// JSON array and deserializes back into a set, so persisted bookmarks and
// wrong-answer lists survive save/load cycles with stable ordering.
type IDSet struct {
	order  []string
	member map[string]struct{}
}

// NewIDSet creates a set containing the given ids in order.
func NewIDSet(ids ...string) *IDSet {
	s := &IDSet{member: make(map[string]struct{})}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id, reporting whether it was not already present.
func (s *IDSet) Add(id string) bool {
	if _, ok := s.member[id]; ok {
		return false
	}
	s.member[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deletes id, reporting whether it was present.
func (s *IDSet) Remove(id string) bool {
	if _, ok := s.member[id]; !ok {
		return false
	}
	delete(s.member, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Has reports whether id is in the set.
func (s *IDSet) Has(id string) bool {
	_, ok := s.member[id]
	return ok
}

// Len returns the number of ids in the set.
func (s *IDSet) Len() int {
	return len(s.order)
}

// Values returns the ids in insertion order as a fresh slice.
func (s *IDSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// MarshalJSON serializes the set as an ordered array.
func (s *IDSet) MarshalJSON() ([]byte, error) {
	if s == nil || len(s.order) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s.order)
}

// UnmarshalJSON reconstructs the set from an ordered array, dropping
// duplicates.
func (s *IDSet) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	s.order = nil
	s.member = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return nil
}
