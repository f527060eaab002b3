package facet

// Field is a declared field: a name bound to a value. Types and
// instances register their fields explicitly; nothing is discovered by
// walking Go struct members.
// Implements: prd001-field-store R1.
type Field struct {
	Name  string
	Value any
}

// Item is one key/value pair from a store snapshot.
type Item struct {
	Key   string
	Value any
}

// Store is an ordered key/value container. Keys keep their insertion
// position; overwriting a key keeps its original position. The zero
// value is an empty store ready for use.
// Implements: prd001-field-store R1, R2, R3.
type Store struct {
	order []string
	vals  map[string]any
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{vals: make(map[string]any)}
}

// Len returns the number of keys in the store.
func (s *Store) Len() int { return len(s.order) }

// Get returns the value bound to key and whether the key is present.
func (s *Store) Get(key string) (any, bool) {
	v, ok := s.vals[key]
	return v, ok
}

// Set binds value to key. A new key is appended to the order; an
// existing key keeps its position.
func (s *Store) Set(key string, value any) {
	if s.vals == nil {
		s.vals = make(map[string]any)
	}
	if _, ok := s.vals[key]; !ok {
		s.order = append(s.order, key)
	}
	s.vals[key] = value
}

// Delete removes key from the store. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) {
	if _, ok := s.vals[key]; !ok {
		return
	}
	delete(s.vals, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Clear removes every key from the store.
func (s *Store) Clear() {
	s.order = nil
	s.vals = nil
}

// Keys returns the keys in insertion order. The slice is a copy; later
// store mutation does not affect it.
func (s *Store) Keys() []string {
	keys := make([]string, len(s.order))
	copy(keys, s.order)
	return keys
}

// Values returns the values in key insertion order. The slice is a
// copy; the values themselves are shared.
func (s *Store) Values() []any {
	vals := make([]any, 0, len(s.order))
	for _, k := range s.order {
		vals = append(vals, s.vals[k])
	}
	return vals
}

// Items returns the key/value pairs in insertion order. The slice is a
// copy; the values themselves are shared.
func (s *Store) Items() []Item {
	items := make([]Item, 0, len(s.order))
	for _, k := range s.order {
		items = append(items, Item{Key: k, Value: s.vals[k]})
	}
	return items
}
