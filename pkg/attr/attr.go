package attr

// Attr is a single attribute.
type Attr struct {
	Key   string
	Value any
}

// Set is an ordered attribute set. Keys are unique; setting an existing
// key replaces its value in place.
type Set []Attr

// New builds a Set from alternating key/value arguments:
//
//	attr.New("class", "btn", "disabled", true)
//
// A trailing key without a value is set to true. Non-string keys panic.
func New(pairs ...any) Set {
	s := make(Set, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic("attr.New: key must be a string")
		}
		var value any = true
		if i+1 < len(pairs) {
			value = pairs[i+1]
		}
		s.Set(key, value)
	}
	return s
}

// Set sets key to value, replacing an existing entry in place.
func (s *Set) Set(key string, value any) {
	if key == "" {
		return
	}
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, Attr{Key: key, Value: value})
}

// Add merges attributes into the set in order.
func (s *Set) Add(attrs ...Attr) {
	for _, a := range attrs {
		s.Set(a.Key, a.Value)
	}
}

// Get returns the value stored for key.
func (s Set) Get(key string) (any, bool) {
	for _, a := range s {
		if a.Key == key {
			return a.Value, true
		}
	}
	return nil, false
}

// Delete removes key from the set, keeping the order of the rest.
func (s *Set) Delete(key string) {
	for i, a := range *s {
		if a.Key == key {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// Len returns the number of attributes, including ones that will be
// omitted from output.
func (s Set) Len() int {
	return len(s)
}

// Clone returns a copy of the set that shares no storage with s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	out := make(Set, len(s))
	copy(out, s)
	return out
}
