package properties

import (
	"sort"
	"strings"
)

// Store maps property keys to their textual values.
type Store struct {
	data map[string]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Len returns the number of properties.
func (s *Store) Len() int {
	return len(s.data)
}

// Exists reports whether key is set.
func (s *Store) Exists(key string) bool {
	_, ok := s.data[key]
	return ok
}

// Get returns the value of key, or empty text when it is absent.
func (s *Store) Get(key string) string {
	return s.data[key]
}

// GetDefault returns the value of key, or def when it is absent.
func (s *Store) GetDefault(key, def string) string {
	if v, ok := s.data[key]; ok {
		return v
	}
	return def
}

// Set inserts or overwrites key.
func (s *Store) Set(key, value string) {
	s.data[key] = value
}

// Remove deletes key and reports whether it was present.
func (s *Store) Remove(key string) bool {
	if _, ok := s.data[key]; !ok {
		return false
	}
	delete(s.data, key)
	return true
}

// Keys returns a sorted snapshot of the property names.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subset returns a new Store holding every property whose key starts with
// prefix, with the prefix removed from the key.
func (s *Store) Subset(prefix string) *Store {
	out := NewStore()
	for k, v := range s.data {
		if rest, ok := strings.CutPrefix(k, prefix); ok {
			out.data[rest] = v
		}
	}
	return out
}

// Clone returns an independent copy of s.
func (s *Store) Clone() *Store {
	out := &Store{data: make(map[string]string, len(s.data))}
	for k, v := range s.data {
		out.data[k] = v
	}
	return out
}

// Map returns a copy of the properties as a plain map.
func (s *Store) Map() map[string]string {
	return s.Clone().data
}
