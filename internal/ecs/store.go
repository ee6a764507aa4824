package ecs

import "sort"

// Store is a typed component table keyed by entity.
// Components are held by pointer so systems mutate them in place and later
// systems in the same frame observe the change.
type Store[T any] struct {
	items map[EntityID]*T
}

// NewStore creates an empty component table
func NewStore[T any]() *Store[T] {
	return &Store[T]{items: make(map[EntityID]*T)}
}

// Set attaches (or replaces) the component and returns a reference to it
func (s *Store[T]) Set(id EntityID, v T) *T {
	p := new(T)
	*p = v
	s.items[id] = p
	return p
}

// Get returns the component reference for id
func (s *Store[T]) Get(id EntityID) (*T, bool) {
	p, ok := s.items[id]
	return p, ok
}

// Has reports whether id carries this component
func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.items[id]
	return ok
}

// Delete detaches the component from id
func (s *Store[T]) Delete(id EntityID) {
	delete(s.items, id)
}

// Len returns the number of entities carrying this component
func (s *Store[T]) Len() int {
	return len(s.items)
}

// IDs returns the owning entities in ascending order
func (s *Store[T]) IDs() []EntityID {
	ids := make([]EntityID, 0, len(s.items))
	for id := range s.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Membership is satisfied by every Store
type Membership interface {
	Has(id EntityID) bool
}

// Driver is a Membership that can also enumerate its entities
type Driver interface {
	Membership
	IDs() []EntityID
}

// Join returns, in ascending order, every entity of driver that is also
// present in all of the other tables. Pick the smallest table as driver.
func Join(driver Driver, others ...Membership) []EntityID {
	ids := driver.IDs()
	out := ids[:0]
next:
	for _, id := range ids {
		for _, o := range others {
			if !o.Has(id) {
				continue next
			}
		}
		out = append(out, id)
	}
	return out
}
