package tinge

// Member is satisfied by the small enum types storable in a Set.
// A member's ordinal value must be below 16.
type Member interface {
	~uint8
}

// Set is a fixed-capacity set of enum members packed into a 16-bit mask.
// The zero value is the empty set. Sets only grow: members are inserted,
// never individually removed.
type Set[M Member] struct {
	bits uint16
}

// Insert returns a new set that additionally contains m.
func (s Set[M]) Insert(m M) Set[M] {
	s.bits |= 1 << m
	return s
}

// Contains reports whether m is in the set.
func (s Set[M]) Contains(m M) bool {
	return s.bits&(1<<m) != 0
}

// IsEmpty reports whether the set contains no members.
func (s Set[M]) IsEmpty() bool {
	return s.bits == 0
}

// All returns the members of the set in ascending ordinal order, which is
// declaration order for the enum types used with Set. Rendering depends on
// this order being stable.
func (s Set[M]) All() []M {
	if s.bits == 0 {
		return nil
	}
	out := make([]M, 0, 4)
	for i := uint8(0); i < 16; i++ {
		if s.bits&(1<<i) != 0 {
			out = append(out, M(i))
		}
	}
	return out
}
