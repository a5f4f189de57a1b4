package entity

import (
	"sort"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// ItemIDSet is an immutable, unordered set of item ids. Duplicates given to
// the constructor collapse to one entry. A nil *ItemIDSet behaves as empty.
type ItemIDSet struct {
	ids map[int64]ItemID
}

// NewItemIDSet builds a set from ids. Any element that is not an item id
// fails the whole construction with ErrTypeMismatch.
func NewItemIDSet(ids ...EntityID) (*ItemIDSet, error) {
	set := make(map[int64]ItemID, len(ids))
	for i, id := range ids {
		var itemID ItemID
		switch v := id.(type) {
		case ItemID:
			itemID = v
		case *ItemID:
			if v == nil {
				return nil, errors.TypeMismatchf("ItemIDSet element %d is a nil ItemID", i)
			}
			itemID = *v
		default:
			return nil, errors.TypeMismatchf("ItemIDSet can only contain item ids, element %d is %T", i, id)
		}
		set[itemID.NumericID()] = itemID
	}
	return &ItemIDSet{ids: set}, nil
}

// ItemIDSetOf is NewItemIDSet for statically typed input, which cannot fail
func ItemIDSetOf(ids ...ItemID) *ItemIDSet {
	set := make(map[int64]ItemID, len(ids))
	for _, id := range ids {
		set[id.NumericID()] = id
	}
	return &ItemIDSet{ids: set}
}

// Len returns the number of distinct ids
func (s *ItemIDSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.ids)
}

// Has reports whether id is in the set
func (s *ItemIDSet) Has(id ItemID) bool {
	if s == nil {
		return false
	}
	_, ok := s.ids[id.NumericID()]
	return ok
}

// IDs returns the ids ordered by numeric id
func (s *ItemIDSet) IDs() []ItemID {
	if s == nil {
		return nil
	}
	out := make([]ItemID, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NumericID() < out[j].NumericID() })
	return out
}

// Serializations returns the serialized ids ordered by numeric id
func (s *ItemIDSet) Serializations() []string {
	ids := s.IDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Serialization()
	}
	return out
}

// Equals reports whether both sets hold the same ids
func (s *ItemIDSet) Equals(other *ItemIDSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, id := range s.IDs() {
		if !other.Has(id) {
			return false
		}
	}
	return true
}

// Hash returns a digest independent of construction order
func (s *ItemIDSet) Hash() string {
	return hashing.Sum(s.Serializations()...)
}
