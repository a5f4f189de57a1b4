package entity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ppiankov/wbmodel/internal/errors"
)

// Entity types
const (
	TypeItem     = "item"
	TypeProperty = "property"
)

// EntityID identifies an entity of some type
type EntityID interface {
	EntityType() string
	Serialization() string // e.g. "Q42", "P31"
	NumericID() int64
}

// ItemID identifies an item (Q-prefixed)
type ItemID struct {
	numeric int64
}

// NewItemID creates an ItemID from its numeric part
func NewItemID(numeric int64) (ItemID, error) {
	if numeric <= 0 {
		return ItemID{}, errors.InvalidArgumentf("item id must be positive, got %d", numeric)
	}
	return ItemID{numeric: numeric}, nil
}

// MustItemID is NewItemID that panics on invalid input
func MustItemID(numeric int64) ItemID {
	id, err := NewItemID(numeric)
	if err != nil {
		panic(err)
	}
	return id
}

func (id ItemID) EntityType() string    { return TypeItem }
func (id ItemID) NumericID() int64      { return id.numeric }
func (id ItemID) Serialization() string { return fmt.Sprintf("Q%d", id.numeric) }
func (id ItemID) String() string        { return id.Serialization() }

// IsZero reports whether the id was never assigned
func (id ItemID) IsZero() bool { return id.numeric == 0 }

// Equals compares two item ids
func (id ItemID) Equals(other ItemID) bool { return id.numeric == other.numeric }

// PropertyID identifies a property (P-prefixed)
type PropertyID struct {
	numeric int64
}

// NewPropertyID creates a PropertyID from its numeric part
func NewPropertyID(numeric int64) (PropertyID, error) {
	if numeric <= 0 {
		return PropertyID{}, errors.InvalidArgumentf("property id must be positive, got %d", numeric)
	}
	return PropertyID{numeric: numeric}, nil
}

// MustPropertyID is NewPropertyID that panics on invalid input
func MustPropertyID(numeric int64) PropertyID {
	id, err := NewPropertyID(numeric)
	if err != nil {
		panic(err)
	}
	return id
}

func (id PropertyID) EntityType() string    { return TypeProperty }
func (id PropertyID) NumericID() int64      { return id.numeric }
func (id PropertyID) Serialization() string { return fmt.Sprintf("P%d", id.numeric) }
func (id PropertyID) String() string        { return id.Serialization() }

// Equals compares two property ids
func (id PropertyID) Equals(other PropertyID) bool { return id.numeric == other.numeric }

// ParseID parses a serialized entity id such as "Q42" or "p31"
func ParseID(serialization string) (EntityID, error) {
	s := strings.TrimSpace(serialization)
	if len(s) < 2 {
		return nil, errors.InvalidArgumentf("malformed entity id %q", serialization)
	}

	numeric, err := strconv.ParseInt(s[1:], 10, 64)
	if err != nil || numeric <= 0 || s[1] == '+' {
		return nil, errors.InvalidArgumentf("malformed entity id %q", serialization)
	}

	switch s[0] {
	case 'Q', 'q':
		return ItemID{numeric: numeric}, nil
	case 'P', 'p':
		return PropertyID{numeric: numeric}, nil
	default:
		return nil, errors.InvalidArgumentf("unknown entity id prefix in %q", serialization)
	}
}

// ParseItemID parses a serialized item id
func ParseItemID(serialization string) (ItemID, error) {
	id, err := ParseID(serialization)
	if err != nil {
		return ItemID{}, err
	}
	itemID, ok := id.(ItemID)
	if !ok {
		return ItemID{}, errors.TypeMismatchf("%s is not an item id", id.Serialization())
	}
	return itemID, nil
}

// ParsePropertyID parses a serialized property id
func ParsePropertyID(serialization string) (PropertyID, error) {
	id, err := ParseID(serialization)
	if err != nil {
		return PropertyID{}, err
	}
	propertyID, ok := id.(PropertyID)
	if !ok {
		return PropertyID{}, errors.TypeMismatchf("%s is not a property id", id.Serialization())
	}
	return propertyID, nil
}
