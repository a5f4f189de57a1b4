// Package snak holds the atomic value assertions of the data model.
package snak

import (
	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// Type classifies a snak
type Type string

const (
	TypeValue     Type = "value"     // property has the given value
	TypeSomeValue Type = "somevalue" // property has an unknown value
	TypeNoValue   Type = "novalue"   // property has no value
)

// ParseType validates a snak type name
func ParseType(name string) (Type, error) {
	switch t := Type(name); t {
	case TypeValue, TypeSomeValue, TypeNoValue:
		return t, nil
	default:
		return "", errors.InvalidArgumentf("unknown snak type %q", name)
	}
}

// DataValue is a typed value, e.g. {"string", "Berlin"} or {"wikibase-entityid", "Q64"}
type DataValue struct {
	Type  string `json:"type" yaml:"type"`
	Value string `json:"value" yaml:"value"`
}

// Snak asserts something about a property. Snaks are comparable values.
type Snak struct {
	snakType Type
	property entity.PropertyID
	value    DataValue
}

// NewValueSnak creates a snak stating property has value
func NewValueSnak(property entity.PropertyID, value DataValue) Snak {
	return Snak{snakType: TypeValue, property: property, value: value}
}

// NewSomeValueSnak creates a snak stating property has an unknown value
func NewSomeValueSnak(property entity.PropertyID) Snak {
	return Snak{snakType: TypeSomeValue, property: property}
}

// NewNoValueSnak creates a snak stating property has no value
func NewNoValueSnak(property entity.PropertyID) Snak {
	return Snak{snakType: TypeNoValue, property: property}
}

func (s Snak) Type() Type                    { return s.snakType }
func (s Snak) PropertyID() entity.PropertyID { return s.property }

// DataValue returns the value of a value snak; ok is false for other types
func (s Snak) DataValue() (DataValue, bool) {
	return s.value, s.snakType == TypeValue
}

// Hash digests type, property and value
func (s Snak) Hash() string {
	return hashing.Sum("snak", string(s.snakType), s.property.Serialization(), s.value.Type, s.value.Value)
}

// Equals compares two snaks by content
func (s Snak) Equals(other Snak) bool {
	return s == other
}
