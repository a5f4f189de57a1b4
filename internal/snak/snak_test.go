package snak

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	p31 = entity.MustPropertyID(31)
	p17 = entity.MustPropertyID(17)
)

func human() Snak { return NewValueSnak(p31, DataValue{Type: "wikibase-entityid", Value: "Q5"}) }

func TestSnak_HashDistinguishesContent(t *testing.T) {
	snaks := []Snak{
		human(),
		NewValueSnak(p31, DataValue{Type: "wikibase-entityid", Value: "Q6"}),
		NewValueSnak(p31, DataValue{Type: "string", Value: "Q5"}),
		NewValueSnak(p17, DataValue{Type: "wikibase-entityid", Value: "Q5"}),
		NewSomeValueSnak(p31),
		NewNoValueSnak(p31),
	}

	seen := make(map[string]int)
	for i, s := range snaks {
		h := s.Hash()
		if prev, dup := seen[h]; dup {
			t.Fatalf("snaks %d and %d share hash %s", prev, i, h)
		}
		seen[h] = i
	}
}

func TestSnak_EqualsByValue(t *testing.T) {
	assert.True(t, human().Equals(human()))
	assert.Equal(t, human().Hash(), human().Hash())
	assert.False(t, NewSomeValueSnak(p31).Equals(NewNoValueSnak(p31)))
}

func TestSnak_DataValue(t *testing.T) {
	v, ok := human().DataValue()
	require.True(t, ok)
	assert.Equal(t, "Q5", v.Value)

	_, ok = NewNoValueSnak(p31).DataValue()
	assert.False(t, ok)
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("somevalue")
	require.NoError(t, err)
	assert.Equal(t, TypeSomeValue, typ)

	_, err = ParseType("maybe")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSnakList_DropsDuplicates(t *testing.T) {
	l := NewSnakList(human(), human(), NewNoValueSnak(p17))
	assert.Equal(t, 2, l.Len())
	assert.False(t, l.Add(human()))
}

func TestSnakList_OrderInsensitiveEquality(t *testing.T) {
	a := NewSnakList(human(), NewNoValueSnak(p17))
	b := NewSnakList(NewNoValueSnak(p17), human())

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.Remove(human())
	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestSnakList_CopyIsIndependent(t *testing.T) {
	a := NewSnakList(human())
	c := a.Copy()
	c.Add(NewNoValueSnak(p17))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, c.Len())
}

func TestSnakList_NilReadsAsEmpty(t *testing.T) {
	var l *SnakList
	assert.Equal(t, 0, l.Len())
	assert.True(t, l.Equals(NewSnakList()))
	assert.Equal(t, NewSnakList().Hash(), l.Hash())
}
