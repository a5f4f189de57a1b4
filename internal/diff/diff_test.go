package diff

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_EmptyComposesOverNestedDiffs(t *testing.T) {
	assert.True(t, Empty().IsEmpty())
	assert.True(t, NewList(nil).IsEmpty())

	var nilDiff *Diff
	assert.True(t, nilDiff.IsEmpty())
	assert.Equal(t, 0, nilDiff.Len())

	nestedEmpty := NewMap(map[string]Op{"links": Empty(), "aliases": NewMap(map[string]Op{"en": NewList(nil)})})
	assert.Equal(t, 2, nestedEmpty.Len())
	assert.True(t, nestedEmpty.IsEmpty())

	nestedChange := NewMap(map[string]Op{"links": NewMap(map[string]Op{"enwiki": Add{NewValue: "Berlin"}})})
	assert.False(t, nestedChange.IsEmpty())
}

func TestDiff_DropsNilOps(t *testing.T) {
	d := NewMap(map[string]Op{"a": nil, "b": Remove{OldValue: "x"}})
	assert.Equal(t, []string{"b"}, d.Keys())

	l := NewList([]Op{nil, Add{NewValue: "y"}})
	assert.Equal(t, 1, l.Len())
	assert.False(t, l.IsAssociative())
}

func TestDiff_IsImmutable(t *testing.T) {
	ops := map[string]Op{"en": Add{NewValue: "x"}}
	d := NewMap(ops)
	ops["de"] = Add{NewValue: "y"}

	assert.Equal(t, 1, d.Len())

	m := d.Map()
	delete(m, "en")
	assert.True(t, d.Has("en"))
}

func TestDiff_TypeTags(t *testing.T) {
	assert.Equal(t, TypeAdd, Add{}.Type())
	assert.Equal(t, TypeRemove, Remove{}.Type())
	assert.Equal(t, TypeChange, Change{}.Type())
	assert.Equal(t, TypeDiff, Empty().Type())
	assert.True(t, Change{}.IsAtomic())
	assert.False(t, Empty().IsAtomic())
}

func TestMaps(t *testing.T) {
	from := map[string]string{"en": "Berlin", "de": "Berlin", "fr": "Berlin"}
	to := map[string]string{"en": "Berlin", "de": "Berlin (Stadt)", "nl": "Berlijn"}

	d := Maps(from, to, func(a, b string) bool { return a == b })

	assert.Equal(t, []string{"de", "fr", "nl"}, d.Keys())
	op, _ := d.Get("de")
	assert.Equal(t, Change{OldValue: "Berlin", NewValue: "Berlin (Stadt)"}, op)
	op, _ = d.Get("fr")
	assert.Equal(t, Remove{OldValue: "Berlin"}, op)
	op, _ = d.Get("nl")
	assert.Equal(t, Add{NewValue: "Berlijn"}, op)

	assert.Equal(t, []any{"Berlijn"}, d.Adds())
	assert.Equal(t, []any{"Berlin"}, d.Removes())
	assert.Len(t, d.Changes(), 1)
}

func TestMaps_IdenticalIsEmpty(t *testing.T) {
	m := map[string]string{"en": "x"}
	assert.True(t, Maps(m, m, func(a, b string) bool { return a == b }).IsEmpty())
}

func TestPatchMap_RoundTrip(t *testing.T) {
	from := map[string]string{"en": "a", "de": "b", "fr": "c"}
	to := map[string]string{"en": "a", "de": "B", "nl": "d"}
	eq := func(a, b string) bool { return a == b }

	got, err := PatchMap(from, Maps(from, to, eq))
	require.NoError(t, err)
	assert.Equal(t, to, got)
	assert.Equal(t, "b", from["de"], "base must not be mutated")
}

func TestPatchMap_TypeMismatch(t *testing.T) {
	d := NewMap(map[string]Op{"en": Add{NewValue: 42}})
	_, err := PatchMap(map[string]string{}, d)
	assert.True(t, errors.IsTypeMismatch(err))

	nested := NewMap(map[string]Op{"en": Empty()})
	_, err = PatchMap(map[string]string{}, nested)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestLists(t *testing.T) {
	d := Lists([]string{"a", "b", "c"}, []string{"c", "d", "a"})

	assert.False(t, d.IsAssociative())
	assert.Equal(t, []Op{Remove{OldValue: "b"}, Add{NewValue: "d"}}, d.Ops())
	assert.True(t, Lists([]string{"a", "b"}, []string{"b", "a"}).IsEmpty())
}

func TestPatchList(t *testing.T) {
	from := []string{"a", "b", "c"}
	to := []string{"a", "c", "d"}

	got, err := PatchList(from, Lists(from, to))
	require.NoError(t, err)
	assert.Equal(t, to, got)

	_, err = PatchList(from, NewList([]Op{Change{OldValue: "a", NewValue: "b"}}))
	assert.True(t, errors.IsTypeMismatch(err))
}
