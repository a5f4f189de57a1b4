package term

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAliasGroup_Normalizes(t *testing.T) {
	g := NewAliasGroup("en", []string{" Foo ", "", "Bar", "Foo", "  "})

	assert.Equal(t, []string{"Foo", "Bar"}, g.Aliases())
	assert.Equal(t, 2, g.Len())
	assert.True(t, NewAliasGroup("en", nil).IsEmpty())
}

func TestAliasGroup_EqualsIsOrderSensitive(t *testing.T) {
	a := NewAliasGroup("en", []string{"a", "b"})

	assert.True(t, a.Equals(NewAliasGroup("en", []string{"a", "b"})))
	assert.False(t, a.Equals(NewAliasGroup("en", []string{"b", "a"})))
	assert.False(t, a.Equals(NewAliasGroup("de", []string{"a", "b"})))
}

func TestAliasGroupList_EmptyGroupRemovesEntry(t *testing.T) {
	l, err := NewAliasGroupList(
		NewAliasGroup("en", []string{"Foo"}),
		NewAliasGroup("de", []string{"Bar"}),
	)
	require.NoError(t, err)
	require.Equal(t, 2, l.Len())
	require.True(t, l.HasGroupForLanguage("en"))

	require.NoError(t, l.SetGroup(NewAliasGroup("en", []string{})))

	assert.Equal(t, 1, l.Len())
	assert.False(t, l.HasGroupForLanguage("en"))
	_, err = l.GetByLanguage("en")
	assert.True(t, errors.IsNotFound(err))
}

func TestAliasGroupList_EmptyGroupsNeverStored(t *testing.T) {
	l, err := NewAliasGroupList(NewAliasGroup("en", nil))
	require.NoError(t, err)
	assert.True(t, l.IsEmpty())

	require.NoError(t, l.SetAliasesForLanguage("fr", []string{" "}))
	assert.True(t, l.IsEmpty())
}

func TestAliasGroupList_InvalidKey(t *testing.T) {
	l := NewEmptyAliasGroupList()

	_, err := l.GetByLanguage("")
	assert.True(t, errors.IsInvalidKey(err))
	assert.True(t, errors.IsInvalidKey(l.RemoveByLanguage("")))
	assert.True(t, errors.IsInvalidKey(l.SetAliasesForLanguage("", []string{"x"})))
	assert.False(t, l.HasGroupForLanguage(""))
}

func TestAliasGroupList_LastWriteWins(t *testing.T) {
	l := NewEmptyAliasGroupList()
	require.NoError(t, l.SetAliasesForLanguage("en", []string{"a"}))
	require.NoError(t, l.SetAliasesForLanguage("en", []string{"b", "c"}))

	g, err := l.GetByLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, g.Aliases())
	assert.Equal(t, 1, l.Len())
}

func TestAliasGroupList_EqualsAndHash(t *testing.T) {
	a, err := NewAliasGroupList(NewAliasGroup("en", []string{"a"}), NewAliasGroup("de", []string{"b"}))
	require.NoError(t, err)
	b, err := NewAliasGroupList(NewAliasGroup("de", []string{"b"}), NewAliasGroup("en", []string{"a"}))
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.SetAliasesForLanguage("de", []string{"b", "c"}))
	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestAliasGroupList_RemoveIsIdempotent(t *testing.T) {
	l, err := NewAliasGroupList(NewAliasGroup("en", []string{"a"}))
	require.NoError(t, err)

	require.NoError(t, l.RemoveByLanguage("en"))
	require.NoError(t, l.RemoveByLanguage("en"))
	assert.Equal(t, 0, l.Len())
}

func TestAliasGroupList_Groups(t *testing.T) {
	l, err := NewAliasGroupList(NewAliasGroup("nl", []string{"z"}), NewAliasGroup("de", []string{"y"}))
	require.NoError(t, err)

	groups := l.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "de", groups[0].LanguageCode())
	assert.Equal(t, map[string][]string{"de": {"y"}, "nl": {"z"}}, l.ToTextArray())
}
