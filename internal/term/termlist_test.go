package term

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermList_GetByLanguage(t *testing.T) {
	l := NewEmptyTermList()

	_, err := l.GetByLanguage("xx")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	require.NoError(t, l.SetTerm(NewTerm("xx", "Foo")))

	got, err := l.GetByLanguage("xx")
	require.NoError(t, err)
	assert.Equal(t, "Foo", got.Text)
}

func TestTermList_InvalidKey(t *testing.T) {
	l := NewEmptyTermList()

	_, err := l.GetByLanguage("")
	assert.True(t, errors.IsInvalidKey(err))
	assert.False(t, errors.IsNotFound(err))

	assert.True(t, errors.IsInvalidKey(l.RemoveByLanguage(" ")))
	assert.True(t, errors.IsInvalidKey(l.SetTerm(NewTerm("", "Foo"))))
	assert.Equal(t, 0, l.Len(), "a rejected term must not be stored")

	_, err = NewTermList(NewTerm("en", "a"), NewTerm("", "b"))
	assert.True(t, errors.IsInvalidKey(err))
}

func TestTermList_LastWriteWins(t *testing.T) {
	l, err := NewTermList(NewTerm("en", "first"), NewTerm("de", "erste"), NewTerm("en", "second"))
	require.NoError(t, err)

	assert.Equal(t, 2, l.Len())
	got, err := l.GetByLanguage("en")
	require.NoError(t, err)
	assert.Equal(t, "second", got.Text)
}

func TestTermList_RemoveIsIdempotent(t *testing.T) {
	l, err := NewTermList(NewTerm("en", "a"))
	require.NoError(t, err)

	require.NoError(t, l.RemoveByLanguage("en"))
	require.NoError(t, l.RemoveByLanguage("en"))
	require.NoError(t, l.RemoveByLanguage("nl"))
	assert.True(t, l.IsEmpty())
	assert.False(t, l.HasTermForLanguage("en"))
}

func TestTermList_DeterministicIteration(t *testing.T) {
	l, err := NewTermList(NewTerm("nl", "c"), NewTerm("de", "a"), NewTerm("en", "b"))
	require.NoError(t, err)

	assert.Equal(t, []string{"de", "en", "nl"}, l.LanguageCodes())
	assert.Equal(t, []Term{NewTerm("de", "a"), NewTerm("en", "b"), NewTerm("nl", "c")}, l.Terms())
}

func TestTermList_EqualsAndHash(t *testing.T) {
	a, err := NewTermList(NewTerm("en", "Berlin"), NewTerm("de", "Berlin"))
	require.NoError(t, err)
	b, err := NewTermList(NewTerm("de", "Berlin"), NewTerm("en", "Berlin"))
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.SetTextForLanguage("en", "Berlin, Germany"))
	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	c, err := NewTermList(NewTerm("en", "Berlin"))
	require.NoError(t, err)
	assert.False(t, a.Equals(c))
	assert.False(t, c.Equals(a))
}

func TestTermList_CopyIsIndependent(t *testing.T) {
	a, err := NewTermList(NewTerm("en", "x"))
	require.NoError(t, err)
	c := a.Copy()
	require.NoError(t, c.SetTextForLanguage("fr", "y"))

	assert.Equal(t, 1, a.Len())
	assert.Equal(t, map[string]string{"en": "x", "fr": "y"}, c.ToTextArray())
}
