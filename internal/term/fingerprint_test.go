package term

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullFingerprint(t *testing.T) *Fingerprint {
	t.Helper()
	f := NewEmptyFingerprint()
	require.NoError(t, f.SetLabel("en", "Douglas Adams"))
	require.NoError(t, f.SetDescription("en", "English writer"))
	require.NoError(t, f.SetAliasGroup("en", []string{"DNA"}))
	return f
}

func TestFingerprint_NewEmpty(t *testing.T) {
	f := NewEmptyFingerprint()
	assert.True(t, f.IsEmpty())

	require.NoError(t, f.SetLabel("en", "x"))
	assert.False(t, f.IsEmpty())
}

func TestFingerprint_IsEmptyRequiresAllThree(t *testing.T) {
	setters := map[string]func(*Fingerprint) error{
		"label":       func(f *Fingerprint) error { return f.SetLabel("en", "x") },
		"description": func(f *Fingerprint) error { return f.SetDescription("en", "x") },
		"aliases":     func(f *Fingerprint) error { return f.SetAliasGroup("en", []string{"x"}) },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			f := NewEmptyFingerprint()
			require.NoError(t, set(f))
			assert.False(t, f.IsEmpty())
		})
	}
}

func TestFingerprint_PassThroughAccessors(t *testing.T) {
	f := fullFingerprint(t)

	label, err := f.Label("en")
	require.NoError(t, err)
	assert.Equal(t, "Douglas Adams", label.Text)

	desc, err := f.Description("en")
	require.NoError(t, err)
	assert.Equal(t, "English writer", desc.Text)

	aliases, err := f.AliasGroup("en")
	require.NoError(t, err)
	assert.Equal(t, []string{"DNA"}, aliases.Aliases())

	require.NoError(t, f.RemoveLabel("en"))
	require.NoError(t, f.RemoveDescription("en"))
	require.NoError(t, f.RemoveAliasGroup("en"))
	assert.True(t, f.IsEmpty())
}

func TestFingerprint_PropagatesErrors(t *testing.T) {
	f := NewEmptyFingerprint()

	_, err := f.Label("de")
	assert.True(t, errors.IsNotFound(err))
	_, err = f.Description("de")
	assert.True(t, errors.IsNotFound(err))
	_, err = f.AliasGroup("de")
	assert.True(t, errors.IsNotFound(err))

	assert.True(t, errors.IsInvalidKey(f.SetLabel("", "x")))
	assert.True(t, errors.IsInvalidKey(f.RemoveDescription("")))
	assert.True(t, errors.IsInvalidKey(f.SetAliasGroup("", []string{"x"})))
}

func TestFingerprint_EmptyAliasGroupRemoves(t *testing.T) {
	f := fullFingerprint(t)
	require.NoError(t, f.SetAliasGroup("en", nil))

	assert.Equal(t, 0, f.AliasGroups().Len())
}

func TestFingerprint_EqualsAndHash(t *testing.T) {
	a := fullFingerprint(t)
	b := fullFingerprint(t)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	require.NoError(t, b.SetDescription("de", "englischer Schriftsteller"))
	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(nil))
}

func TestFingerprint_LabelsAndDescriptionsAreDistinct(t *testing.T) {
	a := NewEmptyFingerprint()
	require.NoError(t, a.SetLabel("en", "x"))
	b := NewEmptyFingerprint()
	require.NoError(t, b.SetDescription("en", "x"))

	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestFingerprint_OwnsCollections(t *testing.T) {
	labels, err := NewTermList(NewTerm("en", "x"))
	require.NoError(t, err)
	f := NewFingerprint(labels, nil, nil)

	require.NoError(t, labels.SetTextForLanguage("de", "y"))
	assert.Equal(t, 1, f.Labels().Len())

	got := f.Labels()
	require.NoError(t, got.SetTextForLanguage("fr", "z"))
	assert.Equal(t, 1, f.Labels().Len())

	c := f.Copy()
	require.NoError(t, c.SetLabel("nl", "w"))
	assert.Equal(t, 1, f.Labels().Len())
}
