package item

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/diff"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItemDiff_SynthesizesSiteLinkDiff(t *testing.T) {
	d, err := NewItemDiff(nil)
	require.NoError(t, err)

	require.NotNil(t, d.SiteLinkDiff())
	assert.True(t, d.SiteLinkDiff().IsEmpty())
	assert.True(t, d.IsEmpty())
	assert.True(t, d.Operations().Has(KeyLinks))

	for _, key := range []string{KeyAliases, KeyLabel, KeyDescription, KeyClaim, KeyLinks} {
		op, ok := d.Op(key)
		require.True(t, ok, key)
		assert.Equal(t, diff.TypeDiff, op.Type())
	}
}

func TestNewItemDiff_SiteLinkOperationMakesNonEmpty(t *testing.T) {
	d, err := NewItemDiff(map[string]diff.Op{
		KeyLinks: diff.NewMap(map[string]diff.Op{"enwiki": diff.Add{NewValue: "Berlin"}}),
	})
	require.NoError(t, err)

	assert.False(t, d.SiteLinkDiff().IsEmpty())
	assert.False(t, d.IsEmpty())
	assert.True(t, d.LabelsDiff().IsEmpty())
}

func TestNewItemDiff_OtherOperationsMakeNonEmpty(t *testing.T) {
	d, err := NewItemDiff(map[string]diff.Op{
		KeyLabel: diff.NewMap(map[string]diff.Op{"en": diff.Change{OldValue: "a", NewValue: "b"}}),
	})
	require.NoError(t, err)

	assert.True(t, d.SiteLinkDiff().IsEmpty())
	assert.False(t, d.IsEmpty())
}

func TestNewItemDiff_RejectsAtomicSubstructure(t *testing.T) {
	d, err := NewItemDiff(map[string]diff.Op{KeyLinks: diff.Add{NewValue: "enwiki"}})
	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestNewItemDiff_TypedNilBecomesEmpty(t *testing.T) {
	var nilDiff *diff.Diff
	d, err := NewItemDiff(map[string]diff.Op{KeyLinks: nilDiff})
	require.NoError(t, err)
	assert.True(t, d.SiteLinkDiff().IsEmpty())
	assert.True(t, d.IsEmpty())
}

func TestNewItemDiff_DoesNotMutateInput(t *testing.T) {
	ops := map[string]diff.Op{}
	_, err := NewItemDiff(ops)
	require.NoError(t, err)
	assert.Empty(t, ops)
}

func TestDiffTypes(t *testing.T) {
	itemDiff, err := NewItemDiff(nil)
	require.NoError(t, err)
	entityDiff, err := NewEntityDiff(nil)
	require.NoError(t, err)

	assert.Equal(t, "diff/item", itemDiff.Type())
	assert.Equal(t, "diff/entity", entityDiff.Type())
	assert.False(t, entityDiff.Operations().Has(KeyLinks))
	assert.True(t, entityDiff.IsEmpty())
}

func TestEntityDiff_UnknownKeysCountTowardsEmptiness(t *testing.T) {
	d, err := NewEntityDiff(map[string]diff.Op{"datatype": diff.Change{OldValue: "string", NewValue: "url"}})
	require.NoError(t, err)
	assert.False(t, d.IsEmpty())
}
