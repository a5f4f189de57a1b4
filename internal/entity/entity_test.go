package entity

import (
	"testing"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		input    string
		wantType string
		wantSer  string
		wantErr  bool
	}{
		{"Q42", TypeItem, "Q42", false},
		{"q42", TypeItem, "Q42", false},
		{"P31", TypeProperty, "P31", false},
		{" p7 ", TypeProperty, "P7", false},
		{"Q0", "", "", true},
		{"Q-1", "", "", true},
		{"Q+1", "", "", true},
		{"L1", "", "", true},
		{"Q", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, err := ParseID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, id.EntityType())
			assert.Equal(t, tt.wantSer, id.Serialization())
		})
	}
}

func TestParseItemID_RejectsProperty(t *testing.T) {
	_, err := ParseItemID("P31")
	require.Error(t, err)
	assert.True(t, errors.IsTypeMismatch(err))

	id, err := ParseItemID("Q5")
	require.NoError(t, err)
	assert.Equal(t, int64(5), id.NumericID())
}

func TestNewItemID_RejectsNonPositive(t *testing.T) {
	_, err := NewItemID(0)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Panics(t, func() { MustPropertyID(-1) })
}

func TestItemIDSet_CollapsesDuplicates(t *testing.T) {
	q1, q2, q3 := MustItemID(1), MustItemID(2), MustItemID(3)

	set, err := NewItemIDSet(q1, q1, q2)
	require.NoError(t, err)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Has(q1))
	assert.True(t, set.Has(q2))
	assert.False(t, set.Has(q3))
}

func TestItemIDSet_RejectsNonItemIDs(t *testing.T) {
	set, err := NewItemIDSet(MustItemID(1), MustPropertyID(1))
	require.Error(t, err)
	assert.Nil(t, set)
	assert.True(t, errors.IsTypeMismatch(err))

	var nilID *ItemID
	_, err = NewItemIDSet(nilID)
	assert.True(t, errors.IsTypeMismatch(err))
}

func TestItemIDSet_AcceptsPointers(t *testing.T) {
	q7 := MustItemID(7)
	set, err := NewItemIDSet(&q7)
	require.NoError(t, err)
	assert.True(t, set.Has(q7))
}

func TestItemIDSet_EqualsAndHash(t *testing.T) {
	a := ItemIDSetOf(MustItemID(3), MustItemID(1), MustItemID(2))
	b := ItemIDSetOf(MustItemID(1), MustItemID(2), MustItemID(3), MustItemID(2))
	c := ItemIDSetOf(MustItemID(1), MustItemID(2))

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equals(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, a.Serializations())
}

func TestItemIDSet_NilIsEmpty(t *testing.T) {
	var set *ItemIDSet

	assert.Equal(t, 0, set.Len())
	assert.False(t, set.Has(MustItemID(1)))
	assert.True(t, set.Equals(ItemIDSetOf()))
	assert.Equal(t, ItemIDSetOf().Hash(), set.Hash())
}
