package hashing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine_Deterministic(t *testing.T) {
	for _, alg := range []Algorithm{SHA1, BLAKE3} {
		t.Run(string(alg), func(t *testing.T) {
			h1 := Combine(alg, "claim", "1", "refs")
			h2 := Combine(alg, "claim", "1", "refs")
			assert.Equal(t, h1, h2)
		})
	}
}

func TestCombine_DigestLengths(t *testing.T) {
	assert.Len(t, Combine(SHA1, "x"), 40)
	assert.Len(t, Combine(BLAKE3, "x"), 64)
}

func TestCombine_FramingPreventsDelimiterCollisions(t *testing.T) {
	assert.NotEqual(t, Sum("a|b", "c"), Sum("a", "b|c"))
	assert.NotEqual(t, Sum("ab", "c"), Sum("a", "bc"))
	assert.NotEqual(t, Sum("", "a"), Sum("a", ""))
	assert.NotEqual(t, Sum("a"), Sum("a", ""))
}

func TestCombine_AlgorithmsDiffer(t *testing.T) {
	assert.NotEqual(t, Combine(SHA1, "x"), Combine(BLAKE3, "x"))
	assert.Equal(t, Combine(SHA1, "x"), Combine(Algorithm("unknown"), "x"))
}

func TestUnordered(t *testing.T) {
	parts := []string{"b", "a", "c"}

	assert.Equal(t, Unordered(parts), Unordered([]string{"c", "b", "a"}))
	assert.Equal(t, []string{"b", "a", "c"}, parts, "input must not be reordered")
	assert.NotEqual(t, Unordered([]string{"a"}), Unordered([]string{"a", "a"}))
}
