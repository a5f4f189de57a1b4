package snak

import "github.com/ppiankov/wbmodel/internal/hashing"

// SnakList is an ordered list of distinct snaks. Adding a snak that is
// already present is a no-op. Equality and hashing ignore order.
// A nil *SnakList reads as empty.
type SnakList struct {
	snaks []Snak
}

// NewSnakList creates a list, dropping duplicates
func NewSnakList(snaks ...Snak) *SnakList {
	l := &SnakList{}
	for _, s := range snaks {
		l.Add(s)
	}
	return l
}

// Add appends s unless already present and reports whether it was added
func (l *SnakList) Add(s Snak) bool {
	if l.Has(s) {
		return false
	}
	l.snaks = append(l.snaks, s)
	return true
}

// Remove deletes s if present
func (l *SnakList) Remove(s Snak) {
	for i, existing := range l.snaks {
		if existing == s {
			l.snaks = append(l.snaks[:i:i], l.snaks[i+1:]...)
			return
		}
	}
}

// Has reports whether s is in the list
func (l *SnakList) Has(s Snak) bool {
	if l == nil {
		return false
	}
	for _, existing := range l.snaks {
		if existing == s {
			return true
		}
	}
	return false
}

func (l *SnakList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.snaks)
}

// All returns the snaks in insertion order
func (l *SnakList) All() []Snak {
	if l == nil {
		return nil
	}
	out := make([]Snak, len(l.snaks))
	copy(out, l.snaks)
	return out
}

// Equals reports whether both lists hold the same snaks, in any order
func (l *SnakList) Equals(other *SnakList) bool {
	if l.Len() != other.Len() {
		return false
	}
	for _, s := range l.All() {
		if !other.Has(s) {
			return false
		}
	}
	return true
}

// Hash returns an order-insensitive digest of the list
func (l *SnakList) Hash() string {
	hashes := make([]string, 0, l.Len())
	for _, s := range l.All() {
		hashes = append(hashes, s.Hash())
	}
	return hashing.Unordered(hashes)
}

// Copy returns an independent list
func (l *SnakList) Copy() *SnakList {
	return &SnakList{snaks: l.All()}
}
