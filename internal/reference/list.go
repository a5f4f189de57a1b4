package reference

import (
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
	"github.com/ppiankov/wbmodel/internal/snak"
)

// ReferenceList is an ordered collection of distinct references.
//
// Equality and ValueHash treat the list as a set: two lists holding the same
// references in a different order are equal and share a value hash.
// A nil *ReferenceList reads as empty.
type ReferenceList struct {
	refs []*Reference
}

// NewReferenceList creates a list, dropping duplicates. A nil element fails
// the whole construction.
func NewReferenceList(refs ...*Reference) (*ReferenceList, error) {
	l := &ReferenceList{}
	for i, r := range refs {
		if r == nil {
			return nil, errors.InvalidArgumentf("reference %d is nil", i)
		}
		l.Add(r)
	}
	return l, nil
}

// Add appends a copy of r unless an equal reference is present
func (l *ReferenceList) Add(r *Reference) bool {
	if r == nil || l.Has(r) {
		return false
	}
	l.refs = append(l.refs, r.Copy())
	return true
}

// AddNewReference builds a reference from snaks and adds it
func (l *ReferenceList) AddNewReference(snaks ...snak.Snak) bool {
	return l.Add(NewReference(snaks...))
}

// Has reports whether an equal reference is present
func (l *ReferenceList) Has(r *Reference) bool {
	if l == nil {
		return false
	}
	for _, existing := range l.refs {
		if existing.Equals(r) {
			return true
		}
	}
	return false
}

// Remove deletes the reference equal to r, if any
func (l *ReferenceList) Remove(r *Reference) {
	for i, existing := range l.refs {
		if existing.Equals(r) {
			l.refs = append(l.refs[:i:i], l.refs[i+1:]...)
			return
		}
	}
}

func (l *ReferenceList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.refs)
}

// All returns copies of the references in list order
func (l *ReferenceList) All() []*Reference {
	if l == nil {
		return nil
	}
	out := make([]*Reference, len(l.refs))
	for i, r := range l.refs {
		out[i] = r.Copy()
	}
	return out
}

// AllSnaks returns every snak of every reference, references in list order
func (l *ReferenceList) AllSnaks() []snak.Snak {
	if l == nil {
		return nil
	}
	var out []snak.Snak
	for _, r := range l.refs {
		out = append(out, r.AllSnaks()...)
	}
	return out
}

// ValueHash digests the references as a set
func (l *ReferenceList) ValueHash() string {
	hashes := make([]string, 0, l.Len())
	if l != nil {
		for _, r := range l.refs {
			hashes = append(hashes, r.Hash())
		}
	}
	return hashing.Unordered(hashes)
}

// Equals reports whether both lists hold equal references, in any order
func (l *ReferenceList) Equals(other *ReferenceList) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l == nil {
		return true
	}
	for _, r := range l.refs {
		if !other.Has(r) {
			return false
		}
	}
	return true
}

// Copy returns an independent list
func (l *ReferenceList) Copy() *ReferenceList {
	return &ReferenceList{refs: l.All()}
}
