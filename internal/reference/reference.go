// Package reference groups snaks into evidentiary references.
package reference

import (
	"github.com/ppiankov/wbmodel/internal/hashing"
	"github.com/ppiankov/wbmodel/internal/snak"
)

// Reference is an ordered group of snaks backing a statement
type Reference struct {
	snaks *snak.SnakList
}

// NewReference creates a reference from snaks
func NewReference(snaks ...snak.Snak) *Reference {
	return &Reference{snaks: snak.NewSnakList(snaks...)}
}

// Snaks returns a copy of the reference's snak list
func (r *Reference) Snaks() *snak.SnakList {
	return r.snaks.Copy()
}

// AllSnaks returns the snaks in the reference's own order
func (r *Reference) AllSnaks() []snak.Snak {
	return r.snaks.All()
}

func (r *Reference) Len() int { return r.snaks.Len() }

func (r *Reference) IsEmpty() bool { return r.snaks.Len() == 0 }

// Hash is the order-insensitive hash of the snaks
func (r *Reference) Hash() string {
	return hashing.Sum("reference", r.snaks.Hash())
}

// Equals compares references by content
func (r *Reference) Equals(other *Reference) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.snaks.Equals(other.snaks)
}

// Copy returns an independent reference
func (r *Reference) Copy() *Reference {
	return &Reference{snaks: r.snaks.Copy()}
}
