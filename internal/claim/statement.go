package claim

import (
	"strconv"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
	"github.com/ppiankov/wbmodel/internal/reference"
	"github.com/ppiankov/wbmodel/internal/snak"
)

// Statement is a claim with a rank and supporting references
type Statement struct {
	Claim
	rank       Rank
	references *reference.ReferenceList
}

// NewStatement creates a normal-ranked statement. Nil qualifiers or
// references mean none.
func NewStatement(mainSnak snak.Snak, qualifiers *snak.SnakList, refs *reference.ReferenceList) *Statement {
	return &Statement{
		Claim:      *NewClaim(mainSnak, qualifiers),
		rank:       RankNormal,
		references: refs.Copy(),
	}
}

// References returns a copy of the reference list
func (s *Statement) References() *reference.ReferenceList { return s.references.Copy() }

// SetReferences replaces the references; nil clears them
func (s *Statement) SetReferences(refs *reference.ReferenceList) { s.references = refs.Copy() }

// AddReference appends a reference unless an equal one is present
func (s *Statement) AddReference(r *reference.Reference) bool {
	if s.references == nil {
		s.references = &reference.ReferenceList{}
	}
	return s.references.Add(r)
}

func (s *Statement) Rank() Rank { return s.rank }

// SetRank assigns a deprecated, normal or preferred rank. Any other value
// fails with ErrInvalidArgument and leaves the rank unchanged.
func (s *Statement) SetRank(r Rank) error {
	if !r.IsStatementRank() {
		return errors.InvalidArgumentf("invalid rank specified for statement: %s (%d)", r, int(r))
	}
	s.rank = r
	return nil
}

// Hash combines the claim hash, the numeric rank and the reference value hash.
// Any change to main snak, qualifiers, rank or references changes it.
func (s *Statement) Hash() string {
	return hashing.Sum(
		"statement",
		s.Claim.Hash(),
		strconv.Itoa(int(s.rank)),
		s.references.ValueHash(),
	)
}

// AllSnaks returns the claim's snaks followed by the snaks of every
// reference, in reference order
func (s *Statement) AllSnaks() []snak.Snak {
	return append(s.Claim.AllSnaks(), s.references.AllSnaks()...)
}

// Equals compares claim fields, rank and references (in any order)
func (s *Statement) Equals(other *Statement) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ClaimFieldsEqual(&other.Claim) &&
		s.rank == other.rank &&
		s.references.Equals(other.references)
}

// Copy returns an independent statement
func (s *Statement) Copy() *Statement {
	c := NewStatement(s.mainSnak, s.qualifiers, s.references)
	c.guid = s.guid
	c.rank = s.rank
	return c
}
