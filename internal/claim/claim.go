// Package claim implements claims and ranked, referenced statements.
package claim

import (
	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/hashing"
	"github.com/ppiankov/wbmodel/internal/snak"
)

// Claim is a main snak qualified by further snaks
type Claim struct {
	mainSnak   snak.Snak
	qualifiers *snak.SnakList
	guid       string
}

// NewClaim creates a claim; nil qualifiers means none
func NewClaim(mainSnak snak.Snak, qualifiers *snak.SnakList) *Claim {
	return &Claim{mainSnak: mainSnak, qualifiers: qualifiers.Copy()}
}

func (c *Claim) MainSnak() snak.Snak { return c.mainSnak }

func (c *Claim) SetMainSnak(s snak.Snak) { c.mainSnak = s }

// Qualifiers returns a copy of the qualifier list
func (c *Claim) Qualifiers() *snak.SnakList { return c.qualifiers.Copy() }

func (c *Claim) SetQualifiers(qualifiers *snak.SnakList) { c.qualifiers = qualifiers.Copy() }

func (c *Claim) GUID() string { return c.guid }

func (c *Claim) SetGUID(guid string) { c.guid = guid }

// PropertyID is the property of the main snak
func (c *Claim) PropertyID() entity.PropertyID { return c.mainSnak.PropertyID() }

// Hash covers the main snak and qualifiers. The GUID is identity, not content.
func (c *Claim) Hash() string {
	return hashing.Sum("claim", c.mainSnak.Hash(), c.qualifiers.Hash())
}

// AllSnaks returns the main snak followed by the qualifiers
func (c *Claim) AllSnaks() []snak.Snak {
	return append([]snak.Snak{c.mainSnak}, c.qualifiers.All()...)
}

// ClaimFieldsEqual compares GUID, main snak and qualifiers
func (c *Claim) ClaimFieldsEqual(other *Claim) bool {
	return c.guid == other.guid &&
		c.mainSnak.Equals(other.mainSnak) &&
		c.qualifiers.Equals(other.qualifiers)
}
