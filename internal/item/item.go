// Package item implements items (the entity type holding labels, site links
// and statements), the EntityDiff/ItemDiff containers describing changes
// between two item revisions, and the Differ and Patcher that produce and
// apply them.
package item

import (
	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/hashing"
	"github.com/ppiankov/wbmodel/internal/term"
)

// Item is an entity with a fingerprint, site links and statements
type Item struct {
	id          entity.ItemID
	fingerprint *term.Fingerprint
	siteLinks   *SiteLinkList
	statements  *claim.StatementList
}

// NewItem creates an item from copies of its parts. Nil parts are empty.
func NewItem(id entity.ItemID, fingerprint *term.Fingerprint, siteLinks *SiteLinkList, statements *claim.StatementList) *Item {
	it := NewEmptyItem()
	it.id = id
	it.SetFingerprint(fingerprint)
	it.SetSiteLinks(siteLinks)
	it.SetStatements(statements)
	return it
}

// NewEmptyItem returns an item without id or content
func NewEmptyItem() *Item {
	return &Item{
		fingerprint: term.NewEmptyFingerprint(),
		siteLinks:   NewEmptySiteLinkList(),
		statements:  &claim.StatementList{},
	}
}

func (it *Item) ID() entity.ItemID { return it.id }

func (it *Item) SetID(id entity.ItemID) { it.id = id }

func (it *Item) EntityType() string { return entity.TypeItem }

func (it *Item) Fingerprint() *term.Fingerprint { return it.fingerprint.Copy() }

func (it *Item) SetFingerprint(f *term.Fingerprint) {
	if f == nil {
		f = term.NewEmptyFingerprint()
	}
	it.fingerprint = f.Copy()
}

func (it *Item) SetLabel(languageCode, text string) error {
	return it.fingerprint.SetLabel(languageCode, text)
}

func (it *Item) SetDescription(languageCode, text string) error {
	return it.fingerprint.SetDescription(languageCode, text)
}

func (it *Item) SetAliasGroup(languageCode string, aliases []string) error {
	return it.fingerprint.SetAliasGroup(languageCode, aliases)
}

func (it *Item) SiteLinks() *SiteLinkList { return it.siteLinks.Copy() }

func (it *Item) SetSiteLinks(l *SiteLinkList) {
	if l == nil {
		l = NewEmptySiteLinkList()
	}
	it.siteLinks = l.Copy()
}

func (it *Item) Statements() *claim.StatementList { return it.statements.Copy() }

func (it *Item) SetStatements(l *claim.StatementList) {
	it.statements = l.Copy()
}

// AddStatement appends a copy of s
func (it *Item) AddStatement(s *claim.Statement) error {
	return it.statements.Add(s)
}

// IsEmpty reports whether the item has no terms, site links or statements
func (it *Item) IsEmpty() bool {
	return it.fingerprint.IsEmpty() &&
		it.siteLinks.IsEmpty() &&
		it.statements.Len() == 0
}

// Equals compares content; the id is not part of it
func (it *Item) Equals(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	return it.fingerprint.Equals(other.fingerprint) &&
		it.siteLinks.Equals(other.siteLinks) &&
		it.statements.Equals(other.statements)
}

// Hash digests fingerprint, site links and statements. Like Equals it
// ignores the id, so it identifies content rather than entity.
func (it *Item) Hash() string {
	return hashing.Sum("item", it.fingerprint.Hash(), it.siteLinks.Hash(), it.statements.Hash())
}

// Copy returns an independent item
func (it *Item) Copy() *Item {
	return NewItem(it.id, it.fingerprint, it.siteLinks, it.statements)
}
