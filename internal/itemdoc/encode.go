package itemdoc

import (
	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/snak"
	"gopkg.in/yaml.v3"
)

// FromItem builds the document for it. Statement order is preserved.
func FromItem(it *item.Item) Document {
	doc := Document{}
	if !it.ID().IsZero() {
		doc.ID = it.ID().Serialization()
	}

	fp := it.Fingerprint()
	if labels := fp.Labels(); !labels.IsEmpty() {
		doc.Labels = labels.ToTextArray()
	}
	if descriptions := fp.Descriptions(); !descriptions.IsEmpty() {
		doc.Descriptions = descriptions.ToTextArray()
	}
	if aliases := fp.AliasGroups(); !aliases.IsEmpty() {
		doc.Aliases = aliases.ToTextArray()
	}

	if links := it.SiteLinks(); !links.IsEmpty() {
		doc.SiteLinks = make(map[string]SiteLink, links.Len())
		for _, link := range links.All() {
			doc.SiteLinks[link.SiteID()] = FromSiteLink(link)
		}
	}

	for _, s := range it.Statements().All() {
		doc.Statements = append(doc.Statements, FromStatement(s))
	}
	return doc
}

// Encode renders it as YAML
func Encode(it *item.Item) ([]byte, error) {
	return yaml.Marshal(FromItem(it))
}

// FromSiteLink builds the document form of a site link
func FromSiteLink(link item.SiteLink) SiteLink {
	return SiteLink{
		Title:  link.PageName(),
		Badges: link.Badges().Serializations(),
	}
}

// FromStatement builds the document form of a statement
func FromStatement(s *claim.Statement) Statement {
	out := Statement{
		ID:       s.GUID(),
		MainSnak: fromSnak(s.MainSnak()),
	}
	if s.Rank() != claim.RankNormal {
		out.Rank = s.Rank().String()
	}
	for _, q := range s.Qualifiers().All() {
		out.Qualifiers = append(out.Qualifiers, fromSnak(q))
	}
	for _, r := range s.References().All() {
		ref := Reference{}
		for _, sn := range r.AllSnaks() {
			ref.Snaks = append(ref.Snaks, fromSnak(sn))
		}
		out.References = append(out.References, ref)
	}
	return out
}

func fromSnak(s snak.Snak) Snak {
	out := Snak{Property: s.PropertyID().Serialization()}
	if v, ok := s.DataValue(); ok {
		out.Value = &v
		return out
	}
	out.Type = string(s.Type())
	return out
}
