// Package itemdoc reads and writes items as YAML documents, the input format
// of the wbmodel CLI.
//
//	id: Q64
//	labels: {en: Berlin, de: Berlin}
//	descriptions: {en: capital of Germany}
//	aliases: {en: [Berlin, Germany]}
//	sitelinks:
//	  enwiki: {title: Berlin, badges: [Q17437796]}
//	statements:
//	  - id: Q64$5
//	    rank: preferred
//	    mainsnak: {property: P31, type: value, value: {type: wikibase-entityid, value: Q515}}
//	    qualifiers: [...]
//	    references:
//	      - snaks: [...]
package itemdoc

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/reference"
	"github.com/ppiankov/wbmodel/internal/snak"
	"gopkg.in/yaml.v3"
)

// Document is the YAML shape of an item
type Document struct {
	ID           string              `yaml:"id,omitempty"`
	Labels       map[string]string   `yaml:"labels,omitempty"`
	Descriptions map[string]string   `yaml:"descriptions,omitempty"`
	Aliases      map[string][]string `yaml:"aliases,omitempty"`
	SiteLinks    map[string]SiteLink `yaml:"sitelinks,omitempty"`
	Statements   []Statement         `yaml:"statements,omitempty"`
}

type SiteLink struct {
	Title  string   `yaml:"title"`
	Badges []string `yaml:"badges,omitempty"`
}

type Statement struct {
	ID         string      `yaml:"id,omitempty"`
	Rank       string      `yaml:"rank,omitempty"`
	MainSnak   Snak        `yaml:"mainsnak"`
	Qualifiers []Snak      `yaml:"qualifiers,omitempty"`
	References []Reference `yaml:"references,omitempty"`
}

type Reference struct {
	Snaks []Snak `yaml:"snaks"`
}

// Snak defaults to a value snak when Type is empty
type Snak struct {
	Property string          `yaml:"property"`
	Type     string          `yaml:"type,omitempty"`
	Value    *snak.DataValue `yaml:"value,omitempty"`
}

// Load reads and converts the document at path
func Load(path string) (*item.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read item document %s", path)
	}
	it, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "item document %s", path)
	}
	return it, nil
}

// Parse converts YAML bytes into an item
func Parse(data []byte) (*item.Item, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one document from r. Unknown fields are rejected.
func Decode(r io.Reader) (*item.Item, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return item.NewEmptyItem(), nil
		}
		return nil, errors.Wrap(err, "decode yaml")
	}
	return doc.Item()
}

// Item converts the document into an item
func (d Document) Item() (*item.Item, error) {
	it := item.NewEmptyItem()

	if d.ID != "" {
		id, err := entity.ParseItemID(d.ID)
		if err != nil {
			return nil, errors.Wrap(err, "id")
		}
		it.SetID(id)
	}

	for lang, text := range d.Labels {
		if err := it.SetLabel(lang, text); err != nil {
			return nil, errors.Wrapf(err, "labels.%s", lang)
		}
	}
	for lang, text := range d.Descriptions {
		if err := it.SetDescription(lang, text); err != nil {
			return nil, errors.Wrapf(err, "descriptions.%s", lang)
		}
	}
	for lang, aliases := range d.Aliases {
		if err := it.SetAliasGroup(lang, aliases); err != nil {
			return nil, errors.Wrapf(err, "aliases.%s", lang)
		}
	}

	links := item.NewEmptySiteLinkList()
	for site, link := range d.SiteLinks {
		badges := make([]entity.ItemID, 0, len(link.Badges))
		for i, b := range link.Badges {
			id, err := entity.ParseItemID(b)
			if err != nil {
				return nil, errors.Wrapf(err, "sitelinks.%s.badges[%d]", site, i)
			}
			badges = append(badges, id)
		}
		if err := links.SetNewSiteLink(site, link.Title, badges...); err != nil {
			return nil, errors.Wrapf(err, "sitelinks.%s", site)
		}
	}
	it.SetSiteLinks(links)

	for i, s := range d.Statements {
		stmt, err := s.statement()
		if err != nil {
			return nil, errors.Wrapf(err, "statements[%d]", i)
		}
		if err := it.AddStatement(stmt); err != nil {
			return nil, errors.Wrapf(err, "statements[%d]", i)
		}
	}

	return it, nil
}

func (s Statement) statement() (*claim.Statement, error) {
	mainSnak, err := s.MainSnak.snak()
	if err != nil {
		return nil, errors.Wrap(err, "mainsnak")
	}

	qualifiers, err := snakList(s.Qualifiers, "qualifiers")
	if err != nil {
		return nil, err
	}

	refs := &reference.ReferenceList{}
	for i, r := range s.References {
		snaks, err := snakList(r.Snaks, fmt.Sprintf("references[%d].snaks", i))
		if err != nil {
			return nil, err
		}
		refs.AddNewReference(snaks.All()...)
	}

	rank, err := claim.ParseRank(s.Rank)
	if err != nil {
		return nil, errors.Wrap(err, "rank")
	}

	stmt := claim.NewStatement(mainSnak, qualifiers, refs)
	stmt.SetGUID(s.ID)
	if err := stmt.SetRank(rank); err != nil {
		return nil, errors.Wrap(err, "rank")
	}
	return stmt, nil
}

func snakList(snaks []Snak, field string) (*snak.SnakList, error) {
	out := snak.NewSnakList()
	for i, s := range snaks {
		sn, err := s.snak()
		if err != nil {
			return nil, errors.Wrapf(err, "%s[%d]", field, i)
		}
		out.Add(sn)
	}
	return out, nil
}

func (s Snak) snak() (snak.Snak, error) {
	property, err := entity.ParsePropertyID(s.Property)
	if err != nil {
		return snak.Snak{}, errors.Wrap(err, "property")
	}

	snakType := snak.TypeValue
	if s.Type != "" {
		if snakType, err = snak.ParseType(s.Type); err != nil {
			return snak.Snak{}, err
		}
	}

	switch snakType {
	case snak.TypeSomeValue:
		return snak.NewSomeValueSnak(property), nil
	case snak.TypeNoValue:
		return snak.NewNoValueSnak(property), nil
	default:
		if s.Value == nil {
			return snak.Snak{}, errors.InvalidArgumentf("value snak for %s has no value", property)
		}
		return snak.NewValueSnak(property, *s.Value), nil
	}
}
