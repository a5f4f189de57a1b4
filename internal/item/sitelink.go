package item

import (
	"sort"
	"strings"

	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// SiteLink links an item to a page on another site, with optional badges
type SiteLink struct {
	siteID   string
	pageName string
	badges   *entity.ItemIDSet
}

// NewSiteLink creates a site link. Nil badges means none.
func NewSiteLink(siteID, pageName string, badges *entity.ItemIDSet) (SiteLink, error) {
	if strings.TrimSpace(siteID) == "" {
		return SiteLink{}, errors.InvalidKeyf("site id must be a non-empty string")
	}
	if strings.TrimSpace(pageName) == "" {
		return SiteLink{}, errors.InvalidArgumentf("page name for site %q must not be empty", siteID)
	}
	if badges == nil {
		badges = entity.ItemIDSetOf()
	}
	return SiteLink{siteID: siteID, pageName: pageName, badges: badges}, nil
}

func (l SiteLink) SiteID() string   { return l.siteID }
func (l SiteLink) PageName() string { return l.pageName }

// Badges returns the badge set; ItemIDSet is immutable so it is shared
func (l SiteLink) Badges() *entity.ItemIDSet { return l.badges }

func (l SiteLink) Equals(other SiteLink) bool {
	return l.siteID == other.siteID &&
		l.pageName == other.pageName &&
		l.badges.Equals(other.badges)
}

func (l SiteLink) Hash() string {
	return hashing.Sum("sitelink", l.siteID, l.pageName, l.badges.Hash())
}

// SiteLinkList holds at most one SiteLink per site id
type SiteLinkList struct {
	links map[string]SiteLink
}

// NewSiteLinkList builds a list; later links overwrite earlier ones for the same site
func NewSiteLinkList(links ...SiteLink) (*SiteLinkList, error) {
	l := &SiteLinkList{links: make(map[string]SiteLink, len(links))}
	for _, link := range links {
		if err := l.SetSiteLink(link); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewEmptySiteLinkList returns a list with no links
func NewEmptySiteLinkList() *SiteLinkList {
	return &SiteLinkList{links: make(map[string]SiteLink)}
}

func (l *SiteLinkList) Len() int { return len(l.links) }

func (l *SiteLinkList) IsEmpty() bool { return len(l.links) == 0 }

// SiteIDs returns the site ids in sorted order
func (l *SiteLinkList) SiteIDs() []string {
	ids := make([]string, 0, len(l.links))
	for id := range l.links {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns the links ordered by site id
func (l *SiteLinkList) All() []SiteLink {
	out := make([]SiteLink, 0, len(l.links))
	for _, id := range l.SiteIDs() {
		out = append(out, l.links[id])
	}
	return out
}

// BySiteID returns the link for siteID
func (l *SiteLinkList) BySiteID(siteID string) (SiteLink, error) {
	if strings.TrimSpace(siteID) == "" {
		return SiteLink{}, errors.InvalidKeyf("site id must be a non-empty string")
	}
	link, ok := l.links[siteID]
	if !ok {
		return SiteLink{}, errors.NotFoundf("there is no site link with site id %q in the list", siteID)
	}
	return link, nil
}

func (l *SiteLinkList) HasLinkWithSiteID(siteID string) bool {
	_, ok := l.links[siteID]
	return ok
}

// SetSiteLink stores link, replacing any link to the same site
func (l *SiteLinkList) SetSiteLink(link SiteLink) error {
	if strings.TrimSpace(link.siteID) == "" {
		return errors.InvalidKeyf("site id must be a non-empty string")
	}
	if l.links == nil {
		l.links = make(map[string]SiteLink)
	}
	l.links[link.siteID] = link
	return nil
}

// SetNewSiteLink builds and stores a link
func (l *SiteLinkList) SetNewSiteLink(siteID, pageName string, badges ...entity.ItemID) error {
	link, err := NewSiteLink(siteID, pageName, entity.ItemIDSetOf(badges...))
	if err != nil {
		return err
	}
	return l.SetSiteLink(link)
}

// RemoveLinkWithSiteID deletes the link for siteID; absent ids are a no-op
func (l *SiteLinkList) RemoveLinkWithSiteID(siteID string) error {
	if strings.TrimSpace(siteID) == "" {
		return errors.InvalidKeyf("site id must be a non-empty string")
	}
	delete(l.links, siteID)
	return nil
}

func (l *SiteLinkList) toMap() map[string]SiteLink {
	out := make(map[string]SiteLink, len(l.links))
	for id, link := range l.links {
		out[id] = link
	}
	return out
}

func (l *SiteLinkList) Equals(other *SiteLinkList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Len() != other.Len() {
		return false
	}
	for id, link := range l.links {
		o, ok := other.links[id]
		if !ok || !link.Equals(o) {
			return false
		}
	}
	return true
}

// Hash digests the links in site-id order
func (l *SiteLinkList) Hash() string {
	parts := make([]string, 0, len(l.links))
	for _, link := range l.All() {
		parts = append(parts, link.Hash())
	}
	return hashing.Sum(parts...)
}

// Copy returns an independent list
func (l *SiteLinkList) Copy() *SiteLinkList {
	return &SiteLinkList{links: l.toMap()}
}
