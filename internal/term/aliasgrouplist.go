package term

import (
	"sort"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// AliasGroupList holds at most one AliasGroup per language code.
// Empty groups are never stored.
type AliasGroupList struct {
	groups map[string]AliasGroup
}

// NewAliasGroupList builds a list; later groups overwrite earlier ones in the same language
func NewAliasGroupList(groups ...AliasGroup) (*AliasGroupList, error) {
	l := &AliasGroupList{groups: make(map[string]AliasGroup, len(groups))}
	for _, g := range groups {
		if err := l.SetGroup(g); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewEmptyAliasGroupList returns a list with no groups
func NewEmptyAliasGroupList() *AliasGroupList {
	return &AliasGroupList{groups: make(map[string]AliasGroup)}
}

func (l *AliasGroupList) Len() int { return len(l.groups) }

func (l *AliasGroupList) IsEmpty() bool { return len(l.groups) == 0 }

// LanguageCodes returns the language codes in sorted order
func (l *AliasGroupList) LanguageCodes() []string {
	codes := make([]string, 0, len(l.groups))
	for code := range l.groups {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Groups returns the groups ordered by language code
func (l *AliasGroupList) Groups() []AliasGroup {
	out := make([]AliasGroup, 0, len(l.groups))
	for _, code := range l.LanguageCodes() {
		out = append(out, l.groups[code])
	}
	return out
}

// ToTextArray maps language code to aliases
func (l *AliasGroupList) ToTextArray() map[string][]string {
	out := make(map[string][]string, len(l.groups))
	for code, g := range l.groups {
		out[code] = g.Aliases()
	}
	return out
}

// GetByLanguage returns the group for languageCode
func (l *AliasGroupList) GetByLanguage(languageCode string) (AliasGroup, error) {
	if err := checkLanguageCode(languageCode); err != nil {
		return AliasGroup{}, err
	}
	g, ok := l.groups[languageCode]
	if !ok {
		return AliasGroup{}, errors.NotFoundf("there is no alias group with language code %q in the list", languageCode)
	}
	return g, nil
}

// HasGroupForLanguage reports whether a group exists for languageCode
func (l *AliasGroupList) HasGroupForLanguage(languageCode string) bool {
	_, ok := l.groups[languageCode]
	return ok
}

// HasAliasGroup reports whether an equal group is in the list
func (l *AliasGroupList) HasAliasGroup(g AliasGroup) bool {
	existing, ok := l.groups[g.LanguageCode()]
	return ok && existing.Equals(g)
}

// SetGroup stores g, replacing any group in the same language. An empty
// group removes the language's entry instead of being stored.
func (l *AliasGroupList) SetGroup(g AliasGroup) error {
	if err := checkLanguageCode(g.LanguageCode()); err != nil {
		return err
	}
	if g.IsEmpty() {
		delete(l.groups, g.LanguageCode())
		return nil
	}
	if l.groups == nil {
		l.groups = make(map[string]AliasGroup)
	}
	l.groups[g.LanguageCode()] = g
	return nil
}

// SetAliasesForLanguage is SetGroup(NewAliasGroup(languageCode, aliases))
func (l *AliasGroupList) SetAliasesForLanguage(languageCode string, aliases []string) error {
	return l.SetGroup(NewAliasGroup(languageCode, aliases))
}

// RemoveByLanguage deletes the group for languageCode; absent codes are a no-op
func (l *AliasGroupList) RemoveByLanguage(languageCode string) error {
	if err := checkLanguageCode(languageCode); err != nil {
		return err
	}
	delete(l.groups, languageCode)
	return nil
}

// Equals reports whether both lists hold equal groups for the same languages
func (l *AliasGroupList) Equals(other *AliasGroupList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Len() != other.Len() {
		return false
	}
	for _, g := range l.groups {
		if !other.HasAliasGroup(g) {
			return false
		}
	}
	return true
}

// Hash digests the group hashes in language-code order
func (l *AliasGroupList) Hash() string {
	parts := make([]string, 0, len(l.groups))
	for _, g := range l.Groups() {
		parts = append(parts, g.Hash())
	}
	return hashing.Sum(parts...)
}

// Copy returns an independent list
func (l *AliasGroupList) Copy() *AliasGroupList {
	c := &AliasGroupList{groups: make(map[string]AliasGroup, len(l.groups))}
	for code, g := range l.groups {
		c.groups[code] = NewAliasGroup(code, g.aliases)
	}
	return c
}
