package term

import "github.com/ppiankov/wbmodel/internal/hashing"

// Fingerprint bundles the labels, descriptions and aliases of an entity.
// It owns its collections: getters return copies and setters store copies.
type Fingerprint struct {
	labels       *TermList
	descriptions *TermList
	aliasGroups  *AliasGroupList
}

// NewFingerprint creates a fingerprint from copies of the given collections.
// Nil collections are treated as empty.
func NewFingerprint(labels, descriptions *TermList, aliasGroups *AliasGroupList) *Fingerprint {
	f := NewEmptyFingerprint()
	f.SetLabels(labels)
	f.SetDescriptions(descriptions)
	f.SetAliasGroups(aliasGroups)
	return f
}

// NewEmptyFingerprint returns a fingerprint with three empty collections
func NewEmptyFingerprint() *Fingerprint {
	return &Fingerprint{
		labels:       NewEmptyTermList(),
		descriptions: NewEmptyTermList(),
		aliasGroups:  NewEmptyAliasGroupList(),
	}
}

func (f *Fingerprint) Labels() *TermList { return f.labels.Copy() }

func (f *Fingerprint) Label(languageCode string) (Term, error) {
	return f.labels.GetByLanguage(languageCode)
}

func (f *Fingerprint) SetLabel(languageCode, text string) error {
	return f.labels.SetTerm(NewTerm(languageCode, text))
}

func (f *Fingerprint) RemoveLabel(languageCode string) error {
	return f.labels.RemoveByLanguage(languageCode)
}

func (f *Fingerprint) SetLabels(labels *TermList) {
	if labels == nil {
		labels = NewEmptyTermList()
	}
	f.labels = labels.Copy()
}

func (f *Fingerprint) Descriptions() *TermList { return f.descriptions.Copy() }

func (f *Fingerprint) Description(languageCode string) (Term, error) {
	return f.descriptions.GetByLanguage(languageCode)
}

func (f *Fingerprint) SetDescription(languageCode, text string) error {
	return f.descriptions.SetTerm(NewTerm(languageCode, text))
}

func (f *Fingerprint) RemoveDescription(languageCode string) error {
	return f.descriptions.RemoveByLanguage(languageCode)
}

func (f *Fingerprint) SetDescriptions(descriptions *TermList) {
	if descriptions == nil {
		descriptions = NewEmptyTermList()
	}
	f.descriptions = descriptions.Copy()
}

func (f *Fingerprint) AliasGroups() *AliasGroupList { return f.aliasGroups.Copy() }

func (f *Fingerprint) AliasGroup(languageCode string) (AliasGroup, error) {
	return f.aliasGroups.GetByLanguage(languageCode)
}

// SetAliasGroup replaces the aliases for languageCode; an empty list removes them
func (f *Fingerprint) SetAliasGroup(languageCode string, aliases []string) error {
	return f.aliasGroups.SetGroup(NewAliasGroup(languageCode, aliases))
}

func (f *Fingerprint) RemoveAliasGroup(languageCode string) error {
	return f.aliasGroups.RemoveByLanguage(languageCode)
}

func (f *Fingerprint) SetAliasGroups(groups *AliasGroupList) {
	if groups == nil {
		groups = NewEmptyAliasGroupList()
	}
	f.aliasGroups = groups.Copy()
}

// IsEmpty reports whether labels, descriptions and aliases are all empty
func (f *Fingerprint) IsEmpty() bool {
	return f.labels.IsEmpty() &&
		f.descriptions.IsEmpty() &&
		f.aliasGroups.IsEmpty()
}

// Equals compares all three collections
func (f *Fingerprint) Equals(other *Fingerprint) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.descriptions.Equals(other.descriptions) &&
		f.labels.Equals(other.labels) &&
		f.aliasGroups.Equals(other.aliasGroups)
}

// Hash digests labels, descriptions and aliases in that order
func (f *Fingerprint) Hash() string {
	return hashing.Sum("fingerprint", f.labels.Hash(), f.descriptions.Hash(), f.aliasGroups.Hash())
}

// Copy returns an independent fingerprint
func (f *Fingerprint) Copy() *Fingerprint {
	return NewFingerprint(f.labels, f.descriptions, f.aliasGroups)
}
