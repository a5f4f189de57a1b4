package term

import (
	"sort"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// TermList holds at most one Term per language code
type TermList struct {
	terms map[string]Term
}

// NewTermList builds a list; later terms overwrite earlier ones in the same language
func NewTermList(terms ...Term) (*TermList, error) {
	l := &TermList{terms: make(map[string]Term, len(terms))}
	for _, t := range terms {
		if err := l.SetTerm(t); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// NewEmptyTermList returns a list with no terms
func NewEmptyTermList() *TermList {
	return &TermList{terms: make(map[string]Term)}
}

func (l *TermList) Len() int { return len(l.terms) }

func (l *TermList) IsEmpty() bool { return len(l.terms) == 0 }

// LanguageCodes returns the language codes in sorted order
func (l *TermList) LanguageCodes() []string {
	codes := make([]string, 0, len(l.terms))
	for code := range l.terms {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Terms returns the terms ordered by language code
func (l *TermList) Terms() []Term {
	out := make([]Term, 0, len(l.terms))
	for _, code := range l.LanguageCodes() {
		out = append(out, l.terms[code])
	}
	return out
}

// ToTextArray maps language code to text
func (l *TermList) ToTextArray() map[string]string {
	out := make(map[string]string, len(l.terms))
	for code, t := range l.terms {
		out[code] = t.Text
	}
	return out
}

// GetByLanguage returns the term for languageCode
func (l *TermList) GetByLanguage(languageCode string) (Term, error) {
	if err := checkLanguageCode(languageCode); err != nil {
		return Term{}, err
	}
	t, ok := l.terms[languageCode]
	if !ok {
		return Term{}, errors.NotFoundf("there is no term with language code %q in the list", languageCode)
	}
	return t, nil
}

// HasTermForLanguage reports whether a term exists for languageCode
func (l *TermList) HasTermForLanguage(languageCode string) bool {
	_, ok := l.terms[languageCode]
	return ok
}

// HasTerm reports whether an equal term is in the list
func (l *TermList) HasTerm(t Term) bool {
	existing, ok := l.terms[t.LanguageCode]
	return ok && existing.Equals(t)
}

// SetTerm stores t, replacing any term in the same language
func (l *TermList) SetTerm(t Term) error {
	if err := checkLanguageCode(t.LanguageCode); err != nil {
		return err
	}
	if l.terms == nil {
		l.terms = make(map[string]Term)
	}
	l.terms[t.LanguageCode] = t
	return nil
}

// SetTextForLanguage is SetTerm(NewTerm(languageCode, text))
func (l *TermList) SetTextForLanguage(languageCode, text string) error {
	return l.SetTerm(NewTerm(languageCode, text))
}

// RemoveByLanguage deletes the term for languageCode; absent codes are a no-op
func (l *TermList) RemoveByLanguage(languageCode string) error {
	if err := checkLanguageCode(languageCode); err != nil {
		return err
	}
	delete(l.terms, languageCode)
	return nil
}

// Equals reports whether both lists hold equal terms for the same languages
func (l *TermList) Equals(other *TermList) bool {
	if l == nil || other == nil {
		return l == other
	}
	if l.Len() != other.Len() {
		return false
	}
	for _, t := range l.terms {
		if !other.HasTerm(t) {
			return false
		}
	}
	return true
}

// Hash digests the terms in language-code order
func (l *TermList) Hash() string {
	parts := make([]string, 0, 2*len(l.terms))
	for _, t := range l.Terms() {
		parts = append(parts, t.LanguageCode, t.Text)
	}
	return hashing.Sum(parts...)
}

// Copy returns an independent list
func (l *TermList) Copy() *TermList {
	c := &TermList{terms: make(map[string]Term, len(l.terms))}
	for code, t := range l.terms {
		c.terms[code] = t
	}
	return c
}
