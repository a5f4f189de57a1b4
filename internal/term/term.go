// Package term implements the multilingual naming data of an entity:
// labels, descriptions and aliases, bundled as a Fingerprint.
//
// Collections are keyed by language code with last-write-wins semantics and
// iterate in language-code order, so hashes are reproducible. Language codes
// are not validated beyond being non-empty; an empty code is ErrInvalidKey.
package term

import (
	"strings"

	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// Term is a text in one language
type Term struct {
	LanguageCode string `json:"language" yaml:"language"`
	Text         string `json:"value" yaml:"value"`
}

// NewTerm creates a term
func NewTerm(languageCode, text string) Term {
	return Term{LanguageCode: languageCode, Text: text}
}

func (t Term) Equals(other Term) bool { return t == other }

func (t Term) Hash() string {
	return hashing.Sum("term", t.LanguageCode, t.Text)
}

func checkLanguageCode(languageCode string) error {
	if strings.TrimSpace(languageCode) == "" {
		return errors.InvalidKeyf("language code must be a non-empty string")
	}
	return nil
}
