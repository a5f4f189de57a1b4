package term

import (
	"strings"

	"github.com/ppiankov/wbmodel/internal/hashing"
)

// AliasGroup is an ordered list of aliases in one language. It may be empty.
type AliasGroup struct {
	languageCode string
	aliases      []string
}

// NewAliasGroup creates a group. Aliases are trimmed; blanks and repeats are dropped.
func NewAliasGroup(languageCode string, aliases []string) AliasGroup {
	g := AliasGroup{languageCode: languageCode}
	seen := make(map[string]bool, len(aliases))
	for _, a := range aliases {
		a = strings.TrimSpace(a)
		if a == "" || seen[a] {
			continue
		}
		seen[a] = true
		g.aliases = append(g.aliases, a)
	}
	return g
}

func (g AliasGroup) LanguageCode() string { return g.languageCode }

// Aliases returns a copy of the aliases in order
func (g AliasGroup) Aliases() []string {
	out := make([]string, len(g.aliases))
	copy(out, g.aliases)
	return out
}

func (g AliasGroup) Len() int { return len(g.aliases) }

func (g AliasGroup) IsEmpty() bool { return len(g.aliases) == 0 }

// Equals compares language code and aliases, order included
func (g AliasGroup) Equals(other AliasGroup) bool {
	if g.languageCode != other.languageCode || len(g.aliases) != len(other.aliases) {
		return false
	}
	for i := range g.aliases {
		if g.aliases[i] != other.aliases[i] {
			return false
		}
	}
	return true
}

func (g AliasGroup) Hash() string {
	return hashing.Sum(append([]string{"aliases", g.languageCode}, g.aliases...)...)
}
