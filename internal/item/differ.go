package item

import (
	"fmt"

	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/diff"
	"github.com/ppiankov/wbmodel/internal/errors"
)

// Differ computes field-by-field diffs between item revisions
type Differ struct{}

func NewDiffer() *Differ { return &Differ{} }

// DiffItems describes how to turn from into to. Labels and descriptions are
// keyed by language, aliases are per-language list diffs, site links are
// keyed by site id and statements by GUID.
func (Differ) DiffItems(from, to *Item) (*ItemDiff, error) {
	if from == nil || to == nil {
		return nil, errors.InvalidArgumentf("cannot diff a nil item")
	}

	sameText := func(a, b string) bool { return a == b }
	ops := map[string]diff.Op{
		KeyLabel:       diff.Maps(from.fingerprint.Labels().ToTextArray(), to.fingerprint.Labels().ToTextArray(), sameText),
		KeyDescription: diff.Maps(from.fingerprint.Descriptions().ToTextArray(), to.fingerprint.Descriptions().ToTextArray(), sameText),
		KeyAliases:     diffAliases(from.fingerprint.AliasGroups().ToTextArray(), to.fingerprint.AliasGroups().ToTextArray()),
		KeyClaim: diff.Maps(statementMap(from.statements), statementMap(to.statements), func(a, b *claim.Statement) bool {
			return a.Equals(b)
		}),
		KeyLinks: diff.Maps(from.siteLinks.toMap(), to.siteLinks.toMap(), func(a, b SiteLink) bool {
			return a.Equals(b)
		}),
	}
	return NewItemDiff(ops)
}

func diffAliases(from, to map[string][]string) *diff.Diff {
	ops := make(map[string]diff.Op)
	for lang, aliases := range from {
		if d := diff.Lists(aliases, to[lang]); !d.IsEmpty() {
			ops[lang] = d
		}
	}
	for lang, aliases := range to {
		if _, seen := from[lang]; seen {
			continue
		}
		if d := diff.Lists(nil, aliases); !d.IsEmpty() {
			ops[lang] = d
		}
	}
	return diff.NewMap(ops)
}

// statementKeys returns one key per statement, in list order: the GUID, or
// for statements without one the content hash plus an occurrence counter so
// that identical copies stay distinct.
func statementKeys(l *claim.StatementList) []string {
	all := l.All()
	keys := make([]string, len(all))
	seen := make(map[string]int)
	for i, s := range all {
		if guid := s.GUID(); guid != "" {
			keys[i] = guid
			continue
		}
		h := s.Hash()
		keys[i] = fmt.Sprintf("hash:%s#%d", h, seen[h])
		seen[h]++
	}
	return keys
}

func statementMap(l *claim.StatementList) map[string]*claim.Statement {
	all := l.All()
	out := make(map[string]*claim.Statement, len(all))
	for i, key := range statementKeys(l) {
		out[key] = all[i]
	}
	return out
}
