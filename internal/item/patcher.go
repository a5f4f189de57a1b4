package item

import (
	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/diff"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/term"
)

// Patcher applies item diffs
type Patcher struct{}

func NewPatcher() *Patcher { return &Patcher{} }

// PatchItem returns a new item: base with d applied. Base is not modified.
// Statements kept from base stay in place; added statements are appended
// in key order.
func (Patcher) PatchItem(base *Item, d *ItemDiff) (*Item, error) {
	if base == nil || d == nil {
		return nil, errors.InvalidArgumentf("cannot patch with a nil item or diff")
	}

	out := base.Copy()

	labels, err := patchTerms(base.fingerprint.Labels(), d.LabelsDiff())
	if err != nil {
		return nil, errors.Wrap(err, "patch labels")
	}
	descriptions, err := patchTerms(base.fingerprint.Descriptions(), d.DescriptionsDiff())
	if err != nil {
		return nil, errors.Wrap(err, "patch descriptions")
	}
	aliases, err := patchAliases(base.fingerprint.AliasGroups(), d.AliasesDiff())
	if err != nil {
		return nil, errors.Wrap(err, "patch aliases")
	}
	out.SetFingerprint(term.NewFingerprint(labels, descriptions, aliases))

	links, err := diff.PatchMap(base.siteLinks.toMap(), d.SiteLinkDiff())
	if err != nil {
		return nil, errors.Wrap(err, "patch site links")
	}
	out.siteLinks = &SiteLinkList{links: links}

	statements, err := patchStatements(base.statements, d.ClaimsDiff())
	if err != nil {
		return nil, errors.Wrap(err, "patch statements")
	}
	out.statements = statements

	return out, nil
}

func patchTerms(base *term.TermList, d *diff.Diff) (*term.TermList, error) {
	texts, err := diff.PatchMap(base.ToTextArray(), d)
	if err != nil {
		return nil, err
	}
	out := term.NewEmptyTermList()
	for lang, text := range texts {
		if err := out.SetTextForLanguage(lang, text); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func patchAliases(base *term.AliasGroupList, d *diff.Diff) (*term.AliasGroupList, error) {
	current := base.ToTextArray()
	out := base.Copy()
	for _, lang := range d.Keys() {
		op, _ := d.Get(lang)
		var (
			aliases []string
			err     error
		)
		switch o := op.(type) {
		case *diff.Diff:
			aliases, err = diff.PatchList(current[lang], o)
		case diff.Add:
			aliases, err = aliasValue(o.NewValue)
		case diff.Change:
			aliases, err = aliasValue(o.NewValue)
		case diff.Remove:
			aliases = nil
		default:
			err = errors.TypeMismatchf("unsupported %s operation", op.Type())
		}
		if err != nil {
			return nil, errors.Wrapf(err, "language %q", lang)
		}
		if err := out.SetAliasesForLanguage(lang, aliases); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func aliasValue(v any) ([]string, error) {
	aliases, ok := v.([]string)
	if !ok {
		return nil, errors.TypeMismatchf("expected alias list, got %T", v)
	}
	return aliases, nil
}

func patchStatements(base *claim.StatementList, d *diff.Diff) (*claim.StatementList, error) {
	patched, err := diff.PatchMap(statementMap(base), d)
	if err != nil {
		return nil, err
	}

	out := &claim.StatementList{}
	kept := make(map[string]bool, len(patched))
	for _, key := range statementKeys(base) {
		if replacement, ok := patched[key]; ok && !kept[key] {
			kept[key] = true
			if err := out.Add(replacement); err != nil {
				return nil, err
			}
		}
	}
	for _, key := range diff.SortedKeys(patched) {
		if kept[key] {
			continue
		}
		if err := out.Add(patched[key]); err != nil {
			return nil, err
		}
	}
	return out, nil
}
