package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ppiankov/wbmodel/internal/claim"
	"github.com/ppiankov/wbmodel/internal/config"
	"github.com/ppiankov/wbmodel/internal/diff"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/item"
	"github.com/ppiankov/wbmodel/internal/itemdoc"
	"gopkg.in/yaml.v3"
)

// opView is the serializable form of a diff operation
type opView struct {
	Op   string            `json:"op" yaml:"op"`
	Old  any               `json:"old,omitempty" yaml:"old,omitempty"`
	New  any               `json:"new,omitempty" yaml:"new,omitempty"`
	Ops  map[string]opView `json:"ops,omitempty" yaml:"ops,omitempty"`
	List []opView          `json:"list,omitempty" yaml:"list,omitempty"`
}

// diffView is what `wbmodel diff` prints in json and yaml formats
type diffView struct {
	Type    string            `json:"type" yaml:"type"`
	Empty   bool              `json:"empty" yaml:"empty"`
	OldHash string            `json:"old_hash" yaml:"old_hash"`
	NewHash string            `json:"new_hash" yaml:"new_hash"`
	Changes map[string]opView `json:"changes,omitempty" yaml:"changes,omitempty"`
}

func newDiffView(from, to *item.Item, d *item.ItemDiff) diffView {
	view := diffView{
		Type:    d.Type(),
		Empty:   d.IsEmpty(),
		OldHash: from.Hash(),
		NewHash: to.Hash(),
	}
	if nested := viewOf(d.Operations()); len(nested.Ops) > 0 {
		view.Changes = nested.Ops
	}
	return view
}

// viewOf converts op; empty nested diffs are left out of their parent
func viewOf(op diff.Op) opView {
	switch o := op.(type) {
	case diff.Add:
		return opView{Op: o.Type(), New: valueView(o.NewValue)}
	case diff.Remove:
		return opView{Op: o.Type(), Old: valueView(o.OldValue)}
	case diff.Change:
		return opView{Op: o.Type(), Old: valueView(o.OldValue), New: valueView(o.NewValue)}
	case *diff.Diff:
		v := opView{Op: o.Type()}
		if o.IsAssociative() {
			for _, key := range o.Keys() {
				child, _ := o.Get(key)
				if nested, ok := child.(*diff.Diff); ok && nested.IsEmpty() {
					continue
				}
				if v.Ops == nil {
					v.Ops = make(map[string]opView)
				}
				v.Ops[key] = viewOf(child)
			}
			return v
		}
		for _, child := range o.Ops() {
			v.List = append(v.List, viewOf(child))
		}
		return v
	default:
		return opView{Op: op.Type()}
	}
}

func valueView(v any) any {
	switch x := v.(type) {
	case item.SiteLink:
		return itemdoc.FromSiteLink(x)
	case *claim.Statement:
		return itemdoc.FromStatement(x)
	default:
		return v
	}
}

// writeFormatted renders v as JSON or YAML
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.InvalidArgumentf("format %q cannot render structured output", format)
	}
}

var opSymbols = map[string]string{
	diff.TypeAdd:    "+",
	diff.TypeRemove: "-",
	diff.TypeChange: "~",
	diff.TypeDiff:   "~",
}

// writeDiffText prints a human-readable diff, one substructure per block
func writeDiffText(w io.Writer, view diffView) error {
	if view.Empty {
		_, err := fmt.Fprintln(w, "no changes")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s -> %s\n", shortHash(view.OldHash), shortHash(view.NewHash))
	for _, key := range diff.SortedKeys(view.Changes) {
		fmt.Fprintf(&b, "%s\n", key)
		writeOpsText(&b, view.Changes[key], 1)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeOpsText(b *strings.Builder, v opView, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, key := range diff.SortedKeys(v.Ops) {
		child := v.Ops[key]
		switch child.Op {
		case diff.TypeDiff:
			fmt.Fprintf(b, "%s~ %s\n", indent, key)
			writeOpsText(b, child, depth+1)
		default:
			fmt.Fprintf(b, "%s%s %s: %s\n", indent, opSymbols[child.Op], key, describe(child))
		}
	}
	for _, child := range v.List {
		fmt.Fprintf(b, "%s%s %s\n", indent, opSymbols[child.Op], describe(child))
	}
}

func describe(v opView) string {
	switch v.Op {
	case diff.TypeAdd:
		return textOf(v.New)
	case diff.TypeRemove:
		return textOf(v.Old)
	case diff.TypeChange:
		return textOf(v.Old) + " -> " + textOf(v.New)
	default:
		return ""
	}
}

func textOf(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case []string:
		return fmt.Sprintf("%q", x)
	case itemdoc.SiteLink:
		if len(x.Badges) == 0 {
			return fmt.Sprintf("%q", x.Title)
		}
		return fmt.Sprintf("%q %v", x.Title, x.Badges)
	case itemdoc.Statement:
		s := x.MainSnak.Property + " " + snakText(x.MainSnak)
		if x.Rank != "" {
			s += " (" + x.Rank + ")"
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}

func snakText(s itemdoc.Snak) string {
	if s.Value != nil {
		return s.Value.Value
	}
	return s.Type
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
