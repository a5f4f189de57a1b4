package item

import (
	"github.com/ppiankov/wbmodel/internal/diff"
	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
)

// Reserved substructure keys of entity diffs
const (
	KeyAliases     = "aliases"
	KeyLabel       = "label"
	KeyDescription = "description"
	KeyClaim       = "claim"
	KeyLinks       = "links"
)

// Diff type tags
const (
	TypeEntityDiff = "diff/entity"
	TypeItemDiff   = "diff/" + entity.TypeItem
)

var (
	entitySubstructures = []string{KeyAliases, KeyLabel, KeyDescription, KeyClaim}
	itemSubstructures   = []string{KeyAliases, KeyLabel, KeyDescription, KeyClaim, KeyLinks}
)

// normalizeSubstructures copies ops and makes sure every key holds a nested
// diff, synthesising empty ones for absent keys. A key holding an atomic
// operation cannot describe a substructure and is rejected.
func normalizeSubstructures(ops map[string]diff.Op, keys ...string) (map[string]diff.Op, error) {
	out := make(map[string]diff.Op, len(ops)+len(keys))
	for k, op := range ops {
		out[k] = op
	}

	for _, key := range keys {
		op, ok := out[key]
		if !ok || op == nil {
			out[key] = diff.Empty()
			continue
		}
		nested, ok := op.(*diff.Diff)
		if !ok {
			return nil, errors.TypeMismatchf("%q must hold a nested diff, got %s operation", key, op.Type())
		}
		if nested == nil {
			out[key] = diff.Empty()
		}
	}
	return out, nil
}

// EntityDiff describes the changes between two revisions of an entity,
// keyed by field name. The aliases, label, description and claim entries
// are always present as nested diffs.
type EntityDiff struct {
	ops *diff.Diff
}

// NewEntityDiff normalizes ops and builds the diff
func NewEntityDiff(ops map[string]diff.Op) (*EntityDiff, error) {
	normalized, err := normalizeSubstructures(ops, entitySubstructures...)
	if err != nil {
		return nil, errors.Wrap(err, "build entity diff")
	}
	return &EntityDiff{ops: diff.NewMap(normalized)}, nil
}

func (d *EntityDiff) substructure(key string) *diff.Diff {
	op, ok := d.ops.Get(key)
	if !ok {
		return diff.Empty()
	}
	nested, ok := op.(*diff.Diff)
	if !ok || nested == nil {
		return diff.Empty()
	}
	return nested
}

func (d *EntityDiff) AliasesDiff() *diff.Diff      { return d.substructure(KeyAliases) }
func (d *EntityDiff) LabelsDiff() *diff.Diff       { return d.substructure(KeyLabel) }
func (d *EntityDiff) DescriptionsDiff() *diff.Diff { return d.substructure(KeyDescription) }
func (d *EntityDiff) ClaimsDiff() *diff.Diff       { return d.substructure(KeyClaim) }

// Op returns the operation stored under a field name
func (d *EntityDiff) Op(key string) (diff.Op, bool) { return d.ops.Get(key) }

// Keys returns the field names in sorted order
func (d *EntityDiff) Keys() []string { return d.ops.Keys() }

// Operations returns the underlying immutable container
func (d *EntityDiff) Operations() *diff.Diff { return d.ops }

// IsEmpty reports whether no field changed
func (d *EntityDiff) IsEmpty() bool { return d.ops.IsEmpty() }

func (d *EntityDiff) Type() string { return TypeEntityDiff }

func (d *EntityDiff) IsAtomic() bool { return false }

// ItemDiff is an EntityDiff that also carries site link changes under "links"
type ItemDiff struct {
	EntityDiff
}

// NewItemDiff normalizes ops, including the "links" substructure, and
// builds the diff
func NewItemDiff(ops map[string]diff.Op) (*ItemDiff, error) {
	normalized, err := normalizeSubstructures(ops, itemSubstructures...)
	if err != nil {
		return nil, errors.Wrap(err, "build item diff")
	}
	return &ItemDiff{EntityDiff: EntityDiff{ops: diff.NewMap(normalized)}}, nil
}

// SiteLinkDiff returns the site link changes; never nil
func (d *ItemDiff) SiteLinkDiff() *diff.Diff { return d.substructure(KeyLinks) }

// IsEmpty reports whether neither the entity fields nor the site links changed
func (d *ItemDiff) IsEmpty() bool {
	return d.EntityDiff.IsEmpty() && d.SiteLinkDiff().IsEmpty()
}

func (d *ItemDiff) Type() string { return TypeItemDiff }
