package diff

import (
	"sort"

	"github.com/ppiankov/wbmodel/internal/errors"
)

// Maps computes an associative diff between two maps. equal decides whether
// a value present on both sides changed.
func Maps[V any](from, to map[string]V, equal func(a, b V) bool) *Diff {
	ops := make(map[string]Op)
	for key, oldValue := range from {
		newValue, ok := to[key]
		switch {
		case !ok:
			ops[key] = Remove{OldValue: oldValue}
		case !equal(oldValue, newValue):
			ops[key] = Change{OldValue: oldValue, NewValue: newValue}
		}
	}
	for key, newValue := range to {
		if _, ok := from[key]; !ok {
			ops[key] = Add{NewValue: newValue}
		}
	}
	return NewMap(ops)
}

// Lists computes a set-like list diff: order is ignored, removes come first
// in from's order, then adds in to's order.
func Lists(from, to []string) *Diff {
	inFrom := make(map[string]bool, len(from))
	for _, v := range from {
		inFrom[v] = true
	}
	inTo := make(map[string]bool, len(to))
	for _, v := range to {
		inTo[v] = true
	}

	var ops []Op
	for _, v := range from {
		if !inTo[v] {
			ops = append(ops, Remove{OldValue: v})
		}
	}
	for _, v := range to {
		if !inFrom[v] {
			ops = append(ops, Add{NewValue: v})
		}
	}
	return NewList(ops)
}

// PatchMap applies an associative diff to a copy of base. Removes of absent
// keys are ignored. Nested diffs and values of the wrong type fail with
// ErrTypeMismatch and base is left untouched.
func PatchMap[V any](base map[string]V, d *Diff) (map[string]V, error) {
	out := make(map[string]V, len(base))
	for key, v := range base {
		out[key] = v
	}

	for _, key := range d.Keys() {
		op, _ := d.Get(key)
		switch o := op.(type) {
		case Add:
			v, ok := o.NewValue.(V)
			if !ok {
				return nil, errors.TypeMismatchf("add %q: unexpected value type %T", key, o.NewValue)
			}
			out[key] = v
		case Change:
			v, ok := o.NewValue.(V)
			if !ok {
				return nil, errors.TypeMismatchf("change %q: unexpected value type %T", key, o.NewValue)
			}
			out[key] = v
		case Remove:
			delete(out, key)
		default:
			return nil, errors.TypeMismatchf("cannot apply %s operation to map key %q", op.Type(), key)
		}
	}
	return out, nil
}

// PatchList applies a list diff to a copy of base: removes drop every
// occurrence, adds append values not already present.
func PatchList(base []string, d *Diff) ([]string, error) {
	remove := make(map[string]bool)
	var add []string
	for _, op := range d.Ops() {
		switch o := op.(type) {
		case Remove:
			v, ok := o.OldValue.(string)
			if !ok {
				return nil, errors.TypeMismatchf("remove: unexpected value type %T", o.OldValue)
			}
			remove[v] = true
		case Add:
			v, ok := o.NewValue.(string)
			if !ok {
				return nil, errors.TypeMismatchf("add: unexpected value type %T", o.NewValue)
			}
			add = append(add, v)
		default:
			return nil, errors.TypeMismatchf("cannot apply %s operation to a list", op.Type())
		}
	}

	out := make([]string, 0, len(base)+len(add))
	present := make(map[string]bool, len(base)+len(add))
	for _, v := range base {
		if !remove[v] {
			out = append(out, v)
			present[v] = true
		}
	}
	for _, v := range add {
		if !present[v] {
			out = append(out, v)
			present[v] = true
		}
	}
	return out, nil
}

// SortedKeys returns the keys of m in sorted order
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
