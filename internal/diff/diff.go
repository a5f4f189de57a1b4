package diff

import "sort"

// Diff is an immutable container of operations, either keyed (associative)
// or ordered (list). A nil *Diff behaves as an empty associative diff.
type Diff struct {
	ops         map[string]Op
	list        []Op
	associative bool
}

// NewMap builds an associative diff. Nil operations are dropped.
func NewMap(ops map[string]Op) *Diff {
	d := &Diff{ops: make(map[string]Op, len(ops)), associative: true}
	for key, op := range ops {
		if op != nil {
			d.ops[key] = op
		}
	}
	return d
}

// NewList builds a non-associative diff. Nil operations are dropped.
func NewList(ops []Op) *Diff {
	d := &Diff{}
	for _, op := range ops {
		if op != nil {
			d.list = append(d.list, op)
		}
	}
	return d
}

// Empty returns an associative diff with no operations
func Empty() *Diff {
	return NewMap(nil)
}

func (d *Diff) Type() string   { return TypeDiff }
func (d *Diff) IsAtomic() bool { return false }

func (d *Diff) IsAssociative() bool {
	return d == nil || d.associative
}

// Get returns the operation stored under key
func (d *Diff) Get(key string) (Op, bool) {
	if d == nil {
		return nil, false
	}
	op, ok := d.ops[key]
	return op, ok
}

func (d *Diff) Has(key string) bool {
	_, ok := d.Get(key)
	return ok
}

// Keys returns the keys of an associative diff in sorted order
func (d *Diff) Keys() []string {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.ops))
	for key := range d.ops {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Ops returns the operations, in key order for associative diffs
func (d *Diff) Ops() []Op {
	if d == nil {
		return nil
	}
	if !d.associative {
		out := make([]Op, len(d.list))
		copy(out, d.list)
		return out
	}
	out := make([]Op, 0, len(d.ops))
	for _, key := range d.Keys() {
		out = append(out, d.ops[key])
	}
	return out
}

// Map returns a copy of the keyed operations
func (d *Diff) Map() map[string]Op {
	out := make(map[string]Op)
	if d == nil {
		return out
	}
	for key, op := range d.ops {
		out[key] = op
	}
	return out
}

// Len counts the top-level operations
func (d *Diff) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ops) + len(d.list)
}

// IsEmpty reports whether the diff describes no change: every operation is a
// nested diff that is itself empty.
func (d *Diff) IsEmpty() bool {
	for _, op := range d.Ops() {
		nested, ok := op.(*Diff)
		if !ok || !nested.IsEmpty() {
			return false
		}
	}
	return true
}

// Adds returns the values introduced by Add operations
func (d *Diff) Adds() []any {
	var out []any
	for _, op := range d.Ops() {
		if a, ok := op.(Add); ok {
			out = append(out, a.NewValue)
		}
	}
	return out
}

// Removes returns the values dropped by Remove operations
func (d *Diff) Removes() []any {
	var out []any
	for _, op := range d.Ops() {
		if r, ok := op.(Remove); ok {
			out = append(out, r.OldValue)
		}
	}
	return out
}

// Changes returns the Change operations
func (d *Diff) Changes() []Change {
	var out []Change
	for _, op := range d.Ops() {
		if c, ok := op.(Change); ok {
			out = append(out, c)
		}
	}
	return out
}
