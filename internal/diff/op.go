// Package diff provides composable diff operations: atomic add, remove and
// change operations, and the Diff container that groups them by key (or as
// a plain list) and may itself be nested inside another Diff.
package diff

// Operation types
const (
	TypeAdd    = "add"
	TypeRemove = "remove"
	TypeChange = "change"
	TypeDiff   = "diff"
)

// Op is a single diff operation
type Op interface {
	Type() string
	IsAtomic() bool
}

// Add introduces a value
type Add struct {
	NewValue any
}

func (Add) Type() string   { return TypeAdd }
func (Add) IsAtomic() bool { return true }

// Remove drops a value
type Remove struct {
	OldValue any
}

func (Remove) Type() string   { return TypeRemove }
func (Remove) IsAtomic() bool { return true }

// Change replaces a value
type Change struct {
	OldValue any
	NewValue any
}

func (Change) Type() string   { return TypeChange }
func (Change) IsAtomic() bool { return true }
