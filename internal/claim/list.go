package claim

import (
	"strings"

	"github.com/ppiankov/wbmodel/internal/entity"
	"github.com/ppiankov/wbmodel/internal/errors"
	"github.com/ppiankov/wbmodel/internal/hashing"
)

// StatementList is an ordered list of statements. Order is significant for
// equality and hashing. A nil *StatementList reads as empty.
type StatementList struct {
	statements []*Statement
}

// NewStatementList copies stmts into a new list
func NewStatementList(stmts ...*Statement) (*StatementList, error) {
	l := &StatementList{}
	for i, s := range stmts {
		if err := l.Add(s); err != nil {
			return nil, errors.Wrapf(err, "statement %d", i)
		}
	}
	return l, nil
}

// Add appends a copy of s. A statement whose non-empty GUID is already
// present replaces the existing one in place.
func (l *StatementList) Add(s *Statement) error {
	if s == nil {
		return errors.InvalidArgumentf("statement is nil")
	}
	if guid := s.GUID(); guid != "" {
		for i, existing := range l.statements {
			if existing.GUID() == guid {
				l.statements[i] = s.Copy()
				return nil
			}
		}
	}
	l.statements = append(l.statements, s.Copy())
	return nil
}

func (l *StatementList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.statements)
}

// All returns copies of the statements in list order
func (l *StatementList) All() []*Statement {
	if l == nil {
		return nil
	}
	out := make([]*Statement, len(l.statements))
	for i, s := range l.statements {
		out[i] = s.Copy()
	}
	return out
}

// ByGUID returns a copy of the statement with the given GUID
func (l *StatementList) ByGUID(guid string) (*Statement, error) {
	if strings.TrimSpace(guid) == "" {
		return nil, errors.InvalidKeyf("statement GUID must not be empty")
	}
	if l != nil {
		for _, s := range l.statements {
			if s.GUID() == guid {
				return s.Copy(), nil
			}
		}
	}
	return nil, errors.NotFoundf("no statement with GUID %q in the list", guid)
}

// RemoveByGUID deletes the statement with the given GUID; absent GUIDs are a no-op
func (l *StatementList) RemoveByGUID(guid string) error {
	if strings.TrimSpace(guid) == "" {
		return errors.InvalidKeyf("statement GUID must not be empty")
	}
	for i, s := range l.statements {
		if s.GUID() == guid {
			l.statements = append(l.statements[:i:i], l.statements[i+1:]...)
			return nil
		}
	}
	return nil
}

// PropertyIDs returns the distinct main snak properties in first-seen order
func (l *StatementList) PropertyIDs() []entity.PropertyID {
	var out []entity.PropertyID
	seen := make(map[int64]bool)
	for _, s := range l.All() {
		p := s.PropertyID()
		if !seen[p.NumericID()] {
			seen[p.NumericID()] = true
			out = append(out, p)
		}
	}
	return out
}

// ByPropertyID returns the statements whose main snak uses p
func (l *StatementList) ByPropertyID(p entity.PropertyID) *StatementList {
	out := &StatementList{}
	for _, s := range l.All() {
		if s.PropertyID().Equals(p) {
			out.statements = append(out.statements, s)
		}
	}
	return out
}

// BestForProperty returns the preferred statements for p, or the normal ones
// when none is preferred. Deprecated statements are never returned.
func (l *StatementList) BestForProperty(p entity.PropertyID) []*Statement {
	var preferred, normal []*Statement
	for _, s := range l.ByPropertyID(p).statements {
		switch s.Rank() {
		case RankPreferred:
			preferred = append(preferred, s)
		case RankNormal:
			normal = append(normal, s)
		case RankDeprecated, RankTruth:
		}
	}
	if len(preferred) > 0 {
		return preferred
	}
	return normal
}

// Equals compares the lists element by element
func (l *StatementList) Equals(other *StatementList) bool {
	if l.Len() != other.Len() {
		return false
	}
	for i := 0; i < l.Len(); i++ {
		if !l.statements[i].Equals(other.statements[i]) {
			return false
		}
	}
	return true
}

// Hash digests the statement hashes in list order
func (l *StatementList) Hash() string {
	hashes := make([]string, 0, l.Len())
	for i := 0; i < l.Len(); i++ {
		hashes = append(hashes, l.statements[i].Hash())
	}
	return hashing.Sum(hashes...)
}

// Copy returns an independent list
func (l *StatementList) Copy() *StatementList {
	return &StatementList{statements: l.All()}
}
