package claim

import (
	"strings"

	"github.com/ppiankov/wbmodel/internal/errors"
)

// Rank orders statements about the same property
type Rank int

// Numeric values are part of the statement hash and must not change.
const (
	RankDeprecated Rank = 0
	RankNormal     Rank = 1
	RankPreferred  Rank = 2
	RankTruth      Rank = 3 // derived ranks only; never valid on a statement
)

func (r Rank) String() string {
	switch r {
	case RankDeprecated:
		return "deprecated"
	case RankNormal:
		return "normal"
	case RankPreferred:
		return "preferred"
	case RankTruth:
		return "truth"
	default:
		return "unknown"
	}
}

// IsStatementRank reports whether r may be assigned to a statement
func (r Rank) IsStatementRank() bool {
	switch r {
	case RankDeprecated, RankNormal, RankPreferred:
		return true
	case RankTruth:
		return false
	default:
		return false
	}
}

// ParseRank parses a statement rank name
func ParseRank(name string) (Rank, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "deprecated":
		return RankDeprecated, nil
	case "", "normal":
		return RankNormal, nil
	case "preferred":
		return RankPreferred, nil
	default:
		return RankNormal, errors.InvalidArgumentf("invalid rank specified for statement: %q", name)
	}
}
