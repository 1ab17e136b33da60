package dispatchers

// AcceptResult is the outcome of matching input against a tree. It is one
// of Ok, Matched, NotMatched or Inapplicable. Failures are ordinary values:
// the matcher never reports a mismatch as an error.
type AcceptResult interface {
	// Score ranks results; higher is closer to success.
	Score() int

	acceptResult()
}

// Scores are fixed here rather than derived from declaration order.
const (
	scoreSuccess      = 1
	scoreSelfMatched  = -1
	scoreRejected     = -2
	scoreInapplicable = -2
)

// Ok reports that a leaf was reached and its handler ran.
type Ok struct {
	// Value is what the handler returned.
	Value any
	// Err is the error the handler returned, if any. The input still
	// matched.
	Err error
}

// Matched reports that a leaf was reached without running its handler.
type Matched struct {
	// Values holds what the tokens along the path accepted.
	Values []any
}

// NotMatched reports the deepest node where matching stopped.
type NotMatched struct {
	// Node is the internal node that stopped matching.
	Node *Internal
	// SelfMatches is true when Node accepted its own word but none of its
	// children matched what followed, and false when Node rejected Current.
	SelfMatches bool
	// Current is the offending word, or "" when input ran out.
	Current string
}

// Inapplicable reports that a node had no input to try, or that a leaf was
// reached with input left over.
type Inapplicable struct{}

func (Ok) Score() int           { return scoreSuccess }
func (Matched) Score() int      { return scoreSuccess }
func (Inapplicable) Score() int { return scoreInapplicable }

func (r NotMatched) Score() int {
	if r.SelfMatches {
		return scoreSelfMatched
	}
	return scoreRejected
}

func (Ok) acceptResult()           {}
func (Matched) acceptResult()      {}
func (NotMatched) acceptResult()   {}
func (Inapplicable) acceptResult() {}

// IsSuccess reports whether r is Ok or Matched.
func IsSuccess(r AcceptResult) bool {
	switch r.(type) {
	case Ok, Matched:
		return true
	default:
		return false
	}
}

// Better returns the higher scoring of a and b. On a tie a wins.
func Better(a, b AcceptResult) AcceptResult {
	if b.Score() > a.Score() {
		return b
	}
	return a
}
