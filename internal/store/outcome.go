package store

// Outcome records how a console line was resolved.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeFailed
	OutcomeUnknownCommand
	OutcomeRejected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "ok"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnknownCommand:
		return "unknown"
	case OutcomeRejected:
		return "rejected"
	default:
		return "invalid"
	}
}
