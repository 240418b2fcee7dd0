package checkout

type State int

const (
	Idle State = iota
	Confirming
	Validating
	Committed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Confirming:
		return "confirming"
	case Validating:
		return "validating"
	case Committed:
		return "committed"
	default:
		return "unknown"
	}
}
