package component

// Status is the world-level session state.
type Status int8

const (
	StatusQuit  Status = -1
	StatusAlive Status = 0
	StatusDead  Status = 1
)

func (s Status) String() string {
	switch s {
	case StatusQuit:
		return "quit"
	case StatusAlive:
		return "alive"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}
