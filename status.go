package chirp

// Status classifies the outcome of a client command after the reply string
// has been parsed. The numeric values mirror the original protocol's status
// codes where they existed.
type Status int

const (
	Success         Status = 0
	AlreadyExists   Status = 1
	InvalidUsername Status = 2
	FailureInvalid  Status = 4 // client-side parse failure, server not contacted
	FailureUnknown  Status = 5 // transport-level or unrecognized reply
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case AlreadyExists:
		return "already_exists"
	case InvalidUsername:
		return "invalid_username"
	case FailureInvalid:
		return "invalid_input"
	case FailureUnknown:
		return "unknown_failure"
	default:
		return "unknown"
	}
}
