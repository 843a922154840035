package credit

import "time"

type Status string

const (
	StatusPendingResolution Status = "PENDING_RESOLUTION"
	StatusAvailable         Status = "AVAILABLE"
	StatusConsumed          Status = "CONSUMED"
	StatusExpired           Status = "EXPIRED"
	StatusForfeited         Status = "FORFEITED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusConsumed, StatusExpired, StatusForfeited:
		return true
	default:
		return false
	}
}

// Policy holds the cancellation terms.
type Policy struct {
	// Notice is how long before the start a cancellation still earns an immediate credit.
	Notice time.Duration
	// Validity is how long an available credit can be used.
	Validity time.Duration
}

func DefaultPolicy() Policy {
	return Policy{Notice: 24 * time.Hour, Validity: 21 * 24 * time.Hour}
}
