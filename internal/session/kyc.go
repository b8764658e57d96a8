package session

// Level is the KYC maturity level reported by the backend. The client never
// synthesizes intermediate transitions; whatever a profile fetch reports is
// authoritative, including a decrease.
type Level int

const (
	LevelUnverified Level = 0
	LevelPartial    Level = 1
	LevelVerified   Level = 2
)

// Opened reports whether the account-opening features are unlocked.
func (l Level) Opened() bool {
	return l >= LevelVerified
}

func (l Level) String() string {
	switch l {
	case LevelUnverified:
		return "unverified"
	case LevelPartial:
		return "partial"
	case LevelVerified:
		return "verified"
	default:
		return "unknown"
	}
}
