package modes

type Mode uint8

const (
	ModeProduction Mode = iota
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return "unknown"
}

// Checked reports whether internal invariants should be verified at runtime.
func (m Mode) Checked() bool {
	return m == ModeDevelopment
}
