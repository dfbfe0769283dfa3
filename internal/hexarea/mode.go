package hexarea

// Mode selects how typed characters are interpreted.
type Mode uint8

const (
	// ModeNormal treats characters as navigation commands.
	ModeNormal Mode = iota
	// ModeInsert overwrites hex digits in place.
	ModeInsert
)

func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "INSERT"
	default:
		return "NORMAL"
	}
}

func (m Mode) IsNormal() bool {
	return m == ModeNormal
}

func (m Mode) IsInsert() bool {
	return m == ModeInsert
}
