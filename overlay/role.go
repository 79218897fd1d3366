package overlay

// Role is the gameplay classification that picks a marker's base color.
type Role int

const (
	Tank Role = iota
	MeleeDPS
	RangedDPS
	Healer
)

func (r Role) String() string {
	switch r {
	case Tank:
		return "tank"
	case MeleeDPS:
		return "melee"
	case RangedDPS:
		return "ranged"
	case Healer:
		return "healer"
	default:
		return "unknown"
	}
}

// RoleResolver maps a raw job-role code to a Role. Implementations must
// return Healer for codes they do not recognize.
type RoleResolver func(code int) Role

func healerOnly(int) Role {
	return Healer
}
