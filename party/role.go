package party

import "github.com/milk9111/playerbox/overlay"

// Job-role codes as reported by the game client.
const (
	RoleCodeTank   = 1
	RoleCodeMelee  = 2
	RoleCodeRanged = 3
	RoleCodeHealer = 4
)

// ResolveRole maps a job-role code to an overlay role. Unknown codes are
// treated as healers.
func ResolveRole(code int) overlay.Role {
	switch code {
	case RoleCodeTank:
		return overlay.Tank
	case RoleCodeMelee:
		return overlay.MeleeDPS
	case RoleCodeRanged:
		return overlay.RangedDPS
	default:
		return overlay.Healer
	}
}
