package alpplot

// Role is the physical meaning of a fixed position in an event.
type Role int

const (
	RoleIgnored Role = iota
	RoleHiggs
	RoleALP
	RoleZ
	RoleLepton
	RolePhoton
)

var roleNames = [...]string{
	RoleIgnored: "ignored",
	RoleHiggs:   "higgs",
	RoleALP:     "alp",
	RoleZ:       "z",
	RoleLepton:  "lepton",
	RolePhoton:  "photon",
}

func (r Role) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "invalid"
	}
	return roleNames[r]
}

const (
	fullLayout     = 9
	degradedLayout = 8
)

// SlotTable maps every slot of the full nine-particle layout to its role.
// The degraded eight-particle layout is the same table without the last
// photon.
var SlotTable = [fullLayout]Role{
	0: RoleIgnored,
	1: RoleIgnored,
	2: RoleHiggs,
	3: RoleALP,
	4: RoleZ,
	5: RoleLepton,
	6: RoleLepton,
	7: RolePhoton,
	8: RolePhoton,
}

// SlotsOf lists the slots holding role r, in slot order.
func SlotsOf(r Role) []int {
	var slots []int
	for i, role := range SlotTable {
		if role == r {
			slots = append(slots, i)
		}
	}
	return slots
}

var (
	higgsSlot  = SlotsOf(RoleHiggs)[0]
	alpSlot    = SlotsOf(RoleALP)[0]
	zSlot      = SlotsOf(RoleZ)[0]
	leptonSlot = [2]int(SlotsOf(RoleLepton))
	photonSlot = [2]int(SlotsOf(RolePhoton))
)
