package engine

// Side identifies a player and the court half it defends
type Side int

const (
	SideNone Side = iota
	SideAI        // Left paddle
	SideHuman     // Right paddle
)

var sideName = map[Side]string{
	SideNone:  "none",
	SideAI:    "ai",
	SideHuman: "human",
}

func (s Side) String() string {
	if name, ok := sideName[s]; ok {
		return name
	}
	return "unknown"
}

// Opponent returns the other player, SideNone has no opponent
func (s Side) Opponent() Side {
	switch s {
	case SideAI:
		return SideHuman
	case SideHuman:
		return SideAI
	default:
		return SideNone
	}
}

// Direction returns the sign of horizontal velocity that travels toward this side
// AI defends the left edge (negative x), human the right edge (positive x)
func (s Side) Direction() float64 {
	switch s {
	case SideAI:
		return -1
	case SideHuman:
		return 1
	default:
		return 0
	}
}
