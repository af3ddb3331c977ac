// Package tooltip holds the tooltip mode a block is validated under.
package tooltip

// Mode says whether, and how, the game shows a block to the player.
type Mode uint8

const (
	No Mode = iota
	Yes
	// Past is for effects that already happened, uses past tense.
	Past
	// FailuresOnly shows only the failing parts of a trigger.
	FailuresOnly
)

func (m Mode) IsTooltipped() bool { return m != No }

// Past returns the past-tense form of a tooltipped mode.
func (m Mode) Past() Mode {
	if m == Yes {
		return Past
	}
	return m
}

func (m Mode) String() string {
	switch m {
	case Yes:
		return "yes"
	case Past:
		return "past"
	case FailuresOnly:
		return "failures-only"
	}
	return "no"
}
