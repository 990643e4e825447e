package progression

const (
	// BaseXP is the XP required to go from level 0 to level 1
	BaseXP = 100.0

	// LevelExponent controls how steeply per-level XP requirements grow
	LevelExponent = 1.5

	// MaxIterationLevel caps the level calculation loop
	MaxIterationLevel = 1000

	// XPPerCoinSpent is the XP awarded per coin spent on cases
	XPPerCoinSpent = 1
)
