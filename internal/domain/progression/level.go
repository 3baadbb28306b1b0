package progression

import "math"

// The curve starts at 100 XP for level 1 -> 2 and grows by 1.5x per level,
// floored to an integer.
const (
	baseLevelXP  = 100
	levelXPRatio = 1.5
)

// XPRequiredForLevel returns the XP needed to go from the given level to the
// next one.
func XPRequiredForLevel(level int) int64 {
	return int64(math.Floor(baseLevelXP * math.Pow(levelXPRatio, float64(level-1))))
}

// LevelForXP converts a cumulative XP amount into a level. It is defined for
// any xp >= 0 and monotone non-decreasing; zero XP maps to level 1.
func LevelForXP(xp int64) int {
	level := 1
	xpForNextLevel := XPRequiredForLevel(level)
	totalXPNeeded := int64(0)

	for totalXPNeeded+xpForNextLevel <= xp {
		totalXPNeeded += xpForNextLevel
		level++
		xpForNextLevel = XPRequiredForLevel(level)
	}

	return level
}

// XPWithinCurrentLevel returns how much of totalXP falls inside the given
// level, that is, the progress toward the next level.
func XPWithinCurrentLevel(totalXP int64, level int) int64 {
	var xpForPreviousLevels int64
	for i := 1; i < level; i++ {
		xpForPreviousLevels += XPRequiredForLevel(i)
	}

	return totalXP - xpForPreviousLevels
}
