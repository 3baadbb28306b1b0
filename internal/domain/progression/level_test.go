package progression

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_LevelForXP(t *testing.T) {
	require.Equal(t, 1, LevelForXP(0))
	require.Equal(t, 1, LevelForXP(99))
	require.Equal(t, 2, LevelForXP(100))
	require.Equal(t, 2, LevelForXP(110))

	// Level 2 requires floor(100*1.5) = 150 more.
	require.Equal(t, 2, LevelForXP(249))
	require.Equal(t, 3, LevelForXP(250))
}

func Test_LevelForXP_Monotonic(t *testing.T) {
	prev := LevelForXP(0)
	for xp := int64(1); xp <= 5000; xp++ {
		level := LevelForXP(xp)
		require.GreaterOrEqual(t, level, prev, "xp=%d", xp)
		prev = level
	}
}

func Test_XPRequiredForLevel(t *testing.T) {
	require.Equal(t, int64(100), XPRequiredForLevel(1))
	require.Equal(t, int64(150), XPRequiredForLevel(2))
	require.Equal(t, int64(225), XPRequiredForLevel(3))
	require.Equal(t, int64(337), XPRequiredForLevel(4))
}

func Test_XPWithinCurrentLevel(t *testing.T) {
	require.Equal(t, int64(0), XPWithinCurrentLevel(0, 1))
	require.Equal(t, int64(99), XPWithinCurrentLevel(99, 1))
	require.Equal(t, int64(0), XPWithinCurrentLevel(100, 2))
	require.Equal(t, int64(10), XPWithinCurrentLevel(110, 2))
	require.Equal(t, int64(0), XPWithinCurrentLevel(250, 3))
}
