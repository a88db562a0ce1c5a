package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var clearanceNow = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func yearsAgo(years float64) time.Time {
	return clearanceNow.Add(-time.Duration(years * 365.25 * 24 * float64(time.Hour)))
}

func TestComputeClearance_FreshAccount(t *testing.T) {
	level := ComputeClearance(clearanceNow, 0, 0, clearanceNow)

	assert.Equal(t, 1, level.Level)
	assert.Equal(t, "ENSIGN", level.Title)
}

func TestComputeClearance_VeteranMaxesOut(t *testing.T) {
	// 10 лет даёт потолок возраста 40, 1000 подписчиков и 10000 вкладов —
	// по 30: итог 100
	level := ComputeClearance(yearsAgo(10.5), 1000, 10000, clearanceNow)

	assert.Equal(t, 10, level.Level)
	assert.Equal(t, "FLEET ADMIRAL", level.Title)
}

func TestComputeClearance_ComponentCaps(t *testing.T) {
	// Миллион подписчиков не пробивает потолок компоненты: 60 → 30
	capped := ComputeClearance(clearanceNow, 1000000, 0, clearanceNow)
	atCap := ComputeClearance(clearanceNow, 1000, 0, clearanceNow)

	assert.Equal(t, capped.Level, atCap.Level)

	// Сто лет возраста — то же, что десять
	old := ComputeClearance(yearsAgo(100), 0, 0, clearanceNow)
	ten := ComputeClearance(yearsAgo(10.5), 0, 0, clearanceNow)

	assert.Equal(t, ten.Level, old.Level)
}

func TestComputeClearance_BandEdges(t *testing.T) {
	testCases := []struct {
		name          string
		createdAt     time.Time
		followers     int
		contributions int
		expectedLevel int
		expectedTitle string
	}{
		{
			name:          "just below first band",
			createdAt:     yearsAgo(1.9), // 7.6 балла
			expectedLevel: 1,
			expectedTitle: "ENSIGN",
		},
		{
			name:          "at lieutenant threshold",
			createdAt:     yearsAgo(2.1), // 8.4 балла
			expectedLevel: 2,
			expectedTitle: "LIEUTENANT",
		},
		{
			name:          "mid band",
			createdAt:     yearsAgo(4), // 16 баллов
			expectedLevel: 3,
			expectedTitle: "LIEUTENANT COMMANDER",
		},
		{
			name:          "mixed components",
			createdAt:     yearsAgo(5), // 20 + 20 + 20 = 60
			followers:     100,
			contributions: 100,
			expectedLevel: 7,
			expectedTitle: "REAR ADMIRAL",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level := ComputeClearance(tc.createdAt, tc.followers, tc.contributions, clearanceNow)

			assert.Equal(t, tc.expectedLevel, level.Level)
			assert.Equal(t, tc.expectedTitle, level.Title)
		})
	}
}

func TestComputeClearance_FutureCreationClampsToZeroAge(t *testing.T) {
	level := ComputeClearance(clearanceNow.Add(24*time.Hour), 0, 0, clearanceNow)

	assert.Equal(t, 1, level.Level)
}

func TestComputeClearance_NegativeCountsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		level := ComputeClearance(clearanceNow, -5, -10, clearanceNow)
		assert.Equal(t, 1, level.Level)
	})
}
