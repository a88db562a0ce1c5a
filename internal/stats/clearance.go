package stats

import (
	"math"
	"time"

	"starlog-service/internal/domain"
)

// Титулы уровней допуска, индекс 0 соответствует уровню 1.
var clearanceTitles = [...]string{
	"ENSIGN",
	"LIEUTENANT",
	"LIEUTENANT COMMANDER",
	"COMMANDER",
	"CAPTAIN",
	"COMMODORE",
	"REAR ADMIRAL",
	"VICE ADMIRAL",
	"ADMIRAL",
	"FLEET ADMIRAL",
}

// Пороговые полосы, проверяются сверху вниз; первая подошедшая побеждает.
// Полосы полуоткрыты снизу, всё ниже минимального порога — уровень 1.
var clearanceBands = []struct {
	threshold float64
	level     int
}{
	{85, 10},
	{75, 9},
	{65, 8},
	{55, 7},
	{45, 6},
	{35, 5},
	{25, 4},
	{15, 3},
	{8, 2},
}

// ComputeClearance вычисляет уровень допуска из возраста аккаунта, числа
// подписчиков и общего числа вкладов. Чистая функция: момент "сейчас"
// передаётся явно, скрытой зависимости от часов нет.
//
// Счёт 0-100 складывается из трёх компонент с потолками:
// возраст — min(лет × 4, 40), год считается как 365.25 суток;
// подписчики — min(log10 × 10, 30); вклады — min(log10 × 10, 30).
func ComputeClearance(createdAt time.Time, followers, totalContributions int, now time.Time) domain.ClearanceLevel {
	years := now.Sub(createdAt).Hours() / 24 / 365.25
	if years < 0 {
		years = 0
	}
	ageScore := math.Min(years*4, 40)

	var followerScore float64
	if followers > 0 {
		followerScore = math.Min(math.Log10(float64(followers))*10, 30)
	}

	var contributionScore float64
	if totalContributions > 0 {
		contributionScore = math.Min(math.Log10(float64(totalContributions))*10, 30)
	}

	score := ageScore + followerScore + contributionScore

	level := 1
	for _, band := range clearanceBands {
		if score >= band.threshold {
			level = band.level
			break
		}
	}

	return domain.ClearanceLevel{
		Level: level,
		Title: clearanceTitles[level-1],
	}
}
