package stats

import (
	"sort"
	"time"

	"starlog-service/internal/domain"
)

// defaultMostActiveHour — заглушка для случая пустого списка коммитов.
const defaultMostActiveHour = 14

// topLanguagesLimit и topReposLimit — размеры выдаваемых топов.
const (
	topLanguagesLimit = 10
	topReposLimit     = 10
)

// orderedCounter — счётчик с сохранением порядка первого появления ключа.
// Нужен для детерминированного разрешения ничьих: при равных суммах
// побеждает ключ, встреченный первым.
type orderedCounter[K comparable] struct {
	keys   []K
	counts map[K]int
}

func newOrderedCounter[K comparable]() *orderedCounter[K] {
	return &orderedCounter[K]{counts: make(map[K]int)}
}

func (c *orderedCounter[K]) add(key K, n int) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

// max возвращает ключ с наибольшей суммой; при равенстве — первый по
// порядку появления. Второе значение false, если счётчик пуст.
func (c *orderedCounter[K]) max() (K, bool) {
	var best K
	if len(c.keys) == 0 {
		return best, false
	}
	best = c.keys[0]
	for _, k := range c.keys[1:] {
		if c.counts[k] > c.counts[best] {
			best = k
		}
	}
	return best, true
}

// Aggregate преобразует пять сырых наборов данных в итоговый снимок за год.
// Чистая функция: без I/O, детерминирована относительно входа. Никогда не
// возвращает ошибку для корректно типизированного входа — отсутствующие
// необязательные данные нормализуются в безопасные значения по умолчанию.
func Aggregate(
	profile *domain.UserCoreProfile,
	contribs *domain.ContributionData,
	repos []*domain.RepoContributionData,
	collaborators []*domain.CollaboratorData,
	totalOwnedStars int,
) *domain.AggregatedStats {
	if contribs == nil {
		contribs = &domain.ContributionData{}
	}

	result := &domain.AggregatedStats{
		TotalContributions:    contribs.Total,
		TotalCommits:          contribs.TotalCommits,
		TotalPRs:              contribs.TotalPRs,
		TotalIssues:           contribs.TotalIssues,
		TotalStarsEarned:      totalOwnedStars,
		TotalReposContributed: len(repos),
		Collaborators:         collaborators,
		MostActiveHour:        defaultMostActiveHour,
	}
	if result.Collaborators == nil {
		result.Collaborators = []*domain.CollaboratorData{}
	}
	if profile != nil {
		result.Followers = profile.Followers
	}

	// 1. Гистограмма по месяцам: месяц берётся из даты дня, не из индекса
	// недели.
	dayCounter := newOrderedCounter[string]()
	for _, week := range contribs.Weeks {
		for _, day := range week.Days {
			if t, err := time.Parse("2006-01-02", day.Date); err == nil {
				result.MonthlyContributions[int(t.Month())-1] += day.Count
				// 4. Самый активный день недели: сумма по имени дня недели,
				// ничья разрешается порядком первого появления.
				dayCounter.add(t.Weekday().String(), day.Count)
			}
		}
	}

	// 2. Максимум вкладов за одну неделю.
	for _, week := range contribs.Weeks {
		var weekTotal int
		for _, day := range week.Days {
			weekTotal += day.Count
		}
		if weekTotal > result.MaxWeeklyContributions {
			result.MaxWeeklyContributions = weekTotal
		}
	}

	// 3. Стрики по сплющенной и отсортированной последовательности дней.
	result.LongestStreak, result.CurrentStreak = computeStreaks(contribs.Weeks)

	if day, ok := dayCounter.max(); ok {
		result.MostActiveDay = day
	}

	// 5. Самый активный час (UTC) по выборке меток времени коммитов.
	result.MostActiveHour = mostActiveHour(contribs.CommitTimestamps)

	// 6. Нормализация долей языков по всем репозиториям.
	result.TopLanguages = normalizeLanguages(repos)

	// 7. Классификация ролей и топ-10 по звёздам; полное число
	// репозиториев сохранено выше до обрезки.
	result.TopRepos = classifyRepos(repos)

	return result
}

// computeStreaks сплющивает все дни в одну хронологическую
// последовательность и считает самый длинный и текущий стрики. Стрик
// прерывается только днём с явным нулевым счётчиком; отсутствующий в
// данных день стрик не прерывает.
func computeStreaks(weeks []domain.ContributionWeek) (longest, current int) {
	var days []domain.ContributionDay
	for _, week := range weeks {
		days = append(days, week.Days...)
	}
	// Вход ожидается упорядоченным, но сортируем защитно: даты в формате
	// "2006-01-02" сравниваются лексикографически.
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	run := 0
	for _, day := range days {
		if day.Count > 0 {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}

	for i := len(days) - 1; i >= 0; i-- {
		if days[i].Count <= 0 {
			break
		}
		current++
	}

	return longest, current
}

// mostActiveHour возвращает час UTC с наибольшим числом коммитов из
// выборки; при пустой выборке — фиксированную заглушку.
func mostActiveHour(timestamps []string) int {
	hourCounter := newOrderedCounter[int]()
	for _, ts := range timestamps {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			hourCounter.add(t.UTC().Hour(), 1)
		}
	}
	if hour, ok := hourCounter.max(); ok {
		return hour
	}
	return defaultMostActiveHour
}

// normalizeLanguages суммирует сырые проценты каждого языка по всем
// репозиториям и нормализует итоги к сумме 100. Деление на ноль даёт
// пустой список, не NaN.
func normalizeLanguages(repos []*domain.RepoContributionData) []domain.LanguageShare {
	var order []string
	totals := make(map[string]float64)
	colors := make(map[string]string)

	for _, repo := range repos {
		if repo == nil {
			continue
		}
		for _, lang := range repo.Languages {
			if _, seen := totals[lang.Name]; !seen {
				order = append(order, lang.Name)
			}
			totals[lang.Name] += lang.Percentage
			if colors[lang.Name] == "" {
				colors[lang.Name] = lang.Color
			}
		}
	}

	var grand float64
	for _, raw := range totals {
		grand += raw
	}

	shares := make([]domain.LanguageShare, 0, len(order))
	for _, name := range order {
		pct := 0.0
		if grand > 0 {
			pct = totals[name] / grand * 100.0
		}
		shares = append(shares, domain.LanguageShare{
			Name:       name,
			Percentage: pct,
			Color:      colors[name],
		})
	}

	sort.SliceStable(shares, func(i, j int) bool {
		return shares[i].Percentage > shares[j].Percentage
	})

	if len(shares) > topLanguagesLimit {
		shares = shares[:topLanguagesLimit]
	}
	return shares
}

// classifyRepos сортирует репозитории по звёздам (стабильно, ничья
// сохраняет прежний относительный порядок) и выставляет роли: первый —
// FLAGSHIP, следующие четыре — PATROL, остальные — SHUTTLE. Это
// единственное место, где поле Role перезаписывается.
func classifyRepos(repos []*domain.RepoContributionData) []*domain.RepoContributionData {
	ranked := make([]*domain.RepoContributionData, len(repos))
	copy(ranked, repos)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Stars > ranked[j].Stars
	})

	for i, repo := range ranked {
		switch {
		case i == 0:
			repo.Role = domain.RoleFlagship
		case i <= 4:
			repo.Role = domain.RolePatrol
		default:
			repo.Role = domain.RoleShuttle
		}
	}

	if len(ranked) > topReposLimit {
		ranked = ranked[:topReposLimit]
	}
	return ranked
}
