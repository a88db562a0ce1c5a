package stats

import (
	"time"

	"starlog-service/internal/domain"
)

// achievementRule — запись каталога: метаданные плюс предикат над
// агрегированной статистикой и выборкой меток времени коммитов.
type achievementRule struct {
	meta  domain.Achievement
	check func(s *domain.AggregatedStats, commits []string) bool
}

// Каталог фиксирован: 16 правил, порядок влияет только на порядок выдачи.
// Правила независимы, не взаимоисключающи и никогда не паникуют:
// отсутствующие необязательные данные означают "недостаточно
// свидетельств" и дают false.
var achievementCatalog = []achievementRule{
	{
		meta: domain.Achievement{Code: "NIGHT_OWL", Name: "Night Owl", Description: "Committed between midnight and 4 AM UTC", Icon: "owl"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return anyCommitInHourRange(commits, 0, 4)
		},
	},
	{
		meta: domain.Achievement{Code: "EARLY_BIRD", Name: "Early Bird", Description: "Committed between 5 and 7 AM UTC", Icon: "sunrise"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return anyCommitInHourRange(commits, 5, 7)
		},
	},
	{
		meta: domain.Achievement{Code: "STREAK_MASTER", Name: "Streak Master", Description: "Kept a contribution streak of 30 days or more", Icon: "flame"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.LongestStreak >= 30
		},
	},
	{
		meta: domain.Achievement{Code: "CENTURY", Name: "Century", Description: "Made 100+ contributions in a single month", Icon: "hundred"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			for _, count := range s.MonthlyContributions {
				if count >= 100 {
					return true
				}
			}
			return false
		},
	},
	{
		meta: domain.Achievement{Code: "POLYGLOT", Name: "Polyglot", Description: "Worked in 5 or more languages", Icon: "globe"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return len(s.TopLanguages) >= 5
		},
	},
	{
		meta: domain.Achievement{Code: "GALAXY_WANDERER", Name: "Galaxy Wanderer", Description: "Contributed to 10 or more repositories", Icon: "galaxy"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalReposContributed >= 10
		},
	},
	{
		meta: domain.Achievement{Code: "TEAM_PLAYER", Name: "Team Player", Description: "Collaborated with 10 or more people", Icon: "crew"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return len(s.Collaborators) >= 10
		},
	},
	{
		meta: domain.Achievement{Code: "CONSISTENT", Name: "Consistent", Description: "Contributed in every month of the year", Icon: "calendar"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			for _, count := range s.MonthlyContributions {
				if count <= 0 {
					return false
				}
			}
			return true
		},
	},
	{
		meta: domain.Achievement{Code: "THOUSAND_CLUB", Name: "Thousand Club", Description: "Made 1000+ contributions in the year", Icon: "rocket"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalContributions >= 1000
		},
	},
	{
		meta: domain.Achievement{Code: "PR_MACHINE", Name: "PR Machine", Description: "Opened 50 or more pull requests", Icon: "merge"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalPRs >= 50
		},
	},
	{
		meta: domain.Achievement{Code: "STAR_COLLECTOR", Name: "Star Collector", Description: "Earned 100+ stars on owned repositories", Icon: "star"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalStarsEarned >= 100
		},
	},
	{
		meta: domain.Achievement{Code: "BUG_HUNTER", Name: "Bug Hunter", Description: "Opened 30 or more issues", Icon: "bug"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalIssues >= 30
		},
	},
	{
		meta: domain.Achievement{Code: "OPEN_SOURCERER", Name: "Open Sourcerer", Description: "Kept 5+ public repositories in the top 10", Icon: "wand"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			public := 0
			for _, repo := range s.TopRepos {
				if repo != nil && !repo.IsPrivate {
					public++
				}
			}
			return public >= 5
		},
	},
	{
		meta: domain.Achievement{Code: "FIRST_CONTACT", Name: "First Contact", Description: "Made the first contribution of the year", Icon: "signal"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.TotalContributions >= 1
		},
	},
	{
		meta: domain.Achievement{Code: "WARP_SPEED", Name: "Warp Speed", Description: "Made 50+ contributions in a single week", Icon: "warp"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			return s.MaxWeeklyContributions >= 50
		},
	},
	{
		meta: domain.Achievement{Code: "WEEKEND_WARRIOR", Name: "Weekend Warrior", Description: "Committed on a Saturday or Sunday", Icon: "shield"},
		check: func(s *domain.AggregatedStats, commits []string) bool {
			for _, ts := range commits {
				if t, err := time.Parse(time.RFC3339, ts); err == nil {
					weekday := t.UTC().Weekday()
					if weekday == time.Saturday || weekday == time.Sunday {
						return true
					}
				}
			}
			return false
		},
	},
}

// Catalog возвращает метаданные всех 16 достижений в порядке каталога.
func Catalog() []*domain.Achievement {
	result := make([]*domain.Achievement, len(achievementCatalog))
	for i := range achievementCatalog {
		meta := achievementCatalog[i].meta
		result[i] = &meta
	}
	return result
}

// EvaluateAchievements прогоняет каждое правило независимо и возвращает
// коды сработавших в порядке каталога.
func EvaluateAchievements(s *domain.AggregatedStats, commitTimestamps []string) []string {
	if s == nil {
		return nil
	}

	var earned []string
	for _, rule := range achievementCatalog {
		if rule.check(s, commitTimestamps) {
			earned = append(earned, rule.meta.Code)
		}
	}
	return earned
}

// anyCommitInHourRange сообщает, попадает ли хоть один коммит из выборки
// в часовое окно [start, end) UTC.
func anyCommitInHourRange(timestamps []string, start, end int) bool {
	for _, ts := range timestamps {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			continue
		}
		if hourInRange(t.UTC().Hour(), start, end) {
			return true
		}
	}
	return false
}

// hourInRange проверяет попадание часа в полуоткрытое окно [start, end).
// Окно с start > end считается переходящим через полночь, например
// [22, 6) покрывает 22, 23, 0 ... 5.
func hourInRange(hour, start, end int) bool {
	if start > end {
		return hour >= start || hour < end
	}
	return hour >= start && hour < end
}
