package domain

import "context"

// AggregatedStats — единственный результат движка агрегации: итоги за год
// по одному пользователю. Поле за полем воспроизводится при каждом
// пересчёте с нуля, частичного обновления нет.
type AggregatedStats struct {
	TotalContributions int `json:"total_contributions"`
	TotalCommits       int `json:"total_commits"`
	TotalPRs           int `json:"total_prs"`
	TotalIssues        int `json:"total_issues"`

	// TotalStarsEarned — звёзды на собственных репозиториях пользователя
	// и его организаций, не на репозиториях из списка вкладов.
	TotalStarsEarned int `json:"total_stars_earned"`

	// MonthlyContributions — гистограмма по месяцам, индекс 0 = январь.
	MonthlyContributions [12]int `json:"monthly_contributions"`

	// TopLanguages — топ-10 языков, проценты нормализованы к сумме 100.
	TopLanguages []LanguageShare `json:"top_languages"`

	// TopRepos — топ-10 репозиториев по звёздам, после классификации ролей.
	TopRepos []*RepoContributionData `json:"top_repos"`

	// TotalReposContributed — полное число репозиториев до обрезки топ-10.
	TotalReposContributed int `json:"total_repos_contributed"`

	Collaborators []*CollaboratorData `json:"collaborators"`

	LongestStreak int `json:"longest_streak"`
	CurrentStreak int `json:"current_streak"`

	MostActiveDay  string `json:"most_active_day"`
	MostActiveHour int    `json:"most_active_hour"`

	MaxWeeklyContributions int `json:"max_weekly_contributions"`

	// Followers переносится из профиля, нужен только скореру допуска.
	Followers int `json:"followers"`
}

// StatsRepository определяет контракт для хранения годовых снимков.
// Запись снимка заменяет прежние разбивки по репозиториям, языкам и
// коллабораторам целиком, без слияния.
type StatsRepository interface {
	SaveSnapshot(ctx context.Context, userID int64, year int, stats *AggregatedStats) error
	GetSnapshot(ctx context.Context, login string, year int) (*AggregatedStats, error)
}
