package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"starlog-service/internal/domain"
)

// StatsRepository реализует хранение годовых снимков статистики в PostgreSQL.
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository создает новый экземпляр StatsRepository.
func NewStatsRepository(db *sql.DB) domain.StatsRepository {
	return &StatsRepository{db: db}
}

// SaveSnapshot записывает снимок за год. Прежние разбивки по репозиториям,
// языкам и коллабораторам заменяются целиком, без слияния.
func (r *StatsRepository) SaveSnapshot(ctx context.Context, userID int64, year int, stats *domain.AggregatedStats) error {
	monthly, err := json.Marshal(stats.MonthlyContributions)
	if err != nil {
		return fmt.Errorf("failed to marshal monthly contributions: %w", err)
	}
	languages, err := json.Marshal(stats.TopLanguages)
	if err != nil {
		return fmt.Errorf("failed to marshal top languages: %w", err)
	}
	repos, err := json.Marshal(stats.TopRepos)
	if err != nil {
		return fmt.Errorf("failed to marshal top repos: %w", err)
	}
	collaborators, err := json.Marshal(stats.Collaborators)
	if err != nil {
		return fmt.Errorf("failed to marshal collaborators: %w", err)
	}

	const query = `
		INSERT INTO yearly_stats (
			user_id, year,
			total_contributions, total_commits, total_prs, total_issues,
			total_stars_earned, total_repos_contributed,
			longest_streak, current_streak,
			most_active_day, most_active_hour, max_weekly_contributions,
			followers,
			monthly_contributions, top_languages, top_repos, collaborators,
			aggregated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())
		ON CONFLICT (user_id, year) DO UPDATE SET
			total_contributions = EXCLUDED.total_contributions,
			total_commits = EXCLUDED.total_commits,
			total_prs = EXCLUDED.total_prs,
			total_issues = EXCLUDED.total_issues,
			total_stars_earned = EXCLUDED.total_stars_earned,
			total_repos_contributed = EXCLUDED.total_repos_contributed,
			longest_streak = EXCLUDED.longest_streak,
			current_streak = EXCLUDED.current_streak,
			most_active_day = EXCLUDED.most_active_day,
			most_active_hour = EXCLUDED.most_active_hour,
			max_weekly_contributions = EXCLUDED.max_weekly_contributions,
			followers = EXCLUDED.followers,
			monthly_contributions = EXCLUDED.monthly_contributions,
			top_languages = EXCLUDED.top_languages,
			top_repos = EXCLUDED.top_repos,
			collaborators = EXCLUDED.collaborators,
			aggregated_at = now()`

	_, err = r.db.ExecContext(ctx, query,
		userID, year,
		stats.TotalContributions, stats.TotalCommits, stats.TotalPRs, stats.TotalIssues,
		stats.TotalStarsEarned, stats.TotalReposContributed,
		stats.LongestStreak, stats.CurrentStreak,
		stats.MostActiveDay, stats.MostActiveHour, stats.MaxWeeklyContributions,
		stats.Followers,
		monthly, languages, repos, collaborators,
	)
	if err != nil {
		return fmt.Errorf("failed to save yearly snapshot: %w", err)
	}
	return nil
}

// GetSnapshot возвращает сохранённый снимок по логину и году.
func (r *StatsRepository) GetSnapshot(ctx context.Context, login string, year int) (*domain.AggregatedStats, error) {
	const query = `
		SELECT
			s.total_contributions, s.total_commits, s.total_prs, s.total_issues,
			s.total_stars_earned, s.total_repos_contributed,
			s.longest_streak, s.current_streak,
			s.most_active_day, s.most_active_hour, s.max_weekly_contributions,
			s.followers,
			s.monthly_contributions, s.top_languages, s.top_repos, s.collaborators
		FROM yearly_stats s
		JOIN users u ON u.id = s.user_id
		WHERE u.login = $1 AND s.year = $2`

	var stats domain.AggregatedStats
	var monthly, languages, repos, collaborators []byte

	err := r.db.QueryRowContext(ctx, query, login, year).Scan(
		&stats.TotalContributions, &stats.TotalCommits, &stats.TotalPRs, &stats.TotalIssues,
		&stats.TotalStarsEarned, &stats.TotalReposContributed,
		&stats.LongestStreak, &stats.CurrentStreak,
		&stats.MostActiveDay, &stats.MostActiveHour, &stats.MaxWeeklyContributions,
		&stats.Followers,
		&monthly, &languages, &repos, &collaborators,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to get yearly snapshot: %w", err)
	}

	if err := json.Unmarshal(monthly, &stats.MonthlyContributions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal monthly contributions: %w", err)
	}
	if err := json.Unmarshal(languages, &stats.TopLanguages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top languages: %w", err)
	}
	if err := json.Unmarshal(repos, &stats.TopRepos); err != nil {
		return nil, fmt.Errorf("failed to unmarshal top repos: %w", err)
	}
	if err := json.Unmarshal(collaborators, &stats.Collaborators); err != nil {
		return nil, fmt.Errorf("failed to unmarshal collaborators: %w", err)
	}

	return &stats, nil
}
