package stats_test

import (
	"testing"

	"starlog-service/internal/domain"
	"starlog-service/internal/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(date string, count int) domain.ContributionDay {
	return domain.ContributionDay{Date: date, Count: count}
}

func week(days ...domain.ContributionDay) domain.ContributionWeek {
	return domain.ContributionWeek{Days: days}
}

func TestAggregate_MonthlyHistogram(t *testing.T) {
	contribs := &domain.ContributionData{
		Weeks: []domain.ContributionWeek{
			week(day("2024-01-15", 5), day("2024-01-16", 2)),
			week(day("2024-02-01", 3)),
			week(day("2024-12-31", 7)),
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, 7, result.MonthlyContributions[0])
	assert.Equal(t, 3, result.MonthlyContributions[1])
	assert.Equal(t, 7, result.MonthlyContributions[11])
	for m := 2; m < 11; m++ {
		assert.Zero(t, result.MonthlyContributions[m])
	}
}

func TestAggregate_MaxWeeklyContributions(t *testing.T) {
	contribs := &domain.ContributionData{
		Weeks: []domain.ContributionWeek{
			week(day("2024-01-01", 10), day("2024-01-02", 5)),
			week(day("2024-01-08", 20), day("2024-01-09", 21)),
			week(day("2024-01-15", 1)),
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, 41, result.MaxWeeklyContributions)
}

func TestAggregate_Streaks(t *testing.T) {
	testCases := []struct {
		name            string
		days            []domain.ContributionDay
		expectedLongest int
		expectedCurrent int
	}{
		{
			name: "broken by zero day",
			days: []domain.ContributionDay{
				day("2024-03-01", 1), day("2024-03-02", 2), day("2024-03-03", 1),
				day("2024-03-04", 0),
				day("2024-03-05", 4), day("2024-03-06", 1),
			},
			expectedLongest: 3,
			expectedCurrent: 2,
		},
		{
			name: "missing day does not break streak",
			days: []domain.ContributionDay{
				day("2024-03-01", 1), day("2024-03-05", 2),
			},
			expectedLongest: 2,
			expectedCurrent: 2,
		},
		{
			name: "current streak is the longest",
			days: []domain.ContributionDay{
				day("2024-03-01", 1), day("2024-03-02", 0),
				day("2024-03-03", 1), day("2024-03-04", 1), day("2024-03-05", 1),
			},
			expectedLongest: 3,
			expectedCurrent: 3,
		},
		{
			name:            "all zero days",
			days:            []domain.ContributionDay{day("2024-03-01", 0), day("2024-03-02", 0)},
			expectedLongest: 0,
			expectedCurrent: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			contribs := &domain.ContributionData{Weeks: []domain.ContributionWeek{week(tc.days...)}}
			result := stats.Aggregate(nil, contribs, nil, nil, 0)

			assert.Equal(t, tc.expectedLongest, result.LongestStreak)
			assert.Equal(t, tc.expectedCurrent, result.CurrentStreak)
			assert.LessOrEqual(t, result.CurrentStreak, result.LongestStreak)
		})
	}
}

func TestAggregate_StreaksSortDefensively(t *testing.T) {
	// Дни перемешаны между неделями: движок обязан пересортировать сам
	contribs := &domain.ContributionData{
		Weeks: []domain.ContributionWeek{
			week(day("2024-03-05", 1), day("2024-03-06", 1)),
			week(day("2024-03-01", 1), day("2024-03-02", 0)),
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, 2, result.LongestStreak)
	assert.Equal(t, 2, result.CurrentStreak)
}

func TestAggregate_MostActiveDay(t *testing.T) {
	// 2024-03-04 понедельник, 2024-03-05 вторник
	contribs := &domain.ContributionData{
		Weeks: []domain.ContributionWeek{
			week(day("2024-03-04", 5), day("2024-03-05", 9)),
			week(day("2024-03-11", 2)),
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, "Tuesday", result.MostActiveDay)
}

func TestAggregate_MostActiveDayTieBreakFirstSeen(t *testing.T) {
	// Понедельник и вторник с равными суммами: победить должен
	// понедельник, встреченный первым
	contribs := &domain.ContributionData{
		Weeks: []domain.ContributionWeek{
			week(day("2024-03-04", 5), day("2024-03-05", 5)),
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, "Monday", result.MostActiveDay)
}

func TestAggregate_MostActiveHour(t *testing.T) {
	contribs := &domain.ContributionData{
		CommitTimestamps: []string{
			"2024-05-01T09:15:00Z",
			"2024-05-01T23:10:00Z",
			"2024-05-02T09:45:00Z",
			"not-a-timestamp",
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, 9, result.MostActiveHour)
}

func TestAggregate_MostActiveHourDefault(t *testing.T) {
	result := stats.Aggregate(nil, &domain.ContributionData{}, nil, nil, 0)

	assert.Equal(t, 14, result.MostActiveHour)
}

func TestAggregate_MostActiveHourTieBreakFirstSeen(t *testing.T) {
	contribs := &domain.ContributionData{
		CommitTimestamps: []string{
			"2024-05-01T21:00:00Z",
			"2024-05-01T03:00:00Z",
			"2024-05-02T03:30:00Z",
			"2024-05-02T21:30:00Z",
		},
	}

	result := stats.Aggregate(nil, contribs, nil, nil, 0)

	assert.Equal(t, 21, result.MostActiveHour)
}

func TestAggregate_LanguageNormalization(t *testing.T) {
	repos := []*domain.RepoContributionData{
		{
			FullName: "me/alpha",
			Languages: []domain.LanguageShare{
				{Name: "Go", Percentage: 80, Color: "#00ADD8"},
				{Name: "Shell", Percentage: 20},
			},
		},
		{
			FullName: "me/beta",
			Languages: []domain.LanguageShare{
				{Name: "Go", Percentage: 50, Color: "#00ADD8"},
				{Name: "Rust", Percentage: 50, Color: "#dea584"},
			},
		},
	}

	result := stats.Aggregate(nil, &domain.ContributionData{}, repos, nil, 0)

	require.Len(t, result.TopLanguages, 3)
	assert.Equal(t, "Go", result.TopLanguages[0].Name)
	assert.InDelta(t, 65.0, result.TopLanguages[0].Percentage, 1e-9)

	var total float64
	for _, lang := range result.TopLanguages {
		assert.LessOrEqual(t, lang.Percentage, 100.0)
		total += lang.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-9)
}

func TestAggregate_NoLanguagesNoNaN(t *testing.T) {
	repos := []*domain.RepoContributionData{{FullName: "me/empty"}}

	result := stats.Aggregate(nil, &domain.ContributionData{}, repos, nil, 0)

	assert.Empty(t, result.TopLanguages)
}

func TestAggregate_RepoRoleClassification(t *testing.T) {
	repos := make([]*domain.RepoContributionData, 0, 12)
	stars := []int{3, 50, 7, 50, 1, 0, 12, 9, 4, 2, 6, 8}
	for i, s := range stars {
		repos = append(repos, &domain.RepoContributionData{
			ID:    int64(i + 1),
			Stars: s,
			Role:  domain.RoleShuttle,
		})
	}

	result := stats.Aggregate(nil, &domain.ContributionData{}, repos, nil, 0)

	assert.Equal(t, 12, result.TotalReposContributed)
	require.Len(t, result.TopRepos, 10)

	// Ничья 50/50: стабильная сортировка оставляет ID 2 впереди ID 4
	assert.Equal(t, int64(2), result.TopRepos[0].ID)
	assert.Equal(t, domain.RoleFlagship, result.TopRepos[0].Role)

	flagships := 0
	patrols := 0
	for _, repo := range repos {
		switch repo.Role {
		case domain.RoleFlagship:
			flagships++
		case domain.RolePatrol:
			patrols++
		}
	}
	assert.Equal(t, 1, flagships)
	assert.Equal(t, 4, patrols)

	for _, repo := range result.TopRepos[5:] {
		assert.Equal(t, domain.RoleShuttle, repo.Role)
	}
}

func TestAggregate_PassThroughTotals(t *testing.T) {
	profile := &domain.UserCoreProfile{Followers: 123}
	contribs := &domain.ContributionData{
		Total:        456,
		TotalCommits: 300,
		TotalPRs:     40,
		TotalIssues:  16,
	}

	result := stats.Aggregate(profile, contribs, nil, nil, 77)

	assert.Equal(t, 456, result.TotalContributions)
	assert.Equal(t, 300, result.TotalCommits)
	assert.Equal(t, 40, result.TotalPRs)
	assert.Equal(t, 16, result.TotalIssues)
	assert.Equal(t, 77, result.TotalStarsEarned)
	assert.Equal(t, 123, result.Followers)
}

func TestAggregate_EmptyInput(t *testing.T) {
	result := stats.Aggregate(nil, &domain.ContributionData{}, nil, nil, 0)

	assert.Zero(t, result.LongestStreak)
	assert.Zero(t, result.CurrentStreak)
	assert.Empty(t, result.MostActiveDay)
	assert.Equal(t, 14, result.MostActiveHour)
	assert.Equal(t, [12]int{}, result.MonthlyContributions)
	assert.Empty(t, result.TopRepos)
	assert.Empty(t, result.Collaborators)
}

func TestAggregate_Idempotence(t *testing.T) {
	build := func() ([]*domain.RepoContributionData, *domain.ContributionData) {
		repos := []*domain.RepoContributionData{
			{ID: 1, Stars: 5, Languages: []domain.LanguageShare{{Name: "Go", Percentage: 100}}},
			{ID: 2, Stars: 9},
		}
		contribs := &domain.ContributionData{
			Total: 10,
			Weeks: []domain.ContributionWeek{
				week(day("2024-06-01", 4), day("2024-06-02", 6)),
			},
			CommitTimestamps: []string{"2024-06-01T10:00:00Z"},
		}
		return repos, contribs
	}

	profile := &domain.UserCoreProfile{Followers: 9}

	reposA, contribsA := build()
	reposB, contribsB := build()

	first := stats.Aggregate(profile, contribsA, reposA, nil, 3)
	second := stats.Aggregate(profile, contribsB, reposB, nil, 3)

	assert.Equal(t, first, second)
}
