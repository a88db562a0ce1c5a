package github

import (
	"context"

	"starlog-service/internal/domain"
)

const contributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!, $maxRepos: Int!, $maxCommits: Int!) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
      restrictedContributionsCount
      totalCommitContributions
      totalPullRequestContributions
      totalIssueContributions
      commitContributionsByRepository(maxRepositories: $maxRepos) {
        contributions(first: $maxCommits) {
          nodes { occurredAt }
        }
      }
    }
  }
}`

type contributionsResponse struct {
	User *struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				TotalContributions int `json:"totalContributions"`
				Weeks              []struct {
					ContributionDays []struct {
						Date              string `json:"date"`
						ContributionCount int    `json:"contributionCount"`
					} `json:"contributionDays"`
				} `json:"weeks"`
			} `json:"contributionCalendar"`
			RestrictedContributionsCount   int `json:"restrictedContributionsCount"`
			TotalCommitContributions       int `json:"totalCommitContributions"`
			TotalPullRequestContributions  int `json:"totalPullRequestContributions"`
			TotalIssueContributions        int `json:"totalIssueContributions"`
			CommitContributionsByRepository []struct {
				Contributions struct {
					Nodes []struct {
						OccurredAt string `json:"occurredAt"`
					} `json:"nodes"`
				} `json:"contributions"`
			} `json:"commitContributionsByRepository"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// FetchContributions возвращает полный дневной календарь вкладов за
// календарный год (включительно, UTC) плюс выборку меток времени коммитов.
// Выборка ограничена по репозиториям и коммитам на репозиторий, поэтому
// статистика "самый активный час" для очень активных пользователей —
// оценка по выборке, не исчерпывающий подсчёт. Несуществующий пользователь
// — жёсткая ошибка.
func (c *Client) FetchContributions(ctx context.Context, username string, year int) (*domain.ContributionData, error) {
	from, to := yearBounds(year)
	variables := map[string]any{
		"login":      username,
		"from":       from,
		"to":         to,
		"maxRepos":   c.commitSampleRepos,
		"maxCommits": c.commitSampleCommits,
	}

	var resp contributionsResponse
	if err := c.doGraphQL(ctx, contributionsQuery, variables, &resp); err != nil {
		return nil, domain.NewFetchError(domain.ResourceContributions, err)
	}
	if resp.User == nil {
		return nil, domain.NewFetchError(domain.ResourceContributions, domain.ErrUserNotFound)
	}

	collection := resp.User.ContributionsCollection

	data := &domain.ContributionData{
		Total:           collection.ContributionCalendar.TotalContributions,
		RestrictedCount: collection.RestrictedContributionsCount,
		TotalCommits:    collection.TotalCommitContributions,
		TotalPRs:        collection.TotalPullRequestContributions,
		TotalIssues:     collection.TotalIssueContributions,
	}

	for _, week := range collection.ContributionCalendar.Weeks {
		days := make([]domain.ContributionDay, 0, len(week.ContributionDays))
		for _, day := range week.ContributionDays {
			days = append(days, domain.ContributionDay{
				Date:  day.Date,
				Count: day.ContributionCount,
			})
		}
		data.Weeks = append(data.Weeks, domain.ContributionWeek{Days: days})
	}

	for _, byRepo := range collection.CommitContributionsByRepository {
		for _, node := range byRepo.Contributions.Nodes {
			data.CommitTimestamps = append(data.CommitTimestamps, node.OccurredAt)
		}
	}

	return data, nil
}
