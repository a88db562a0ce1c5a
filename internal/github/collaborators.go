package github

import (
	"context"
	"sort"
	"strings"

	"starlog-service/internal/domain"
)

// Вес очков взаимодействия по типу события.
const (
	scorePRAuthor         = 1
	scoreReviewAuthor     = 2
	scoreIssueParticipant = 1
)

const collaboratorsLimit = 20

const pullRequestContributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!, $cursor: String) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      pullRequestContributions(first: 50, after: $cursor) {
        pageInfo { hasNextPage endCursor }
        nodes {
          pullRequest {
            author {
              login
              avatarUrl
              ... on User { databaseId }
            }
            reviews(first: 10) {
              nodes {
                author {
                  login
                  avatarUrl
                  ... on User { databaseId }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const issueContributionsQuery = `
query($login: String!, $from: DateTime!, $to: DateTime!, $cursor: String) {
  user(login: $login) {
    contributionsCollection(from: $from, to: $to) {
      issueContributions(first: 50, after: $cursor) {
        pageInfo { hasNextPage endCursor }
        nodes {
          issue {
            participants(first: 10) {
              nodes {
                databaseId
                login
                avatarUrl
              }
            }
          }
        }
      }
    }
  }
}`

type actorNode struct {
	DatabaseID int64  `json:"databaseId"`
	Login      string `json:"login"`
	AvatarURL  string `json:"avatarUrl"`
}

type pullRequestContributionsResponse struct {
	User *struct {
		ContributionsCollection struct {
			PullRequestContributions struct {
				PageInfo pageInfo `json:"pageInfo"`
				Nodes    []struct {
					// PullRequest приходит null для удалённых PR.
					PullRequest *struct {
						Author  *actorNode `json:"author"`
						Reviews struct {
							Nodes []struct {
								Author *actorNode `json:"author"`
							} `json:"nodes"`
						} `json:"reviews"`
					} `json:"pullRequest"`
				} `json:"nodes"`
			} `json:"pullRequestContributions"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

type issueContributionsResponse struct {
	User *struct {
		ContributionsCollection struct {
			IssueContributions struct {
				PageInfo pageInfo `json:"pageInfo"`
				Nodes    []struct {
					// Issue приходит null для удалённых issue.
					Issue *struct {
						Participants struct {
							Nodes []actorNode `json:"nodes"`
						} `json:"participants"`
					} `json:"issue"`
				} `json:"nodes"`
			} `json:"issueContributions"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// collaboratorSet накапливает очки взаимодействия, дедуплицируя по
// username и сохраняя порядок обнаружения для стабильных ничьих.
type collaboratorSet struct {
	self   string
	order  []string
	byName map[string]*domain.CollaboratorData
}

func newCollaboratorSet(self string) *collaboratorSet {
	return &collaboratorSet{
		self:   strings.ToLower(self),
		byName: make(map[string]*domain.CollaboratorData),
	}
}

func (s *collaboratorSet) add(actor *actorNode, score int) {
	if actor == nil || actor.Login == "" {
		return
	}
	key := strings.ToLower(actor.Login)
	if key == s.self {
		return
	}
	if existing, ok := s.byName[key]; ok {
		existing.InteractionScore += score
		return
	}
	s.order = append(s.order, key)
	s.byName[key] = &domain.CollaboratorData{
		ID:               actor.DatabaseID,
		Username:         actor.Login,
		AvatarURL:        actor.AvatarURL,
		InteractionScore: score,
	}
}

// top возвращает первые limit коллабораторов по убыванию очков; при
// равенстве очков сохраняется порядок обнаружения.
func (s *collaboratorSet) top(limit int) []*domain.CollaboratorData {
	result := make([]*domain.CollaboratorData, 0, len(s.order))
	for _, key := range s.order {
		result = append(result, s.byName[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].InteractionScore > result[j].InteractionScore
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

// FetchCollaborators обходит PR- и issue-вклады пользователя за год,
// извлекая каждого отличного от него участника: автора PR, автора ревью,
// участника issue. Удалённые PR и issue (null-узлы) пропускаются.
// Возвращается топ-20 по очкам взаимодействия.
func (c *Client) FetchCollaborators(ctx context.Context, username string, year int) ([]*domain.CollaboratorData, error) {
	from, to := yearBounds(year)
	set := newCollaboratorSet(username)

	_, err := WalkPages(ctx, 0, func(ctx context.Context, cursor string) (Page[struct{}], error) {
		variables := map[string]any{"login": username, "from": from, "to": to}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		var resp pullRequestContributionsResponse
		if err := c.doGraphQL(ctx, pullRequestContributionsQuery, variables, &resp); err != nil {
			return Page[struct{}]{}, err
		}
		if resp.User == nil {
			return Page[struct{}]{}, domain.ErrUserNotFound
		}

		contributions := resp.User.ContributionsCollection.PullRequestContributions
		for _, node := range contributions.Nodes {
			if node.PullRequest == nil {
				continue
			}
			set.add(node.PullRequest.Author, scorePRAuthor)
			for _, review := range node.PullRequest.Reviews.Nodes {
				set.add(review.Author, scoreReviewAuthor)
			}
		}
		return Page[struct{}]{
			HasNextPage: contributions.PageInfo.HasNextPage,
			EndCursor:   contributions.PageInfo.EndCursor,
		}, nil
	})
	if err != nil {
		return nil, domain.NewFetchError(domain.ResourceCollaborators, err)
	}

	_, err = WalkPages(ctx, 0, func(ctx context.Context, cursor string) (Page[struct{}], error) {
		variables := map[string]any{"login": username, "from": from, "to": to}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		var resp issueContributionsResponse
		if err := c.doGraphQL(ctx, issueContributionsQuery, variables, &resp); err != nil {
			return Page[struct{}]{}, err
		}
		if resp.User == nil {
			return Page[struct{}]{}, domain.ErrUserNotFound
		}

		contributions := resp.User.ContributionsCollection.IssueContributions
		for _, node := range contributions.Nodes {
			if node.Issue == nil {
				continue
			}
			for i := range node.Issue.Participants.Nodes {
				set.add(&node.Issue.Participants.Nodes[i], scoreIssueParticipant)
			}
		}
		return Page[struct{}]{
			HasNextPage: contributions.PageInfo.HasNextPage,
			EndCursor:   contributions.PageInfo.EndCursor,
		}, nil
	})
	if err != nil {
		return nil, domain.NewFetchError(domain.ResourceCollaborators, err)
	}

	return set.top(collaboratorsLimit), nil
}
