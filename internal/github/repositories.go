package github

import (
	"context"
	"strings"

	"starlog-service/internal/domain"
)

const contributedRepositoriesQuery = `
query($login: String!, $cursor: String, $privacy: RepositoryPrivacy) {
  user(login: $login) {
    repositoriesContributedTo(
      first: 50,
      after: $cursor,
      privacy: $privacy,
      includeUserRepositories: true,
      contributionTypes: [COMMIT, ISSUE, PULL_REQUEST, REPOSITORY]
    ) {
      pageInfo { hasNextPage endCursor }
      nodes {
        databaseId
        nameWithOwner
        description
        isPrivate
        owner { login }
        primaryLanguage { name }
        languages(first: 5, orderBy: {field: SIZE, direction: DESC}) {
          totalSize
          edges {
            size
            node { name color }
          }
        }
        stargazerCount
        forkCount
      }
    }
  }
}`

type repositoryNode struct {
	DatabaseID    int64  `json:"databaseId"`
	NameWithOwner string `json:"nameWithOwner"`
	Description   string `json:"description"`
	IsPrivate     bool   `json:"isPrivate"`
	Owner         struct {
		Login string `json:"login"`
	} `json:"owner"`
	PrimaryLanguage *struct {
		Name string `json:"name"`
	} `json:"primaryLanguage"`
	Languages struct {
		TotalSize int64 `json:"totalSize"`
		Edges     []struct {
			Size int64 `json:"size"`
			Node struct {
				Name  string `json:"name"`
				Color string `json:"color"`
			} `json:"node"`
		} `json:"edges"`
	} `json:"languages"`
	StargazerCount int `json:"stargazerCount"`
	ForkCount      int `json:"forkCount"`
}

type contributedRepositoriesResponse struct {
	User *struct {
		RepositoriesContributedTo struct {
			PageInfo pageInfo         `json:"pageInfo"`
			Nodes    []repositoryNode `json:"nodes"`
		} `json:"repositoriesContributedTo"`
	} `json:"user"`
}

// FetchRepositories обходит репозитории, в которые пользователь вносил
// вклад (коммиты, issue, PR, создание репозитория), помечая каждый долями
// топ-5 языков по байтам и флагом владения относительно переданного списка
// организаций. Приватные репозитории исключаются по флагу вызывающей
// стороны. Цикл листинга ограничен настраиваемым пределом накопления.
func (c *Client) FetchRepositories(ctx context.Context, username string, includePrivate bool, ownedOrgs []string) ([]*domain.RepoContributionData, error) {
	owned := make(map[string]bool, len(ownedOrgs)+1)
	owned[strings.ToLower(username)] = true
	for _, org := range ownedOrgs {
		owned[strings.ToLower(org)] = true
	}

	repos, err := WalkPages(ctx, c.repoListLimit, func(ctx context.Context, cursor string) (Page[*domain.RepoContributionData], error) {
		variables := map[string]any{"login": username}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		if !includePrivate {
			variables["privacy"] = "PUBLIC"
		}

		var resp contributedRepositoriesResponse
		if err := c.doGraphQL(ctx, contributedRepositoriesQuery, variables, &resp); err != nil {
			return Page[*domain.RepoContributionData]{}, err
		}
		if resp.User == nil {
			return Page[*domain.RepoContributionData]{}, domain.ErrUserNotFound
		}

		listing := resp.User.RepositoriesContributedTo
		page := Page[*domain.RepoContributionData]{
			HasNextPage: listing.PageInfo.HasNextPage,
			EndCursor:   listing.PageInfo.EndCursor,
		}
		for _, node := range listing.Nodes {
			page.Items = append(page.Items, mapRepository(node, owned))
		}
		return page, nil
	})
	if err != nil {
		return nil, domain.NewFetchError(domain.ResourceRepositories, err)
	}
	return repos, nil
}

func mapRepository(node repositoryNode, owned map[string]bool) *domain.RepoContributionData {
	repo := &domain.RepoContributionData{
		ID:          node.DatabaseID,
		FullName:    node.NameWithOwner,
		Description: node.Description,
		IsPrivate:   node.IsPrivate,
		IsOwner:     owned[strings.ToLower(node.Owner.Login)],
		Stars:       node.StargazerCount,
		Forks:       node.ForkCount,
		Role:        domain.RoleShuttle,
	}
	if node.PrimaryLanguage != nil {
		repo.PrimaryLanguage = node.PrimaryLanguage.Name
	}

	totalSize := node.Languages.TotalSize
	for _, edge := range node.Languages.Edges {
		pct := 0.0
		if totalSize > 0 {
			pct = float64(edge.Size) / float64(totalSize) * 100.0
		}
		repo.Languages = append(repo.Languages, domain.LanguageShare{
			Name:       edge.Node.Name,
			Percentage: pct,
			Color:      edge.Node.Color,
		})
	}

	return repo
}
