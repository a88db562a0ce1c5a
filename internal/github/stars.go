package github

import (
	"context"

	"starlog-service/internal/domain"
)

const viewerStarsQuery = `
query($cursor: String) {
  viewer {
    repositories(first: 100, after: $cursor, ownerAffiliations: [OWNER]) {
      pageInfo { hasNextPage endCursor }
      nodes { stargazerCount }
    }
  }
}`

const organizationStarsQuery = `
query($org: String!, $cursor: String) {
  organization(login: $org) {
    repositories(first: 100, after: $cursor) {
      pageInfo { hasNextPage endCursor }
      nodes { stargazerCount }
    }
  }
}`

type repositoryConnection struct {
	PageInfo pageInfo `json:"pageInfo"`
	Nodes    []struct {
		StargazerCount int `json:"stargazerCount"`
	} `json:"nodes"`
}

type viewerStarsResponse struct {
	Viewer struct {
		Repositories repositoryConnection `json:"repositories"`
	} `json:"viewer"`
}

type organizationStarsResponse struct {
	// Organization приходит null, если организация недоступна или удалена.
	Organization *struct {
		Repositories repositoryConnection `json:"repositories"`
	} `json:"organization"`
}

// FetchOwnedStarTotal суммирует звёзды по личным репозиториям пользователя
// и по репозиториям каждой переданной организации. Вложенная пагинация:
// внешний цикл по организациям, внутренний по страницам репозиториев.
// Падение выборки одной организации логируется и не прерывает остальные.
func (c *Client) FetchOwnedStarTotal(ctx context.Context, ownedOrgs []string) (int, error) {
	total, err := c.sumStarPages(ctx, func(ctx context.Context, cursor string) (Page[int], error) {
		variables := map[string]any{}
		if cursor != "" {
			variables["cursor"] = cursor
		}
		var resp viewerStarsResponse
		if err := c.doGraphQL(ctx, viewerStarsQuery, variables, &resp); err != nil {
			return Page[int]{}, err
		}
		return starPage(resp.Viewer.Repositories), nil
	})
	if err != nil {
		return 0, domain.NewFetchError(domain.ResourceStars, err)
	}

	for _, org := range ownedOrgs {
		orgTotal, err := c.sumStarPages(ctx, func(ctx context.Context, cursor string) (Page[int], error) {
			variables := map[string]any{"org": org}
			if cursor != "" {
				variables["cursor"] = cursor
			}
			var resp organizationStarsResponse
			if err := c.doGraphQL(ctx, organizationStarsQuery, variables, &resp); err != nil {
				return Page[int]{}, err
			}
			if resp.Organization == nil {
				return Page[int]{}, nil
			}
			return starPage(resp.Organization.Repositories), nil
		})
		if err != nil {
			c.logger.WithError(err).WithField("organization", org).Warn("Skipping organization star count")
			continue
		}
		total += orgTotal
	}

	return total, nil
}

func (c *Client) sumStarPages(ctx context.Context, fetch PageFunc[int]) (int, error) {
	counts, err := WalkPages(ctx, 0, fetch)
	if err != nil {
		return 0, err
	}
	var total int
	for _, stars := range counts {
		total += stars
	}
	return total, nil
}

func starPage(conn repositoryConnection) Page[int] {
	page := Page[int]{
		HasNextPage: conn.PageInfo.HasNextPage,
		EndCursor:   conn.PageInfo.EndCursor,
	}
	for _, node := range conn.Nodes {
		page.Items = append(page.Items, node.StargazerCount)
	}
	return page
}
