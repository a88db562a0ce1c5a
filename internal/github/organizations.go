package github

import (
	"context"

	"starlog-service/internal/domain"
)

const ownedOrganizationsQuery = `
query($cursor: String) {
  viewer {
    organizations(first: 100, after: $cursor) {
      pageInfo { hasNextPage endCursor }
      nodes {
        login
        viewerCanAdminister
      }
    }
  }
}`

type organizationsResponse struct {
	Viewer struct {
		Organizations struct {
			PageInfo pageInfo `json:"pageInfo"`
			Nodes    []struct {
				Login               string `json:"login"`
				ViewerCanAdminister bool   `json:"viewerCanAdminister"`
			} `json:"nodes"`
		} `json:"organizations"`
	} `json:"viewer"`
}

// FetchOwnedOrganizations возвращает логины организаций, где
// аутентифицированный пользователь имеет права администратора. Список
// дальше используется, чтобы считать репозитории организаций "своими".
func (c *Client) FetchOwnedOrganizations(ctx context.Context) ([]string, error) {
	orgs, err := WalkPages(ctx, 0, func(ctx context.Context, cursor string) (Page[string], error) {
		variables := map[string]any{}
		if cursor != "" {
			variables["cursor"] = cursor
		}

		var resp organizationsResponse
		if err := c.doGraphQL(ctx, ownedOrganizationsQuery, variables, &resp); err != nil {
			return Page[string]{}, err
		}

		page := Page[string]{
			HasNextPage: resp.Viewer.Organizations.PageInfo.HasNextPage,
			EndCursor:   resp.Viewer.Organizations.PageInfo.EndCursor,
		}
		for _, node := range resp.Viewer.Organizations.Nodes {
			if node.ViewerCanAdminister {
				page.Items = append(page.Items, node.Login)
			}
		}
		return page, nil
	})
	if err != nil {
		return nil, domain.NewFetchError(domain.ResourceOrganizations, err)
	}
	return orgs, nil
}
