package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"starlog-service/internal/config"
	"starlog-service/internal/domain"

	gh "github.com/google/go-github/v56/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

// Client — клиент GitHub API: REST (go-github) для профиля и GraphQL для
// всего остального. Один авторизованный http.Client и один лимитер на обе
// поверхности.
type Client struct {
	rest       *gh.Client
	httpClient *http.Client
	graphqlURL string
	limiter    *rate.Limiter
	logger     *logrus.Logger

	repoListLimit       int
	commitSampleRepos   int
	commitSampleCommits int
}

// Проверка контракта на этапе компиляции.
var _ domain.ActivityFetcher = (*Client)(nil)

// NewClient создает новый экземпляр Client с токеном из конфигурации.
func NewClient(cfg config.Config, logger *logrus.Logger) *Client {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubToken})
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = 30 * time.Second

	rest := gh.NewClient(httpClient)
	if cfg.GitHubBaseURL != "https://api.github.com" {
		if base, err := url.Parse(strings.TrimSuffix(cfg.GitHubBaseURL, "/") + "/"); err == nil {
			rest.BaseURL = base
		}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		rest:       rest,
		httpClient: httpClient,
		graphqlURL: strings.TrimSuffix(cfg.GitHubBaseURL, "/") + "/graphql",
		limiter:    rate.NewLimiter(rate.Limit(rps), rps),
		logger:     logger,

		repoListLimit:       cfg.RepoListLimit,
		commitSampleRepos:   cfg.CommitSampleRepos,
		commitSampleCommits: cfg.CommitSampleCommits,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

// pageInfo — курсорная часть любого постраничного ответа GraphQL.
type pageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

// doGraphQL выполняет один GraphQL запрос и декодирует поле data в out.
// 401 превращается в domain.ErrAuthRequired: просроченный токен должен
// немедленно оборвать весь прогон. Ошибки типа NOT_FOUND не фатальны —
// соответствующие узлы data приходят null, и решает вызывающая сторона.
func (c *Client) doGraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("marshal graphql request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("new graphql request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do graphql request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrAuthRequired
	case resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests:
		return domain.ErrRateLimited
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected graphql status %d", resp.StatusCode)
	}

	var gqlResp graphQLResponse
	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return fmt.Errorf("decode graphql response: %w", err)
	}

	for _, gqlErr := range gqlResp.Errors {
		if gqlErr.Type != "NOT_FOUND" {
			return fmt.Errorf("graphql error: %s", gqlErr.Message)
		}
	}

	if len(gqlResp.Data) == 0 {
		return fmt.Errorf("graphql response without data")
	}
	if err := json.Unmarshal(gqlResp.Data, out); err != nil {
		return fmt.Errorf("decode graphql data: %w", err)
	}
	return nil
}

// yearBounds возвращает границы календарного года [1 января, 31 декабря]
// в UTC для переменных from/to.
func yearBounds(year int) (string, string) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
	return from.Format(time.RFC3339), to.Format(time.RFC3339)
}
