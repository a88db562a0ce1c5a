package github

import (
	"context"
	"net/http"

	"starlog-service/internal/domain"
)

// FetchProfile возвращает профиль пользователя одним REST запросом, без
// пагинации. Отсутствие обязательных полей в ответе — жёсткая ошибка:
// это проблема аутентификации или аккаунта, а не данных.
func (c *Client) FetchProfile(ctx context.Context, username string) (*domain.UserCoreProfile, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, domain.NewFetchError(domain.ResourceProfile, err)
	}

	user, resp, err := c.rest.Users.Get(ctx, username)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return nil, domain.NewFetchError(domain.ResourceProfile, domain.ErrAuthRequired)
			case http.StatusNotFound:
				return nil, domain.NewFetchError(domain.ResourceProfile, domain.ErrUserNotFound)
			case http.StatusForbidden, http.StatusTooManyRequests:
				return nil, domain.NewFetchError(domain.ResourceProfile, domain.ErrRateLimited)
			}
		}
		return nil, domain.NewFetchError(domain.ResourceProfile, err)
	}

	if user.GetID() == 0 || user.GetLogin() == "" {
		return nil, domain.NewFetchError(domain.ResourceProfile, domain.ErrAuthRequired)
	}

	return &domain.UserCoreProfile{
		ID:          user.GetID(),
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		AvatarURL:   user.GetAvatarURL(),
		Email:       user.GetEmail(),
		Bio:         user.GetBio(),
		PublicRepos: user.GetPublicRepos(),
		Followers:   user.GetFollowers(),
		Following:   user.GetFollowing(),
		CreatedAt:   user.GetCreatedAt().Time,
	}, nil
}
