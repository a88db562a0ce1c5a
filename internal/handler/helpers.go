package handler

import (
	"errors"
	"net/http"
	"time"

	"starlog-service/internal/domain"
)

// Вспомогательные функции преобразования доменных моделей в API модели

// APIProfile — представление профиля в ответах API.
type APIProfile struct {
	ID          int64     `json:"id"`
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	AvatarURL   string    `json:"avatar_url"`
	Bio         string    `json:"bio"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAPIProfile(profile *domain.UserCoreProfile) APIProfile {
	return APIProfile{
		ID:          profile.ID,
		Login:       profile.Login,
		Name:        profile.Name,
		AvatarURL:   profile.AvatarURL,
		Bio:         profile.Bio,
		PublicRepos: profile.PublicRepos,
		Followers:   profile.Followers,
		Following:   profile.Following,
		CreatedAt:   profile.CreatedAt,
	}
}

func toErrorResponse(code, message string) domain.ErrorResponse {
	return domain.ErrorResponse{
		Error: domain.HTTPError{
			Code:    code,
			Message: message,
		},
	}
}

func toAPIErrorResponse(httpErr domain.HTTPError) domain.ErrorResponse {
	return domain.ErrorResponse{Error: httpErr}
}

func getHTTPStatusCode(err error) int {
	switch {
	// Unauthorized (401): нужна повторная аутентификация, не повтор запроса
	case errors.Is(err, domain.ErrAuthRequired):
		return http.StatusUnauthorized

	// Not Found errors (404)
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound

	// Bad Request errors (400) - валидация
	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidYear):
		return http.StatusBadRequest

	// Too Many Requests (429)
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests

	default:
		return http.StatusInternalServerError
	}
}
