package domain

import (
	"errors"
	"fmt"
)

// Domain errors (для бизнес-логики)
var (
	// Validation errors
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidYear     = errors.New("invalid year")

	// Upstream errors
	ErrAuthRequired = errors.New("github authentication failed, re-authentication required")
	ErrUserNotFound = errors.New("github user not found")
	ErrRateLimited  = errors.New("github rate limit exceeded")

	// Snapshot errors
	ErrSnapshotNotFound = errors.New("no aggregated stats for this user and year")
	ErrProfileNotFound  = errors.New("user profile not found")
)

// Ресурсы выборки: каждая ошибка загрузки помечается ресурсом, чтобы
// оркестратор мог сообщить, какая именно выборка упала.
const (
	ResourceProfile       = "profile"
	ResourceOrganizations = "organizations"
	ResourceStars         = "stars"
	ResourceContributions = "contributions"
	ResourceRepositories  = "repositories"
	ResourceCollaborators = "collaborators"
)

// FetchError помечает ошибку загрузки именем упавшего ресурса.
type FetchError struct {
	Resource string
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Resource, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError оборачивает ошибку загрузки с пометкой ресурса.
func NewFetchError(resource string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Resource: resource, Err: err}
}

// HTTPError для ответа API
type HTTPError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error HTTPError `json:"error"`
}

// Маппинг domain ошибок в HTTP ошибки
var ErrorMapping = map[error]HTTPError{
	ErrInvalidUsername:  {Code: "INVALID_USERNAME", Message: "username must not be empty"},
	ErrInvalidYear:      {Code: "INVALID_YEAR", Message: "year must be a four-digit calendar year"},
	ErrAuthRequired:     {Code: "AUTH_REQUIRED", Message: "github token is invalid or expired, re-authenticate and retry"},
	ErrUserNotFound:     {Code: "NOT_FOUND", Message: "github user not found"},
	ErrRateLimited:      {Code: "RATE_LIMITED", Message: "github rate limit exceeded, retry later"},
	ErrSnapshotNotFound: {Code: "NOT_FOUND", Message: "stats not aggregated for this user and year"},
	ErrProfileNotFound:  {Code: "NOT_FOUND", Message: "user profile not found"},
}

// ToHTTPError преобразует domain ошибку в HTTP ошибку.
// Обёртки FetchError разворачиваются до вложенной domain ошибки.
func ToHTTPError(err error) (HTTPError, bool) {
	for target, httpErr := range ErrorMapping {
		if errors.Is(err, target) {
			return httpErr, true
		}
	}
	return HTTPError{}, false
}
