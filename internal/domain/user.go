package domain

import (
	"context"
	"time"
)

// UserCoreProfile представляет снимок профиля пользователя GitHub.
// Заполняется один раз за прогон агрегации и дальше не изменяется.
type UserCoreProfile struct {
	ID          int64
	Login       string
	Name        string
	AvatarURL   string
	Email       string
	Bio         string
	PublicRepos int
	Followers   int
	Following   int
	CreatedAt   time.Time
}

// UserRepository определяет контракт для работы с хранилищем профилей.
type UserRepository interface {
	Upsert(ctx context.Context, profile *UserCoreProfile) error
	GetByLogin(ctx context.Context, login string) (*UserCoreProfile, error)
}
