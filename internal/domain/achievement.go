package domain

import "context"

// Achievement представляет запись фиксированного каталога достижений.
// Каталог состоит из 16 записей и не меняется во время работы сервиса.
type Achievement struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// AchievementRepository определяет контракт для каталога достижений и
// заработанных записей по пользователю и году.
type AchievementRepository interface {
	GetCatalog(ctx context.Context) ([]*Achievement, error)
	// ReplaceEarned сверяет коды с каталогом и заменяет заработанный набор
	// пользователя за год.
	ReplaceEarned(ctx context.Context, userID int64, year int, codes []string) error
	GetEarned(ctx context.Context, login string, year int) ([]string, error)
}
