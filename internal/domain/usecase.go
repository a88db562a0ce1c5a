package domain

import "context"

// YearLog представляет полный результат агрегации за год: снимок
// статистики, заработанные коды достижений и уровень допуска.
type YearLog struct {
	Profile          *UserCoreProfile
	Stats            *AggregatedStats
	AchievementCodes []string
	Clearance        ClearanceLevel
}

// YearLogUseCase определяет бизнес-логику агрегации годовой активности.
type YearLogUseCase interface {
	// RefreshYear пересчитывает статистику пользователя за год с нуля:
	// выбирает сырые данные из upstream, прогоняет движок агрегации и
	// сохраняет снимок вместе с достижениями.
	RefreshYear(ctx context.Context, username string, year int, includePrivate bool) (*YearLog, error)

	// GetYear возвращает сохранённый снимок без обращения к upstream.
	GetYear(ctx context.Context, username string, year int) (*YearLog, error)
}

// AchievementUseCase определяет бизнес-логику для каталога достижений.
type AchievementUseCase interface {
	GetCatalog(ctx context.Context) ([]*Achievement, error)
}

// ClearanceUseCase определяет бизнес-логику для вычисления уровня допуска.
type ClearanceUseCase interface {
	// GetClearance вычисляет уровень заново из сохранённого профиля и
	// снимка за год; результат нигде не хранится.
	GetClearance(ctx context.Context, username string, year int) (*ClearanceLevel, error)
}
