package usecase

import (
	"context"

	"starlog-service/internal/domain"
)

// AchievementUseCase реализует бизнес-логику для каталога достижений.
type AchievementUseCase struct {
	achievementRepo domain.AchievementRepository
}

// NewAchievementUseCase создает новый экземпляр AchievementUseCase.
func NewAchievementUseCase(achievementRepo domain.AchievementRepository) domain.AchievementUseCase {
	return &AchievementUseCase{achievementRepo: achievementRepo}
}

// GetCatalog возвращает все 16 записей каталога в порядке каталога.
func (uc *AchievementUseCase) GetCatalog(ctx context.Context) ([]*domain.Achievement, error) {
	return uc.achievementRepo.GetCatalog(ctx)
}
