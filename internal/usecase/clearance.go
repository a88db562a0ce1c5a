package usecase

import (
	"context"
	"time"

	"starlog-service/internal/domain"
	"starlog-service/internal/stats"
)

// ClearanceUseCase реализует вычисление уровня допуска по запросу.
type ClearanceUseCase struct {
	userRepo  domain.UserRepository
	statsRepo domain.StatsRepository
	now       func() time.Time
}

// NewClearanceUseCase создает новый экземпляр ClearanceUseCase.
func NewClearanceUseCase(userRepo domain.UserRepository, statsRepo domain.StatsRepository) domain.ClearanceUseCase {
	return &ClearanceUseCase{
		userRepo:  userRepo,
		statsRepo: statsRepo,
		now:       time.Now,
	}
}

// GetClearance вычисляет уровень заново из сохранённого профиля и снимка
// за год. Результат не персистится: ранг всегда свежий.
func (uc *ClearanceUseCase) GetClearance(ctx context.Context, username string, year int) (*domain.ClearanceLevel, error) {
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}

	profile, err := uc.userRepo.GetByLogin(ctx, username)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.statsRepo.GetSnapshot(ctx, username, year)
	if err != nil {
		return nil, err
	}

	clearance := stats.ComputeClearance(profile.CreatedAt, snapshot.Followers, snapshot.TotalContributions, uc.now())
	return &clearance, nil
}
