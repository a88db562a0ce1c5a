package mocks

import (
	"context"

	"starlog-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// AchievementRepository — мок domain.AchievementRepository для юнит-тестов.
type AchievementRepository struct {
	mock.Mock
}

func (m *AchievementRepository) GetCatalog(ctx context.Context) ([]*domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Achievement), args.Error(1)
}

func (m *AchievementRepository) ReplaceEarned(ctx context.Context, userID int64, year int, codes []string) error {
	args := m.Called(ctx, userID, year, codes)
	return args.Error(0)
}

func (m *AchievementRepository) GetEarned(ctx context.Context, login string, year int) ([]string, error) {
	args := m.Called(ctx, login, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
