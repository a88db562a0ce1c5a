package mocks

import (
	"context"

	"starlog-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// StatsRepository — мок domain.StatsRepository для юнит-тестов.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) SaveSnapshot(ctx context.Context, userID int64, year int, stats *domain.AggregatedStats) error {
	args := m.Called(ctx, userID, year, stats)
	return args.Error(0)
}

func (m *StatsRepository) GetSnapshot(ctx context.Context, login string, year int) (*domain.AggregatedStats, error) {
	args := m.Called(ctx, login, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregatedStats), args.Error(1)
}
