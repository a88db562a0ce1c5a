package mocks

import (
	"context"

	"starlog-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// UserRepository — мок domain.UserRepository для юнит-тестов.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Upsert(ctx context.Context, profile *domain.UserCoreProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.UserCoreProfile, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCoreProfile), args.Error(1)
}
