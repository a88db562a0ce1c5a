package usecase_test

import (
	"context"
	"testing"
	"time"

	"starlog-service/internal/domain"
	"starlog-service/internal/usecase"
	"starlog-service/tests/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClearanceUseCase_GetClearance_Success(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewClearanceUseCase(userRepo, statsRepo)

	profile := &domain.UserCoreProfile{
		ID:        42,
		Login:     "alice",
		CreatedAt: time.Now().AddDate(-12, 0, 0),
	}
	snapshot := &domain.AggregatedStats{
		TotalContributions: 10000,
		Followers:          1000,
	}

	userRepo.On("GetByLogin", ctx, "alice").Return(profile, nil)
	statsRepo.On("GetSnapshot", ctx, "alice", 2024).Return(snapshot, nil)

	result, err := uc.GetClearance(ctx, "alice", 2024)

	require.NoError(t, err)
	// Потолки всех трёх компонент: 40 + 30 + 30
	assert.Equal(t, 10, result.Level)
	assert.Equal(t, "FLEET ADMIRAL", result.Title)
}

func TestClearanceUseCase_GetClearance_InvalidUsername(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewClearanceUseCase(userRepo, statsRepo)

	result, err := uc.GetClearance(ctx, "", 2024)

	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
	assert.Nil(t, result)
	userRepo.AssertNotCalled(t, "GetByLogin", mock.Anything, mock.Anything)
	statsRepo.AssertNotCalled(t, "GetSnapshot", mock.Anything, mock.Anything, mock.Anything)
}

func TestClearanceUseCase_GetClearance_SnapshotNotFound(t *testing.T) {
	ctx := context.Background()
	userRepo := &mocks.UserRepository{}
	statsRepo := &mocks.StatsRepository{}
	uc := usecase.NewClearanceUseCase(userRepo, statsRepo)

	profile := &domain.UserCoreProfile{ID: 42, Login: "alice"}

	userRepo.On("GetByLogin", ctx, "alice").Return(profile, nil)
	statsRepo.On("GetSnapshot", ctx, "alice", 2024).Return(nil, domain.ErrSnapshotNotFound)

	result, err := uc.GetClearance(ctx, "alice", 2024)

	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	assert.Nil(t, result)
}
