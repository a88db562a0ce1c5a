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

func newYearLogFixture() (*mocks.ActivityFetcher, *mocks.UserRepository, *mocks.StatsRepository, *mocks.AchievementRepository, domain.YearLogUseCase) {
	fetcher := &mocks.ActivityFetcher{}
	userRepo := &mocks.UserRepository{}
	statsRepo := &mocks.StatsRepository{}
	achievementRepo := &mocks.AchievementRepository{}
	uc := usecase.NewYearLogUseCase(fetcher, userRepo, statsRepo, achievementRepo)
	return fetcher, userRepo, statsRepo, achievementRepo, uc
}

func TestYearLogUseCase_RefreshYear_Success(t *testing.T) {
	ctx := context.Background()
	fetcher, userRepo, statsRepo, achievementRepo, uc := newYearLogFixture()

	profile := &domain.UserCoreProfile{
		ID:        42,
		Login:     "alice",
		Followers: 10,
		CreatedAt: time.Date(2018, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	ownedOrgs := []string{"starfleet"}
	contribs := &domain.ContributionData{
		Total: 5,
		Weeks: []domain.ContributionWeek{
			{Days: []domain.ContributionDay{
				{Date: "2024-06-03", Count: 3},
				{Date: "2024-06-04", Count: 2},
			}},
		},
		CommitTimestamps: []string{"2024-06-03T10:00:00Z"},
	}
	repos := []*domain.RepoContributionData{
		{ID: 1, FullName: "alice/warp-core", Stars: 12},
		{ID: 2, FullName: "starfleet/helm", Stars: 3},
	}
	collaborators := []*domain.CollaboratorData{
		{ID: 7, Username: "bob", InteractionScore: 3},
	}

	fetcher.On("FetchProfile", ctx, "alice").Return(profile, nil)
	fetcher.On("FetchOwnedOrganizations", ctx).Return(ownedOrgs, nil)
	fetcher.On("FetchOwnedStarTotal", ctx, ownedOrgs).Return(15, nil)
	fetcher.On("FetchContributions", ctx, "alice", 2024).Return(contribs, nil)
	fetcher.On("FetchRepositories", ctx, "alice", false, ownedOrgs).Return(repos, nil)
	fetcher.On("FetchCollaborators", ctx, "alice", 2024).Return(collaborators, nil)

	userRepo.On("Upsert", ctx, profile).Return(nil)
	statsRepo.On("SaveSnapshot", ctx, int64(42), 2024, mock.Anything).Return(nil)
	achievementRepo.On("ReplaceEarned", ctx, int64(42), 2024, []string{"FIRST_CONTACT"}).Return(nil)

	result, err := uc.RefreshYear(ctx, "alice", 2024, false)

	require.NoError(t, err)
	assert.Equal(t, profile, result.Profile)
	assert.Equal(t, 5, result.Stats.TotalContributions)
	assert.Equal(t, 15, result.Stats.TotalStarsEarned)
	assert.Equal(t, 2, result.Stats.TotalReposContributed)
	assert.Equal(t, 2, result.Stats.LongestStreak)
	assert.Equal(t, []string{"FIRST_CONTACT"}, result.AchievementCodes)
	assert.GreaterOrEqual(t, result.Clearance.Level, 1)
	assert.LessOrEqual(t, result.Clearance.Level, 10)
	assert.NotEmpty(t, result.Clearance.Title)

	fetcher.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	achievementRepo.AssertExpectations(t)
}

func TestYearLogUseCase_RefreshYear_InvalidUsername(t *testing.T) {
	ctx := context.Background()
	fetcher, _, _, _, uc := newYearLogFixture()

	result, err := uc.RefreshYear(ctx, "", 2024, false)

	assert.ErrorIs(t, err, domain.ErrInvalidUsername)
	assert.Nil(t, result)
	fetcher.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
}

func TestYearLogUseCase_RefreshYear_InvalidYear(t *testing.T) {
	ctx := context.Background()
	fetcher, _, _, _, uc := newYearLogFixture()

	for _, year := range []int{0, 99, 999, 10000} {
		result, err := uc.RefreshYear(ctx, "alice", year, false)

		assert.ErrorIs(t, err, domain.ErrInvalidYear)
		assert.Nil(t, result)
	}
	fetcher.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
}

func TestYearLogUseCase_RefreshYear_AuthErrorAbortsRun(t *testing.T) {
	ctx := context.Background()
	fetcher, userRepo, statsRepo, achievementRepo, uc := newYearLogFixture()

	profile := &domain.UserCoreProfile{ID: 42, Login: "alice"}
	fetchErr := domain.NewFetchError(domain.ResourceContributions, domain.ErrAuthRequired)

	fetcher.On("FetchProfile", ctx, "alice").Return(profile, nil)
	fetcher.On("FetchOwnedOrganizations", ctx).Return([]string{}, nil)
	fetcher.On("FetchOwnedStarTotal", ctx, []string{}).Return(0, nil)
	fetcher.On("FetchContributions", ctx, "alice", 2024).Return(nil, fetchErr)

	result, err := uc.RefreshYear(ctx, "alice", 2024, false)

	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.Nil(t, result)

	fetcher.AssertNotCalled(t, "FetchRepositories", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fetcher.AssertNotCalled(t, "FetchCollaborators", mock.Anything, mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
	statsRepo.AssertNotCalled(t, "SaveSnapshot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	achievementRepo.AssertNotCalled(t, "ReplaceEarned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestYearLogUseCase_RefreshYear_SaveErrorPropagates(t *testing.T) {
	ctx := context.Background()
	fetcher, userRepo, statsRepo, achievementRepo, uc := newYearLogFixture()

	profile := &domain.UserCoreProfile{ID: 42, Login: "alice"}

	fetcher.On("FetchProfile", ctx, "alice").Return(profile, nil)
	fetcher.On("FetchOwnedOrganizations", ctx).Return([]string{}, nil)
	fetcher.On("FetchOwnedStarTotal", ctx, []string{}).Return(0, nil)
	fetcher.On("FetchContributions", ctx, "alice", 2024).Return(&domain.ContributionData{}, nil)
	fetcher.On("FetchRepositories", ctx, "alice", false, []string{}).Return([]*domain.RepoContributionData{}, nil)
	fetcher.On("FetchCollaborators", ctx, "alice", 2024).Return([]*domain.CollaboratorData{}, nil)

	userRepo.On("Upsert", ctx, profile).Return(nil)
	statsRepo.On("SaveSnapshot", ctx, int64(42), 2024, mock.Anything).Return(assert.AnError)

	result, err := uc.RefreshYear(ctx, "alice", 2024, false)

	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, result)
	achievementRepo.AssertNotCalled(t, "ReplaceEarned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestYearLogUseCase_GetYear_Success(t *testing.T) {
	ctx := context.Background()
	fetcher, userRepo, statsRepo, achievementRepo, uc := newYearLogFixture()

	profile := &domain.UserCoreProfile{
		ID:        42,
		Login:     "alice",
		CreatedAt: time.Date(2014, time.June, 1, 0, 0, 0, 0, time.UTC),
	}
	snapshot := &domain.AggregatedStats{
		TotalContributions: 1200,
		Followers:          150,
		LongestStreak:      31,
	}
	codes := []string{"STREAK_MASTER", "THOUSAND_CLUB", "FIRST_CONTACT"}

	userRepo.On("GetByLogin", ctx, "alice").Return(profile, nil)
	statsRepo.On("GetSnapshot", ctx, "alice", 2024).Return(snapshot, nil)
	achievementRepo.On("GetEarned", ctx, "alice", 2024).Return(codes, nil)

	result, err := uc.GetYear(ctx, "alice", 2024)

	require.NoError(t, err)
	assert.Equal(t, snapshot, result.Stats)
	assert.Equal(t, codes, result.AchievementCodes)
	assert.GreaterOrEqual(t, result.Clearance.Level, 1)

	// Снимок читается из хранилища, к upstream обращений нет
	fetcher.AssertNotCalled(t, "FetchProfile", mock.Anything, mock.Anything)
	fetcher.AssertNotCalled(t, "FetchContributions", mock.Anything, mock.Anything, mock.Anything)
}

func TestYearLogUseCase_GetYear_SnapshotNotFound(t *testing.T) {
	ctx := context.Background()
	_, userRepo, statsRepo, achievementRepo, uc := newYearLogFixture()

	profile := &domain.UserCoreProfile{ID: 42, Login: "alice"}

	userRepo.On("GetByLogin", ctx, "alice").Return(profile, nil)
	statsRepo.On("GetSnapshot", ctx, "alice", 2024).Return(nil, domain.ErrSnapshotNotFound)

	result, err := uc.GetYear(ctx, "alice", 2024)

	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
	assert.Nil(t, result)
	achievementRepo.AssertNotCalled(t, "GetEarned", mock.Anything, mock.Anything, mock.Anything)
}

func TestYearLogUseCase_GetYear_ProfileNotFound(t *testing.T) {
	ctx := context.Background()
	_, userRepo, statsRepo, _, uc := newYearLogFixture()

	userRepo.On("GetByLogin", ctx, "ghost").Return(nil, domain.ErrProfileNotFound)

	result, err := uc.GetYear(ctx, "ghost", 2024)

	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	assert.Nil(t, result)
	statsRepo.AssertNotCalled(t, "GetSnapshot", mock.Anything, mock.Anything, mock.Anything)
}
