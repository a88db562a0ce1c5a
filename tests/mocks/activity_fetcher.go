package mocks

import (
	"context"

	"starlog-service/internal/domain"

	"github.com/stretchr/testify/mock"
)

// ActivityFetcher — мок domain.ActivityFetcher для юнит-тестов.
type ActivityFetcher struct {
	mock.Mock
}

func (m *ActivityFetcher) FetchProfile(ctx context.Context, username string) (*domain.UserCoreProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserCoreProfile), args.Error(1)
}

func (m *ActivityFetcher) FetchOwnedOrganizations(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *ActivityFetcher) FetchOwnedStarTotal(ctx context.Context, ownedOrgs []string) (int, error) {
	args := m.Called(ctx, ownedOrgs)
	return args.Int(0), args.Error(1)
}

func (m *ActivityFetcher) FetchContributions(ctx context.Context, username string, year int) (*domain.ContributionData, error) {
	args := m.Called(ctx, username, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContributionData), args.Error(1)
}

func (m *ActivityFetcher) FetchRepositories(ctx context.Context, username string, includePrivate bool, ownedOrgs []string) ([]*domain.RepoContributionData, error) {
	args := m.Called(ctx, username, includePrivate, ownedOrgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.RepoContributionData), args.Error(1)
}

func (m *ActivityFetcher) FetchCollaborators(ctx context.Context, username string, year int) ([]*domain.CollaboratorData, error) {
	args := m.Called(ctx, username, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CollaboratorData), args.Error(1)
}
