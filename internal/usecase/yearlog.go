package usecase

import (
	"context"
	"time"

	"starlog-service/internal/domain"
	"starlog-service/internal/stats"
)

// YearLogUseCase реализует оркестрацию агрегации годовой активности.
type YearLogUseCase struct {
	fetcher         domain.ActivityFetcher
	userRepo        domain.UserRepository
	statsRepo       domain.StatsRepository
	achievementRepo domain.AchievementRepository
	now             func() time.Time
}

// NewYearLogUseCase создает новый экземпляр YearLogUseCase.
func NewYearLogUseCase(
	fetcher domain.ActivityFetcher,
	userRepo domain.UserRepository,
	statsRepo domain.StatsRepository,
	achievementRepo domain.AchievementRepository,
) domain.YearLogUseCase {
	return &YearLogUseCase{
		fetcher:         fetcher,
		userRepo:        userRepo,
		statsRepo:       statsRepo,
		achievementRepo: achievementRepo,
		now:             time.Now,
	}
}

// RefreshYear пересчитывает статистику пользователя за год с нуля.
// Выборки идут последовательно; ошибка аутентификации на любой из них
// обрывает весь прогон сразу — без повторной аутентификации повторять
// остальные выборки бессмысленно. Частичного возобновления нет: повторный
// запуск пересчитывает всё заново.
func (uc *YearLogUseCase) RefreshYear(ctx context.Context, username string, year int, includePrivate bool) (*domain.YearLog, error) {
	// Валидация входных данных
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if year < 1000 || year > 9999 {
		return nil, domain.ErrInvalidYear
	}

	// 1. Профиль: единственный источник, без него прогон невозможен
	profile, err := uc.fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	// 2. Организации с правами администратора: питают выборки владения
	ownedOrgs, err := uc.fetcher.FetchOwnedOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Сумма звёзд по своим репозиториям и репозиториям организаций
	totalOwnedStars, err := uc.fetcher.FetchOwnedStarTotal(ctx, ownedOrgs)
	if err != nil {
		return nil, err
	}

	// 4. Календарь вкладов за год
	contribs, err := uc.fetcher.FetchContributions(ctx, username, year)
	if err != nil {
		return nil, err
	}

	// 5. Репозитории с вкладом
	repos, err := uc.fetcher.FetchRepositories(ctx, username, includePrivate, ownedOrgs)
	if err != nil {
		return nil, err
	}

	// 6. Коллабораторы
	collaborators, err := uc.fetcher.FetchCollaborators(ctx, username, year)
	if err != nil {
		return nil, err
	}

	// 7. Чистый движок: агрегация, правила достижений, уровень допуска
	aggregated := stats.Aggregate(profile, contribs, repos, collaborators, totalOwnedStars)
	codes := stats.EvaluateAchievements(aggregated, contribs.CommitTimestamps)
	clearance := stats.ComputeClearance(profile.CreatedAt, profile.Followers, aggregated.TotalContributions, uc.now())

	// 8. Сохраняем снимок, заменяя прежний целиком
	if err := uc.userRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	if err := uc.statsRepo.SaveSnapshot(ctx, profile.ID, year, aggregated); err != nil {
		return nil, err
	}
	if err := uc.achievementRepo.ReplaceEarned(ctx, profile.ID, year, codes); err != nil {
		return nil, err
	}

	return &domain.YearLog{
		Profile:          profile,
		Stats:            aggregated,
		AchievementCodes: codes,
		Clearance:        clearance,
	}, nil
}

// GetYear возвращает сохранённый снимок без обращения к upstream.
// Уровень допуска при этом вычисляется заново — он нигде не хранится.
func (uc *YearLogUseCase) GetYear(ctx context.Context, username string, year int) (*domain.YearLog, error) {
	if username == "" {
		return nil, domain.ErrInvalidUsername
	}
	if year < 1000 || year > 9999 {
		return nil, domain.ErrInvalidYear
	}

	profile, err := uc.userRepo.GetByLogin(ctx, username)
	if err != nil {
		return nil, err
	}

	snapshot, err := uc.statsRepo.GetSnapshot(ctx, username, year)
	if err != nil {
		return nil, err
	}

	codes, err := uc.achievementRepo.GetEarned(ctx, username, year)
	if err != nil {
		return nil, err
	}

	clearance := stats.ComputeClearance(profile.CreatedAt, snapshot.Followers, snapshot.TotalContributions, uc.now())

	return &domain.YearLog{
		Profile:          profile,
		Stats:            snapshot,
		AchievementCodes: codes,
		Clearance:        clearance,
	}, nil
}
