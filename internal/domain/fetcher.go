package domain

import "context"

// ActivityFetcher определяет контракт слоя выборки из upstream API.
// Каждый метод покрывает один ресурс, чтобы ошибки были атрибутируемы
// поресурсно. Методы не имеют побочных эффектов кроме исходящих чтений.
type ActivityFetcher interface {
	// FetchProfile возвращает профиль пользователя. Отсутствие обязательных
	// полей — жёсткая ошибка (проблема аутентификации или аккаунта).
	FetchProfile(ctx context.Context, username string) (*UserCoreProfile, error)

	// FetchOwnedOrganizations возвращает логины организаций, которыми
	// аутентифицированный пользователь администрирует.
	FetchOwnedOrganizations(ctx context.Context) ([]string, error)

	// FetchOwnedStarTotal суммирует звёзды по личным репозиториям и
	// репозиториям каждой из переданных организаций. Падение выборки одной
	// организации не прерывает остальные.
	FetchOwnedStarTotal(ctx context.Context, ownedOrgs []string) (int, error)

	// FetchContributions возвращает календарь вкладов за календарный год
	// плюс выборку меток времени коммитов.
	FetchContributions(ctx context.Context, username string, year int) (*ContributionData, error)

	// FetchRepositories возвращает репозитории, в которые пользователь
	// вносил вклад, с разбивкой по языкам и флагом владения.
	FetchRepositories(ctx context.Context, username string, includePrivate bool, ownedOrgs []string) ([]*RepoContributionData, error)

	// FetchCollaborators возвращает топ-20 коллабораторов по очкам
	// взаимодействия за год.
	FetchCollaborators(ctx context.Context, username string, year int) ([]*CollaboratorData, error)
}
