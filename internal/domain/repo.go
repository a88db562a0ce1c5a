package domain

// RepoRole — классификация репозитория по звёздному рангу.
type RepoRole string

const (
	// RoleFlagship — репозиторий с наибольшим числом звёзд.
	RoleFlagship RepoRole = "FLAGSHIP"
	// RolePatrol — следующие четыре репозитория по числу звёзд.
	RolePatrol RepoRole = "PATROL"
	// RoleShuttle — все остальные; также начальное значение до классификации.
	RoleShuttle RepoRole = "SHUTTLE"
)

// LanguageShare представляет долю языка в процентах.
type LanguageShare struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// RepoContributionData представляет репозиторий, в который пользователь
// вносил вклад в течение года.
type RepoContributionData struct {
	ID              int64           `json:"id"`
	FullName        string          `json:"full_name"`
	Description     string          `json:"description"`
	IsPrivate       bool            `json:"is_private"`
	IsOwner         bool            `json:"is_owner"`
	PrimaryLanguage string          `json:"primary_language"`
	Languages       []LanguageShare `json:"languages"`
	Stars           int             `json:"stars"`
	Forks           int             `json:"forks"`

	// Поля зарезервированы: источник данных не даёт поштучной атрибуции
	// вкладов по репозиториям, агрегация оставляет их нулевыми.
	CommitsByUser int `json:"commits_by_user"`
	PRsByUser     int `json:"prs_by_user"`
	IssuesByUser  int `json:"issues_by_user"`

	// Role выставляется ровно один раз внутри движка агрегации.
	Role RepoRole `json:"role"`
}
