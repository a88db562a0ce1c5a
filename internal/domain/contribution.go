package domain

// ContributionDay представляет один день календаря вкладов.
// Date в формате "2006-01-02" (UTC).
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// ContributionWeek представляет одну неделю календаря вкладов.
// Дни внутри недели идут в хронологическом порядке.
type ContributionWeek struct {
	Days []ContributionDay `json:"days"`
}

// ContributionData представляет календарь вкладов пользователя за год.
// Недели идут в хронологическом порядке — это требуется для корректного
// вычисления стриков.
type ContributionData struct {
	Total           int
	Weeks           []ContributionWeek
	RestrictedCount int
	TotalCommits    int
	TotalPRs        int
	TotalIssues     int

	// CommitTimestamps — плоский список меток времени коммитов (RFC3339, UTC),
	// используется для статистики по часам и дням недели. Это выборка,
	// ограниченная сверху по репозиториям и коммитам, а не полная история.
	CommitTimestamps []string
}
