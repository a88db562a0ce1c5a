package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	GitHubToken   string
	GitHubBaseURL string

	// RepoListLimit ограничивает один цикл листинга репозиториев по числу
	// накопленных элементов. Это ограничение расхода API, не требование
	// протокола, поэтому оно настраиваемое.
	RepoListLimit int

	// Пределы выборки коммитов для статистики по часам: количество
	// репозиториев и коммитов на репозиторий. Для очень активных
	// пользователей "самый активный час" считается по выборке.
	CommitSampleRepos   int
	CommitSampleCommits int

	// RequestsPerSecond — лимит исходящих запросов к GitHub API.
	RequestsPerSecond int
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "starlog"),
		ServerPort: getEnv("SERVER_PORT", "8080"),

		GitHubToken:   getEnv("GITHUB_TOKEN", ""),
		GitHubBaseURL: getEnv("GITHUB_BASE_URL", "https://api.github.com"),

		RepoListLimit:       getEnvInt("REPO_LIST_LIMIT", 100),
		CommitSampleRepos:   getEnvInt("COMMIT_SAMPLE_REPOS", 50),
		CommitSampleCommits: getEnvInt("COMMIT_SAMPLE_COMMITS", 100),
		RequestsPerSecond:   getEnvInt("GITHUB_RPS", 5),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
