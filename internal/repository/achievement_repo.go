package repository

import (
	"context"
	"database/sql"
	"fmt"

	"starlog-service/internal/domain"
)

// AchievementRepository реализует работу с каталогом достижений и
// заработанными записями в PostgreSQL.
type AchievementRepository struct {
	db *sql.DB
}

// NewAchievementRepository создает новый экземпляр AchievementRepository.
func NewAchievementRepository(db *sql.DB) domain.AchievementRepository {
	return &AchievementRepository{db: db}
}

// GetCatalog возвращает все записи каталога в порядке каталога.
func (r *AchievementRepository) GetCatalog(ctx context.Context) ([]*domain.Achievement, error) {
	const query = `
		SELECT code, name, description, icon
		FROM achievements
		ORDER BY position`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get achievement catalog: %w", err)
	}
	defer rows.Close()

	var catalog []*domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := rows.Scan(&a.Code, &a.Name, &a.Description, &a.Icon); err != nil {
			return nil, fmt.Errorf("failed to scan achievement: %w", err)
		}
		catalog = append(catalog, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read achievement catalog: %w", err)
	}

	return catalog, nil
}

// ReplaceEarned сверяет коды с каталогом и заменяет заработанный набор
// пользователя за год в одной транзакции. Неизвестные каталогу коды
// отбрасываются, а не приводят к ошибке.
func (r *AchievementRepository) ReplaceEarned(ctx context.Context, userID int64, year int, codes []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Сверяем с каталогом
	rows, err := tx.QueryContext(ctx, `SELECT code FROM achievements`)
	if err != nil {
		return fmt.Errorf("failed to load catalog codes: %w", err)
	}
	known := make(map[string]bool)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan catalog code: %w", err)
		}
		known[code] = true
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read catalog codes: %w", err)
	}

	// 2. Заменяем набор целиком
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM user_achievements WHERE user_id = $1 AND year = $2`,
		userID, year,
	); err != nil {
		return fmt.Errorf("failed to clear earned achievements: %w", err)
	}

	for _, code := range codes {
		if !known[code] {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_achievements (user_id, year, code) VALUES ($1, $2, $3)`,
			userID, year, code,
		); err != nil {
			return fmt.Errorf("failed to record achievement %s: %w", code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit earned achievements: %w", err)
	}
	return nil
}

// GetEarned возвращает заработанные коды пользователя за год в порядке каталога.
func (r *AchievementRepository) GetEarned(ctx context.Context, login string, year int) ([]string, error) {
	const query = `
		SELECT ua.code
		FROM user_achievements ua
		JOIN users u ON u.id = ua.user_id
		JOIN achievements a ON a.code = ua.code
		WHERE u.login = $1 AND ua.year = $2
		ORDER BY a.position`

	rows, err := r.db.QueryContext(ctx, query, login, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get earned achievements: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("failed to scan earned code: %w", err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read earned achievements: %w", err)
	}

	return codes, nil
}
