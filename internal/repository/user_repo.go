package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"starlog-service/internal/domain"
)

// UserRepository реализует взаимодействие с профилями пользователей в PostgreSQL.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository создает новый экземпляр UserRepository.
func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// Upsert вставляет профиль или заменяет сохранённый снимок полностью.
func (r *UserRepository) Upsert(ctx context.Context, profile *domain.UserCoreProfile) error {
	const query = `
		INSERT INTO users (id, login, name, avatar_url, email, bio, public_repos, followers, following, created_at, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now())
		ON CONFLICT (id) DO UPDATE SET
			login = EXCLUDED.login,
			name = EXCLUDED.name,
			avatar_url = EXCLUDED.avatar_url,
			email = EXCLUDED.email,
			bio = EXCLUDED.bio,
			public_repos = EXCLUDED.public_repos,
			followers = EXCLUDED.followers,
			following = EXCLUDED.following,
			created_at = EXCLUDED.created_at,
			fetched_at = now()`

	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Login, profile.Name, profile.AvatarURL,
		profile.Email, profile.Bio, profile.PublicRepos,
		profile.Followers, profile.Following, profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// GetByLogin возвращает сохранённый профиль по логину.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*domain.UserCoreProfile, error) {
	const query = `
		SELECT id, login, name, avatar_url, email, bio, public_repos, followers, following, created_at
		FROM users
		WHERE login = $1`

	var profile domain.UserCoreProfile
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&profile.ID, &profile.Login, &profile.Name, &profile.AvatarURL,
		&profile.Email, &profile.Bio, &profile.PublicRepos,
		&profile.Followers, &profile.Following, &profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &profile, nil
}
