package boostrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const boostColumns = `id, user_id, boost_type, multiplier, duration, started_at, expires_at, is_active`

func scanBoost(row pgx.Row, b *domain.Boost) error {
	return row.Scan(&b.ID, &b.UserID, &b.BoostType, &b.Multiplier, &b.Duration, &b.StartedAt, &b.ExpiresAt, &b.IsActive)
}

func (r *Repository) CreateBoost(ctx context.Context, boost *domain.Boost) (*domain.Boost, error) {
	query := `
        INSERT INTO boosts (user_id, boost_type, multiplier, duration, started_at, expires_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING ` + boostColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		boost.UserID, boost.BoostType, boost.Multiplier, boost.Duration,
		boost.StartedAt, boost.ExpiresAt, boost.IsActive,
	)
	var created domain.Boost
	if err := scanBoost(row, &created); err != nil {
		zap.L().Error("failed to create boost", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindBoostsByUserID(ctx context.Context, userID string) ([]domain.Boost, error) {
	query := `
        SELECT ` + boostColumns + `
        FROM boosts
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to find boosts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var boosts []domain.Boost
	for rows.Next() {
		var b domain.Boost
		if err := scanBoost(rows, &b); err != nil {
			return nil, err
		}
		boosts = append(boosts, b)
	}
	return boosts, rows.Err()
}

// DeactivateBoost removes an expired boost from active listings. The profile
// multiplier it compounded into stays as is.
func (r *Repository) DeactivateBoost(ctx context.Context, id string) error {
	query := `
        UPDATE boosts
        SET is_active = FALSE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to deactivate boost", zap.Error(err))
		return err
	}
	return nil
}
