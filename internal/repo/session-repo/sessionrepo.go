package sessionrepo

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

const sessionColumns = `id, user_id, started_at, ends_at, coins_per_hour, is_active`

func scanSession(row pgx.Row, s *domain.MiningSession) error {
	return row.Scan(&s.ID, &s.UserID, &s.StartedAt, &s.EndsAt, &s.CoinsPerHour, &s.IsActive)
}

// GetActiveMiningSession returns the user's active session or nil.
func (r *Repository) GetActiveMiningSession(ctx context.Context, userID string) (*domain.MiningSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM mining_sessions
        WHERE user_id = $1 AND is_active
    `
	row := r.db.QueryRow(ctx, query, userID)
	var session domain.MiningSession
	err := scanSession(row, &session)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get active mining session", zap.Error(err))
		return nil, err
	}
	return &session, nil
}

func (r *Repository) CreateMiningSession(ctx context.Context, session *domain.MiningSession) (*domain.MiningSession, error) {
	query := `
        INSERT INTO mining_sessions (user_id, started_at, ends_at, coins_per_hour, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + sessionColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		session.UserID, session.StartedAt, session.EndsAt, session.CoinsPerHour, session.IsActive,
	)
	var created domain.MiningSession
	if err := scanSession(row, &created); err != nil {
		zap.L().Error("failed to create mining session", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

// DeactivateMiningSession terminates a session. Terminal: a deactivated
// session is never reactivated.
func (r *Repository) DeactivateMiningSession(ctx context.Context, id string) error {
	query := `
        UPDATE mining_sessions
        SET is_active = FALSE
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("failed to deactivate mining session", zap.Error(err))
		return err
	}
	return nil
}

// FindActiveMiningSessions lists sessions the mining sweep has to advance.
func (r *Repository) FindActiveMiningSessions(ctx context.Context, limit uint32) ([]domain.MiningSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM mining_sessions
        WHERE is_active
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to find active mining sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.MiningSession
	for rows.Next() {
		var s domain.MiningSession
		if err := scanSession(rows, &s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
