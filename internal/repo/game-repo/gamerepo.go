package gamerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/pg"
)

// Repository persists the mini-game records: spin wheel history, scratch
// cards and achievements.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateSpinRecord(ctx context.Context, record *domain.SpinRecord) (*domain.SpinRecord, error) {
	query := `
        INSERT INTO spin_records (user_id, reward)
        VALUES ($1, $2)
        RETURNING id, user_id, reward, spin_date
    `
	row := r.db.QueryRow(ctx, query, record.UserID, record.Reward)
	var created domain.SpinRecord
	if err := row.Scan(&created.ID, &created.UserID, &created.Reward, &created.SpinDate); err != nil {
		zap.L().Error("failed to create spin record", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetLastSpinRecord(ctx context.Context, userID string) (*domain.SpinRecord, error) {
	query := `
        SELECT id, user_id, reward, spin_date
        FROM spin_records
        WHERE user_id = $1
        ORDER BY spin_date DESC
        LIMIT 1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var record domain.SpinRecord
	err := row.Scan(&record.ID, &record.UserID, &record.Reward, &record.SpinDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get last spin record", zap.Error(err))
		return nil, err
	}
	return &record, nil
}

const scratchCardColumns = `id, user_id, reward, is_scratched, scratched_at, card_type`

func scanScratchCard(row pgx.Row, c *domain.ScratchCard) error {
	return row.Scan(&c.ID, &c.UserID, &c.Reward, &c.IsScratched, &c.ScratchedAt, &c.CardType)
}

func (r *Repository) CreateScratchCard(ctx context.Context, card *domain.ScratchCard) (*domain.ScratchCard, error) {
	query := `
        INSERT INTO scratch_cards (user_id, reward, is_scratched, card_type)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + scratchCardColumns + `
    `
	row := r.db.QueryRow(ctx, query, card.UserID, card.Reward, card.IsScratched, card.CardType)
	var created domain.ScratchCard
	if err := scanScratchCard(row, &created); err != nil {
		zap.L().Error("failed to create scratch card", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) GetScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error) {
	query := `
        SELECT ` + scratchCardColumns + `
        FROM scratch_cards
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)
	var card domain.ScratchCard
	err := scanScratchCard(row, &card)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get scratch card", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *Repository) FindScratchCardsByUserID(ctx context.Context, userID string) ([]domain.ScratchCard, error) {
	query := `
        SELECT ` + scratchCardColumns + `
        FROM scratch_cards
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to find scratch cards", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var cards []domain.ScratchCard
	for rows.Next() {
		var c domain.ScratchCard
		if err := scanScratchCard(rows, &c); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// ScratchCard marks a card scratched. Returns nil when the card does not
// exist or was scratched before: a card pays out once.
func (r *Repository) ScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error) {
	query := `
        UPDATE scratch_cards
        SET is_scratched = TRUE, scratched_at = now()
        WHERE id = $1 AND NOT is_scratched
        RETURNING ` + scratchCardColumns + `
    `
	row := r.db.QueryRow(ctx, query, id)
	var card domain.ScratchCard
	err := scanScratchCard(row, &card)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to scratch card", zap.Error(err))
		return nil, err
	}
	return &card, nil
}

const achievementColumns = `id, user_id, achievement_key, title, description, reward, is_completed, completed_at, progress, target`

func scanAchievement(row pgx.Row, a *domain.Achievement) error {
	return row.Scan(
		&a.ID, &a.UserID, &a.AchievementKey, &a.Title, &a.Description,
		&a.Reward, &a.IsCompleted, &a.CompletedAt, &a.Progress, &a.Target,
	)
}

func (r *Repository) CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	query := `
        INSERT INTO achievements (user_id, achievement_key, title, description, reward, is_completed, progress, target)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING ` + achievementColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		achievement.UserID, achievement.AchievementKey, achievement.Title, achievement.Description,
		achievement.Reward, achievement.IsCompleted, achievement.Progress, achievement.Target,
	)
	var created domain.Achievement
	if err := scanAchievement(row, &created); err != nil {
		zap.L().Error("failed to create achievement", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindAchievementsByUserID(ctx context.Context, userID string) ([]domain.Achievement, error) {
	query := `
        SELECT ` + achievementColumns + `
        FROM achievements
        WHERE user_id = $1
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to find achievements", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.Achievement
	for rows.Next() {
		var a domain.Achievement
		if err := scanAchievement(rows, &a); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// CompleteAchievement marks an achievement claimed. Returns nil when it does
// not exist or was already claimed.
func (r *Repository) CompleteAchievement(ctx context.Context, id string) (*domain.Achievement, error) {
	query := `
        UPDATE achievements
        SET is_completed = TRUE, completed_at = now()
        WHERE id = $1 AND NOT is_completed
        RETURNING ` + achievementColumns + `
    `
	row := r.db.QueryRow(ctx, query, id)
	var achievement domain.Achievement
	err := scanAchievement(row, &achievement)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to complete achievement", zap.Error(err))
		return nil, err
	}
	return &achievement, nil
}
