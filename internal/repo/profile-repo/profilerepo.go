package profilerepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const profileColumns = `id, user_id, balance, energy, max_energy, streak, mining_speed, mining_multiplier, last_energy_refill, total_mined`

func scanProfile(row pgx.Row, p *domain.Profile) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Balance, &p.Energy, &p.MaxEnergy, &p.Streak,
		&p.MiningSpeed, &p.MiningMultiplier, &p.LastEnergyRefill, &p.TotalMined,
	)
}

func (r *Repository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE user_id = $1
    `
	row := r.db.QueryRow(ctx, query, userID)
	var profile domain.Profile
	err := scanProfile(row, &profile)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return &profile, nil
}

func (r *Repository) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
        INSERT INTO profiles (user_id, balance, energy, max_energy, streak, mining_speed, mining_multiplier, last_energy_refill, total_mined)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING ` + profileColumns + `
    `
	row := r.db.QueryRow(ctx, query,
		profile.UserID, profile.Balance, profile.Energy, profile.MaxEnergy, profile.Streak,
		profile.MiningSpeed, profile.MiningMultiplier, profile.LastEnergyRefill, profile.TotalMined,
	)
	var created domain.Profile
	if err := scanProfile(row, &created); err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error) {
	var updated domain.Profile
	query := `
		UPDATE profiles
		SET balance = $1, energy = $2, max_energy = $3, streak = $4,
			mining_speed = $5, mining_multiplier = $6, last_energy_refill = $7, total_mined = $8
		WHERE user_id = $9
		RETURNING ` + profileColumns + `
	`
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			profile.Balance, profile.Energy, profile.MaxEnergy, profile.Streak,
			profile.MiningSpeed, profile.MiningMultiplier, profile.LastEnergyRefill, profile.TotalMined,
			userID,
		)
		if err := scanProfile(row, &updated); err != nil {
			zap.L().Error("failed to update profile", zap.Error(err))
			return err
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// FindProfilesBelowMaxEnergy lists profiles the energy sweep still has work
// to do for.
func (r *Repository) FindProfilesBelowMaxEnergy(ctx context.Context, limit uint32) ([]domain.Profile, error) {
	query := `
        SELECT ` + profileColumns + `
        FROM profiles
        WHERE energy < max_energy
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("failed to find profiles below max energy", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}
