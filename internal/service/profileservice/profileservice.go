package profileservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/energy"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error)
}

type AchievementRepo interface {
	CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error)
}

const (
	DefaultMaxEnergy        = 100
	DefaultMiningSpeed      = 2
	DefaultMiningMultiplier = 1
)

type Service struct {
	profiles     ProfileRepo
	achievements AchievementRepo
	now          func() time.Time
}

func New(profiles ProfileRepo, achievements AchievementRepo) *Service {
	return &Service{
		profiles:     profiles,
		achievements: achievements,
		now:          time.Now,
	}
}

// GetProfile returns the user's economic state, creating a default profile on
// first sight and settling any energy regeneration owed since the last
// request or sweep.
func (s *Service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}

	if profile == nil {
		profile, err = s.createDefault(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	newEnergy, newRefill, changed := energy.Accrue(profile.Energy, profile.MaxEnergy, profile.LastEnergyRefill, s.now())
	if changed {
		profile.Energy = newEnergy
		profile.LastEnergyRefill = newRefill
		profile, err = s.profiles.UpdateProfile(ctx, userID, profile)
		if err != nil {
			zap.L().Error("failed to persist energy catch-up", zap.Error(err))
			return nil, err
		}
	}

	return profile, nil
}

func (s *Service) createDefault(ctx context.Context, userID string) (*domain.Profile, error) {
	now := s.now()
	profile, err := s.profiles.CreateProfile(ctx, &domain.Profile{
		UserID:           userID,
		Balance:          0,
		Energy:           DefaultMaxEnergy,
		MaxEnergy:        DefaultMaxEnergy,
		Streak:           0,
		MiningSpeed:      DefaultMiningSpeed,
		MiningMultiplier: DefaultMiningMultiplier,
		LastEnergyRefill: now,
		TotalMined:       0,
	})
	if err != nil {
		zap.L().Error("failed to create default profile", zap.Error(err))
		return nil, err
	}
	zap.L().Info("created default profile", zap.String("userID", userID))

	for _, a := range defaultAchievements(userID) {
		a := a
		if _, err := s.achievements.CreateAchievement(ctx, &a); err != nil {
			zap.L().Error("failed to seed achievement",
				zap.String("userID", userID),
				zap.String("key", a.AchievementKey),
				zap.Error(err),
			)
		}
	}

	return profile, nil
}

func defaultAchievements(userID string) []domain.Achievement {
	return []domain.Achievement{
		{
			UserID:         userID,
			AchievementKey: "daily_login",
			Title:          "Daily Login",
			Description:    "Log in to the app daily",
			Reward:         100,
			Target:         1,
		},
		{
			UserID:         userID,
			AchievementKey: "mine_coins",
			Title:          "Mine 1000 Coins",
			Description:    "Mine a total of 1000 CASET coins",
			Reward:         500,
			Target:         1000,
		},
		{
			UserID:         userID,
			AchievementKey: "invite_friends",
			Title:          "Invite 5 Friends",
			Description:    "Invite 5 friends to join PingCaset",
			Reward:         1000,
			Target:         5,
		},
		{
			UserID:         userID,
			AchievementKey: "play_games",
			Title:          "Play 10 Games",
			Description:    "Play mini-games 10 times",
			Reward:         250,
			Target:         10,
		},
	}
}
