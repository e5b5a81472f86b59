package gameservice

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/ws"
)

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error)
}

type GameRepo interface {
	CreateSpinRecord(ctx context.Context, record *domain.SpinRecord) (*domain.SpinRecord, error)
	GetLastSpinRecord(ctx context.Context, userID string) (*domain.SpinRecord, error)
	CreateScratchCard(ctx context.Context, card *domain.ScratchCard) (*domain.ScratchCard, error)
	GetScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error)
	FindScratchCardsByUserID(ctx context.Context, userID string) ([]domain.ScratchCard, error)
	ScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error)
	FindAchievementsByUserID(ctx context.Context, userID string) ([]domain.Achievement, error)
	CompleteAchievement(ctx context.Context, id string) (*domain.Achievement, error)
}

type BoostRepo interface {
	CreateBoost(ctx context.Context, boost *domain.Boost) (*domain.Boost, error)
	FindBoostsByUserID(ctx context.Context, userID string) ([]domain.Boost, error)
	DeactivateBoost(ctx context.Context, id string) error
}

type Ledger interface {
	Record(ctx context.Context, userID string, amount float64, txType, description string) (*domain.Transaction, error)
}

type Publisher interface {
	Publish(userID, event string, data any)
}

var (
	ErrProfileNotFound        = errors.New("profile not found")
	ErrNotEnoughEnergy        = errors.New("not enough energy")
	ErrSpinCooldown           = errors.New("can only spin once per day")
	ErrCardUnavailable        = errors.New("card not found or already scratched")
	ErrAchievementUnavailable = errors.New("achievement not found or already claimed")
	ErrInsufficientBalance    = errors.New("insufficient balance")
	ErrInvalidBoostType       = errors.New("invalid boost type")
)

const (
	spinEnergyCost    = 15
	spinCooldown      = 24 * time.Hour
	newScratchCost    = 10
	scratchEnergyCost = 5
)

var (
	spinRewards    = []float64{50, 100, 25, 200, 75, 500, 150, 1000}
	scratchRewards = []float64{25, 50, 100, 150, 200, 500}
)

type boostConfig struct {
	multiplier float64
	duration   time.Duration
	cost       float64
	energyCost int
}

var boostConfigs = map[string]boostConfig{
	"2x_speed": {multiplier: 2, duration: time.Hour, cost: 100, energyCost: 20},
	"3x_speed": {multiplier: 3, duration: 30 * time.Minute, cost: 200, energyCost: 30},
	"5x_speed": {multiplier: 5, duration: 15 * time.Minute, cost: 500, energyCost: 50},
}

// Service runs the energy-spending mini-games: spin wheel, scratch cards,
// achievement claims and boost purchases. Every payout goes through the
// reward ledger.
type Service struct {
	profiles ProfileRepo
	games    GameRepo
	boosts   BoostRepo
	ledger   Ledger
	pub      Publisher
	now      func() time.Time
}

func New(profiles ProfileRepo, games GameRepo, boosts BoostRepo, ledger Ledger, pub Publisher) *Service {
	return &Service{
		profiles: profiles,
		games:    games,
		boosts:   boosts,
		ledger:   ledger,
		pub:      pub,
		now:      time.Now,
	}
}

// CanSpin reports whether the daily spin is available and, if not, when it
// will be.
func (s *Service) CanSpin(ctx context.Context, userID string) (bool, *time.Time, error) {
	last, err := s.games.GetLastSpinRecord(ctx, userID)
	if err != nil {
		return false, nil, err
	}
	if last == nil {
		return true, nil, nil
	}

	next := last.SpinDate.Add(spinCooldown)
	if s.now().Before(next) {
		return false, &next, nil
	}
	return true, nil, nil
}

func (s *Service) Spin(ctx context.Context, userID string) (float64, *domain.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	if profile == nil {
		return 0, nil, ErrProfileNotFound
	}
	if profile.Energy < spinEnergyCost {
		return 0, nil, ErrNotEnoughEnergy
	}

	ok, _, err := s.CanSpin(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	if !ok {
		return 0, nil, ErrSpinCooldown
	}

	reward := spinRewards[rand.Intn(len(spinRewards))]
	if _, err := s.games.CreateSpinRecord(ctx, &domain.SpinRecord{UserID: userID, Reward: reward}); err != nil {
		zap.L().Error("failed to record spin", zap.Error(err))
		return 0, nil, err
	}

	profile.Balance += reward
	profile.Energy -= spinEnergyCost
	updated, err := s.profiles.UpdateProfile(ctx, userID, profile)
	if err != nil {
		zap.L().Error("failed to apply spin reward", zap.Error(err))
		return 0, nil, err
	}

	if _, err := s.ledger.Record(ctx, userID, reward, domain.TxSpinWheel, "Spin wheel reward"); err != nil {
		return 0, nil, err
	}

	s.pub.Publish(userID, ws.EventProfileUpdated, updated)
	return reward, updated, nil
}

func (s *Service) ScratchCards(ctx context.Context, userID string) ([]domain.ScratchCard, error) {
	return s.games.FindScratchCardsByUserID(ctx, userID)
}

// NewScratchCard buys a fresh card for 10 energy. The prize is fixed at
// purchase but stays hidden until the card is scratched.
func (s *Service) NewScratchCard(ctx context.Context, userID string) (*domain.ScratchCard, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if profile.Energy < newScratchCost {
		return nil, ErrNotEnoughEnergy
	}

	card, err := s.games.CreateScratchCard(ctx, &domain.ScratchCard{
		UserID:   userID,
		Reward:   scratchRewards[rand.Intn(len(scratchRewards))],
		CardType: "basic",
	})
	if err != nil {
		zap.L().Error("failed to create scratch card", zap.Error(err))
		return nil, err
	}

	profile.Energy -= newScratchCost
	if _, err := s.profiles.UpdateProfile(ctx, userID, profile); err != nil {
		zap.L().Error("failed to debit scratch card purchase", zap.Error(err))
		return nil, err
	}

	return card, nil
}

func (s *Service) Scratch(ctx context.Context, cardID string) (*domain.ScratchCard, *domain.Profile, error) {
	card, err := s.games.GetScratchCard(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}
	if card == nil || card.IsScratched {
		return nil, nil, ErrCardUnavailable
	}

	profile, err := s.profiles.GetProfile(ctx, card.UserID)
	if err != nil {
		return nil, nil, err
	}
	if profile == nil {
		return nil, nil, ErrProfileNotFound
	}
	if profile.Energy < scratchEnergyCost {
		return nil, nil, ErrNotEnoughEnergy
	}

	scratched, err := s.games.ScratchCard(ctx, cardID)
	if err != nil {
		return nil, nil, err
	}
	if scratched == nil {
		return nil, nil, ErrCardUnavailable
	}

	profile.Balance += scratched.Reward
	profile.Energy -= scratchEnergyCost
	updated, err := s.profiles.UpdateProfile(ctx, card.UserID, profile)
	if err != nil {
		zap.L().Error("failed to apply scratch reward", zap.Error(err))
		return nil, nil, err
	}

	if _, err := s.ledger.Record(ctx, card.UserID, scratched.Reward, domain.TxScratchCard, "Scratch card reward"); err != nil {
		return nil, nil, err
	}

	s.pub.Publish(card.UserID, ws.EventProfileUpdated, updated)
	return scratched, updated, nil
}

func (s *Service) Achievements(ctx context.Context, userID string) ([]domain.Achievement, error) {
	return s.games.FindAchievementsByUserID(ctx, userID)
}

func (s *Service) ClaimAchievement(ctx context.Context, achievementID string) (*domain.Achievement, error) {
	achievement, err := s.games.CompleteAchievement(ctx, achievementID)
	if err != nil {
		return nil, err
	}
	if achievement == nil {
		return nil, ErrAchievementUnavailable
	}

	profile, err := s.profiles.GetProfile(ctx, achievement.UserID)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		profile.Balance += achievement.Reward
		updated, err := s.profiles.UpdateProfile(ctx, achievement.UserID, profile)
		if err != nil {
			zap.L().Error("failed to credit achievement reward", zap.Error(err))
			return nil, err
		}

		if _, err := s.ledger.Record(ctx, achievement.UserID, achievement.Reward, domain.TxAchievement, "Achievement: "+achievement.Title); err != nil {
			return nil, err
		}
		s.pub.Publish(achievement.UserID, ws.EventAchievementClaimed, map[string]any{
			"achievement": achievement,
			"profile":     updated,
		})
	}

	return achievement, nil
}

// ActiveBoosts lists unexpired boosts, lazily retiring any that have run out.
// Retirement only changes the listing; the compounded profile multiplier is
// left untouched.
func (s *Service) ActiveBoosts(ctx context.Context, userID string) ([]domain.Boost, error) {
	boosts, err := s.boosts.FindBoostsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	active := make([]domain.Boost, 0, len(boosts))
	for _, b := range boosts {
		if !b.IsActive {
			continue
		}
		if !b.ExpiresAt.After(now) {
			if err := s.boosts.DeactivateBoost(ctx, b.ID); err != nil {
				zap.L().Error("failed to retire expired boost", zap.String("boostID", b.ID), zap.Error(err))
			}
			continue
		}
		active = append(active, b)
	}
	return active, nil
}

// ActivateBoost purchases a boost: balance and energy are debited and the
// profile's mining multiplier is compounded. Sessions already in flight keep
// their frozen rate.
func (s *Service) ActivateBoost(ctx context.Context, userID, boostType string) (*domain.Boost, error) {
	config, ok := boostConfigs[boostType]
	if !ok {
		return nil, ErrInvalidBoostType
	}

	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	if profile.Balance < config.cost {
		return nil, ErrInsufficientBalance
	}
	if profile.Energy < config.energyCost {
		return nil, ErrNotEnoughEnergy
	}

	now := s.now()
	boost, err := s.boosts.CreateBoost(ctx, &domain.Boost{
		UserID:     userID,
		BoostType:  boostType,
		Multiplier: config.multiplier,
		Duration:   int(config.duration.Seconds()),
		StartedAt:  now,
		ExpiresAt:  now.Add(config.duration),
		IsActive:   true,
	})
	if err != nil {
		zap.L().Error("failed to create boost", zap.Error(err))
		return nil, err
	}

	profile.Balance -= config.cost
	profile.Energy -= config.energyCost
	profile.MiningMultiplier *= config.multiplier
	updated, err := s.profiles.UpdateProfile(ctx, userID, profile)
	if err != nil {
		zap.L().Error("failed to apply boost purchase", zap.Error(err))
		return nil, err
	}

	if _, err := s.ledger.Record(ctx, userID, -config.cost, domain.TxBoostPurchase, "Boost purchase: "+boostType); err != nil {
		return nil, err
	}

	s.pub.Publish(userID, ws.EventBoostActivated, map[string]any{
		"boost":   boost,
		"profile": updated,
	})
	return boost, nil
}
