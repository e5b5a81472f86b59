package miningservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/ws"
)

// SessionDuration is the fixed mining window. The earning rate is frozen at
// session start, so a session's maximum yield is known the moment it begins.
const SessionDuration = 6 * time.Hour

type ProfileRepo interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error)
}

type SessionRepo interface {
	GetActiveMiningSession(ctx context.Context, userID string) (*domain.MiningSession, error)
	CreateMiningSession(ctx context.Context, session *domain.MiningSession) (*domain.MiningSession, error)
	DeactivateMiningSession(ctx context.Context, id string) error
}

type Ledger interface {
	Record(ctx context.Context, userID string, amount float64, txType, description string) (*domain.Transaction, error)
}

type Publisher interface {
	Publish(userID, event string, data any)
}

var (
	ErrSessionAlreadyActive = errors.New("mining session already active")
	ErrNoActiveSession      = errors.New("no active mining session")
	ErrProfileNotFound      = errors.New("profile not found")
)

type Service struct {
	profiles ProfileRepo
	sessions SessionRepo
	ledger   Ledger
	pub      Publisher
	now      func() time.Time
}

func New(profiles ProfileRepo, sessions SessionRepo, ledger Ledger, pub Publisher) *Service {
	return &Service{
		profiles: profiles,
		sessions: sessions,
		ledger:   ledger,
		pub:      pub,
		now:      time.Now,
	}
}

// Start opens a mining session for the user. The coins-per-hour rate is a
// snapshot of miningSpeed * miningMultiplier taken here; later multiplier
// changes do not affect a session already in flight.
func (s *Service) Start(ctx context.Context, userID string) (*domain.MiningSession, error) {
	profile, err := s.profiles.GetProfile(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	existing, err := s.sessions.GetActiveMiningSession(ctx, userID)
	if err != nil {
		zap.L().Error("failed to check for active session", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("mining session already active", zap.String("userID", userID))
		return nil, ErrSessionAlreadyActive
	}

	now := s.now()
	session, err := s.sessions.CreateMiningSession(ctx, &domain.MiningSession{
		UserID:       userID,
		StartedAt:    now,
		EndsAt:       now.Add(SessionDuration),
		CoinsPerHour: profile.MiningSpeed * profile.MiningMultiplier,
		IsActive:     true,
	})
	if err != nil {
		zap.L().Error("failed to create mining session", zap.Error(err))
		return nil, err
	}

	s.pub.Publish(userID, ws.EventMiningStarted, session)
	return session, nil
}

// GetActive returns the user's active session or nil.
func (s *Service) GetActive(ctx context.Context, userID string) (*domain.MiningSession, error) {
	session, err := s.sessions.GetActiveMiningSession(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get active session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

// Claim settles the user's active session at the current instant. Claiming
// early pays proportionally for the hours mined so far; claiming late pays
// the full six-hour yield, never more.
func (s *Service) Claim(ctx context.Context, userID string) (float64, *domain.Profile, error) {
	session, err := s.sessions.GetActiveMiningSession(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get active session", zap.Error(err))
		return 0, nil, err
	}
	if session == nil {
		return 0, nil, ErrNoActiveSession
	}

	hours := s.now().Sub(session.StartedAt).Hours()
	if max := SessionDuration.Hours(); hours > max {
		hours = max
	}

	return s.settle(ctx, session, hours, domain.TxMining, "Mining reward", ws.EventMiningClaimed)
}

// AutoClaim settles an expired session on the user's behalf, paying the full
// fixed-duration yield regardless of how long the session sat unclaimed.
// Called by the background sweep so unclaimed sessions still make progress.
func (s *Service) AutoClaim(ctx context.Context, session *domain.MiningSession) (float64, *domain.Profile, error) {
	return s.settle(ctx, session, SessionDuration.Hours(), domain.TxMiningAuto, "Auto-claimed mining reward", ws.EventMiningAutoClaimed)
}

func (s *Service) settle(ctx context.Context, session *domain.MiningSession, hours float64, txType, description, event string) (float64, *domain.Profile, error) {
	coinsEarned := hours * session.CoinsPerHour

	profile, err := s.profiles.GetProfile(ctx, session.UserID)
	if err != nil {
		zap.L().Error("failed to get profile for settlement", zap.Error(err))
		return 0, nil, err
	}
	if profile == nil {
		return 0, nil, ErrProfileNotFound
	}

	// Terminal: the session never becomes active again.
	if err := s.sessions.DeactivateMiningSession(ctx, session.ID); err != nil {
		zap.L().Error("failed to deactivate session", zap.Error(err))
		return 0, nil, err
	}

	profile.Balance += coinsEarned
	profile.TotalMined += coinsEarned
	updated, err := s.profiles.UpdateProfile(ctx, session.UserID, profile)
	if err != nil {
		zap.L().Error("failed to credit mining reward", zap.Error(err))
		return 0, nil, err
	}

	if _, err := s.ledger.Record(ctx, session.UserID, coinsEarned, txType, description); err != nil {
		return 0, nil, err
	}

	zap.L().Info("mining session settled",
		zap.String("userID", session.UserID),
		zap.String("type", txType),
		zap.Float64("coinsEarned", coinsEarned),
	)
	s.pub.Publish(session.UserID, event, map[string]any{
		"coinsEarned": coinsEarned,
		"profile":     updated,
		"session":     session,
	})
	return coinsEarned, updated, nil
}

// Progress reports display-only completion for an in-flight session. The
// numbers are advisory; settlement always recomputes from the stored
// timestamps at claim time.
func Progress(session *domain.MiningSession, now time.Time) (percent, currentCoins float64) {
	hours := now.Sub(session.StartedAt).Hours()
	percent = hours / SessionDuration.Hours() * 100
	if percent > 100 {
		percent = 100
	}
	return percent, hours * session.CoinsPerHour
}
