package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/energy"
	"github.com/khesal1978-cpu/siku/internal/service/miningservice"
	"github.com/khesal1978-cpu/siku/internal/ws"
)

type ProfileRepo interface {
	FindProfilesBelowMaxEnergy(ctx context.Context, limit uint32) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error)
}

type SessionRepo interface {
	FindActiveMiningSessions(ctx context.Context, limit uint32) ([]domain.MiningSession, error)
}

type Miner interface {
	AutoClaim(ctx context.Context, session *domain.MiningSession) (float64, *domain.Profile, error)
}

type Publisher interface {
	Publish(userID, event string, data any)
}

// inflight guards against a slow user being picked up by two overlapping
// sweeps of the same kind.
var inflight sync.Map

// Service advances energy and mining state for all users without waiting for
// a client request. Two independent timers; each user is processed in
// isolation so one failure never aborts the sweep for the rest.
type Service struct {
	profiles ProfileRepo
	sessions SessionRepo
	miner    Miner
	pub      Publisher

	energyInterval time.Duration
	miningInterval time.Duration
	limit          uint32
	workerPool     WorkerPoolI
	now            func() time.Time
}

func New(profiles ProfileRepo, sessions SessionRepo, miner Miner, pub Publisher, energyInterval, miningInterval time.Duration) *Service {
	return &Service{
		profiles:       profiles,
		sessions:       sessions,
		miner:          miner,
		pub:            pub,
		energyInterval: energyInterval,
		miningInterval: miningInterval,
		limit:          1000,
		workerPool:     NewWorkerPool(10),
		now:            time.Now,
	}
}

// Start launches the sweep loop. Both timers stop together when ctx is
// canceled.
func (s *Service) Start(ctx context.Context) {
	zap.L().Info("background sweeper started",
		zap.Duration("energyInterval", s.energyInterval),
		zap.Duration("miningInterval", s.miningInterval),
	)
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	energyTicker := time.NewTicker(s.energyInterval)
	defer energyTicker.Stop()
	miningTicker := time.NewTicker(s.miningInterval)
	defer miningTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping sweeper")
			s.workerPool.Close()
			return
		case <-energyTicker.C:
			s.sweepEnergy(ctx)
		case <-miningTicker.C:
			s.sweepMining(ctx)
		}
	}
}

func (s *Service) sweepEnergy(ctx context.Context) {
	profiles, err := s.profiles.FindProfilesBelowMaxEnergy(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch profiles for energy sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, profile := range profiles {
		profile := profile
		key := "energy:" + profile.UserID

		if _, loaded := inflight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflight.Delete(key)
				return s.processEnergy(ctx, profile)
			})
			if err != nil {
				inflight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error during energy sweep", zap.Error(err))
	}
}

func (s *Service) processEnergy(ctx context.Context, profile domain.Profile) error {
	newEnergy, newRefill, changed := energy.Accrue(profile.Energy, profile.MaxEnergy, profile.LastEnergyRefill, s.now())
	if !changed {
		return nil
	}

	profile.Energy = newEnergy
	profile.LastEnergyRefill = newRefill
	updated, err := s.profiles.UpdateProfile(ctx, profile.UserID, &profile)
	if err != nil {
		zap.L().Error("failed to persist energy sweep",
			zap.String("userID", profile.UserID),
			zap.Error(err),
		)
		return err
	}

	s.pub.Publish(profile.UserID, ws.EventProfileUpdated, updated)
	return nil
}

func (s *Service) sweepMining(ctx context.Context) {
	sessions, err := s.sessions.FindActiveMiningSessions(ctx, s.limit)
	if err != nil {
		zap.L().Error("failed to fetch sessions for mining sweep", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, session := range sessions {
		session := session
		key := "mining:" + session.UserID

		if _, loaded := inflight.LoadOrStore(key, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inflight.Delete(key)
				return s.processMining(ctx, session)
			})
			if err != nil {
				inflight.Delete(key)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("error during mining sweep", zap.Error(err))
	}
}

func (s *Service) processMining(ctx context.Context, session domain.MiningSession) error {
	now := s.now()

	if !now.Before(session.EndsAt) {
		if _, _, err := s.miner.AutoClaim(ctx, &session); err != nil {
			zap.L().Error("auto-claim failed",
				zap.String("userID", session.UserID),
				zap.String("sessionID", session.ID),
				zap.Error(err),
			)
			return err
		}
		return nil
	}

	// Display-only progress push; nothing is persisted here.
	percent, currentCoins := miningservice.Progress(&session, now)
	s.pub.Publish(session.UserID, ws.EventMiningProgress, map[string]any{
		"progress":     percent,
		"currentCoins": currentCoins,
		"session":      session,
	})
	return nil
}
