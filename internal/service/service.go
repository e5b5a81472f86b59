package service

import (
	"context"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/service/gameservice"
	"github.com/khesal1978-cpu/siku/internal/service/ledgerservice"
	"github.com/khesal1978-cpu/siku/internal/service/miningservice"
	"github.com/khesal1978-cpu/siku/internal/service/profileservice"
)

// Storage is the full persistence surface. Two implementations exist: the
// Postgres-backed repo.Store and the in-memory inmemory.Store; which one runs
// is decided at startup.
type Storage interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, profile *domain.Profile) (*domain.Profile, error)
	FindProfilesBelowMaxEnergy(ctx context.Context, limit uint32) ([]domain.Profile, error)

	GetActiveMiningSession(ctx context.Context, userID string) (*domain.MiningSession, error)
	CreateMiningSession(ctx context.Context, session *domain.MiningSession) (*domain.MiningSession, error)
	DeactivateMiningSession(ctx context.Context, id string) error
	FindActiveMiningSessions(ctx context.Context, limit uint32) ([]domain.MiningSession, error)

	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindTransactionsByUserID(ctx context.Context, userID string, limit uint32) ([]domain.Transaction, error)

	CreateBoost(ctx context.Context, boost *domain.Boost) (*domain.Boost, error)
	FindBoostsByUserID(ctx context.Context, userID string) ([]domain.Boost, error)
	DeactivateBoost(ctx context.Context, id string) error

	CreateSpinRecord(ctx context.Context, record *domain.SpinRecord) (*domain.SpinRecord, error)
	GetLastSpinRecord(ctx context.Context, userID string) (*domain.SpinRecord, error)

	CreateScratchCard(ctx context.Context, card *domain.ScratchCard) (*domain.ScratchCard, error)
	GetScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error)
	FindScratchCardsByUserID(ctx context.Context, userID string) ([]domain.ScratchCard, error)
	ScratchCard(ctx context.Context, id string) (*domain.ScratchCard, error)

	CreateAchievement(ctx context.Context, achievement *domain.Achievement) (*domain.Achievement, error)
	FindAchievementsByUserID(ctx context.Context, userID string) ([]domain.Achievement, error)
	CompleteAchievement(ctx context.Context, id string) (*domain.Achievement, error)
}

type Publisher interface {
	Publish(userID, event string, data any)
}

type Services struct {
	ProfileService *profileservice.Service
	MiningService  *miningservice.Service
	LedgerService  *ledgerservice.Service
	GameService    *gameservice.Service
}

func New(store Storage, pub Publisher) *Services {
	ledgerService := ledgerservice.New(store)
	profileService := profileservice.New(store, store)
	miningService := miningservice.New(store, store, ledgerService, pub)
	gameService := gameservice.New(store, store, store, ledgerService, pub)

	return &Services{
		ProfileService: profileService,
		MiningService:  miningService,
		LedgerService:  ledgerService,
		GameService:    gameService,
	}
}
