package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/khesal1978-cpu/siku/internal/domain"
)

type Repo interface {
	CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	FindTransactionsByUserID(ctx context.Context, userID string, limit uint32) ([]domain.Transaction, error)
}

const historyLimit = 100

// Service is the reward ledger: an append-only record of every
// balance-affecting event, kept for audit and history display.
type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, userID string, amount float64, txType, description string) (*domain.Transaction, error) {
	tx, err := s.repo.CreateTransaction(ctx, &domain.Transaction{
		UserID:      userID,
		Amount:      amount,
		Type:        txType,
		Description: description,
	})
	if err != nil {
		zap.L().Error("failed to record ledger entry",
			zap.String("userID", userID),
			zap.String("type", txType),
			zap.Error(err),
		)
		return nil, err
	}
	return tx, nil
}

func (s *Service) History(ctx context.Context, userID string) ([]domain.Transaction, error) {
	transactions, err := s.repo.FindTransactionsByUserID(ctx, userID, historyLimit)
	if err != nil {
		zap.L().Error("failed to fetch transaction history", zap.Error(err))
		return nil, err
	}
	return transactions, nil
}
