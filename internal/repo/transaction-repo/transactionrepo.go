package transactionrepo

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

const transactionColumns = `id, user_id, amount, type, description, created_at`

func scanTransaction(row pgx.Row, t *domain.Transaction) error {
	return row.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Description, &t.CreatedAt)
}

// CreateTransaction appends to the ledger. Rows are never updated afterwards.
func (r *Repository) CreateTransaction(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	query := `
        INSERT INTO transactions (user_id, amount, type, description)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + transactionColumns + `
    `
	row := r.db.QueryRow(ctx, query, tx.UserID, tx.Amount, tx.Type, tx.Description)
	var created domain.Transaction
	if err := scanTransaction(row, &created); err != nil {
		zap.L().Error("failed to create transaction", zap.Error(err))
		return nil, err
	}
	return &created, nil
}

func (r *Repository) FindTransactionsByUserID(ctx context.Context, userID string, limit uint32) ([]domain.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		zap.L().Error("failed to find transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
