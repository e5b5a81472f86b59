package profilerepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

var columns = []string{"id", "user_id", "balance", "energy", "max_energy", "streak", "mining_speed", "mining_multiplier", "last_energy_refill", "total_mined"}

func TestRepository_GetProfile(t *testing.T) {
	repo, mock, _ := NewMock(t)
	refill := time.Now()

	tests := []struct {
		name      string
		userID    string
		mockSetup func()
		expectErr bool
		result    *domain.Profile
	}{
		{
			name:   "Profile exists",
			userID: "user-1",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow("profile-1", "user-1", 150.0, 80, 100, 2, 2.0, 1.0, refill, 500.0)
				mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
					WithArgs("user-1").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Profile{
				ID:               "profile-1",
				UserID:           "user-1",
				Balance:          150.0,
				Energy:           80,
				MaxEnergy:        100,
				Streak:           2,
				MiningSpeed:      2.0,
				MiningMultiplier: 1.0,
				LastEnergyRefill: refill,
				TotalMined:       500.0,
			},
		},
		{
			name:   "Profile does not exist",
			userID: "user-2",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
					WithArgs("user-2").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: "user-1",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM profiles")).
					WithArgs("user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetProfile(context.Background(), tt.userID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_CreateProfile(t *testing.T) {
	repo, mock, _ := NewMock(t)
	refill := time.Now()

	profile := &domain.Profile{
		UserID:           "user-1",
		Energy:           100,
		MaxEnergy:        100,
		MiningSpeed:      2.0,
		MiningMultiplier: 1.0,
		LastEnergyRefill: refill,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO profiles")).
		WithArgs("user-1", 0.0, 100, 100, 0, 2.0, 1.0, refill, 0.0).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("profile-1", "user-1", 0.0, 100, 100, 0, 2.0, 1.0, refill, 0.0))

	created, err := repo.CreateProfile(context.Background(), profile)
	assert.NoError(t, err)
	assert.Equal(t, "profile-1", created.ID)
	assert.Equal(t, 100, created.Energy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock, tx := NewMock(t)
	refill := time.Now()

	profile := &domain.Profile{
		UserID:           "user-1",
		Balance:          180.0,
		Energy:           85,
		MaxEnergy:        100,
		MiningSpeed:      2.0,
		MiningMultiplier: 1.0,
		LastEnergyRefill: refill,
		TotalMined:       530.0,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update succeeds",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
					WithArgs(180.0, 85, 100, 0, 2.0, 1.0, refill, 530.0, "user-1").
					WillReturnRows(pgxmock.NewRows(columns).
						AddRow("profile-1", "user-1", 180.0, 85, 100, 0, 2.0, 1.0, refill, 530.0))
			},
			expectErr: false,
		},
		{
			name: "Update fails inside the transaction",
			mockSetup: func() {
				tx.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn pg.TransactionalFn) error {
					return fn(ctx)
				})
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE profiles")).
					WithArgs(180.0, 85, 100, 0, 2.0, 1.0, refill, 530.0, "user-1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateProfile(context.Background(), "user-1", profile)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, updated)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 180.0, updated.Balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindProfilesBelowMaxEnergy(t *testing.T) {
	repo, mock, _ := NewMock(t)
	refill := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE energy < max_energy")).
		WithArgs(uint32(100)).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("profile-1", "user-1", 0.0, 40, 100, 0, 2.0, 1.0, refill, 0.0).
			AddRow("profile-2", "user-2", 10.0, 99, 100, 0, 2.0, 1.0, refill, 0.0))

	profiles, err := repo.FindProfilesBelowMaxEnergy(context.Background(), 100)
	assert.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "user-1", profiles[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
