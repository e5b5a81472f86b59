package miningservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/khesal1978-cpu/siku/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockSessionRepo, *MockLedger, *MockPublisher) {
	ctrl := gomock.NewController(t)
	profiles := NewMockProfileRepo(ctrl)
	sessions := NewMockSessionRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	pub := NewMockPublisher(ctrl)
	service := New(profiles, sessions, ledger, pub)
	return service, profiles, sessions, ledger, pub
}

func TestStart(t *testing.T) {
	service, profiles, sessions, _, pub := NewMock(t)

	startedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return startedAt }

	tests := []struct {
		name            string
		userID          string
		prepareMock     func()
		expectedSession *domain.MiningSession
		expectedError   error
	}{
		{
			name:   "Profile not found",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedSession: nil,
			expectedError:   ErrProfileNotFound,
		},
		{
			name:   "Session already active",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(&domain.MiningSession{UserID: "user-1", IsActive: true}, nil)
			},
			expectedSession: nil,
			expectedError:   ErrSessionAlreadyActive,
		},
		{
			name:   "Rate is frozen from the profile at start",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{
					UserID:           "user-1",
					MiningSpeed:      2,
					MiningMultiplier: 2.5,
				}, nil)
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(nil, nil)
				sessions.EXPECT().CreateMiningSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, session *domain.MiningSession) (*domain.MiningSession, error) {
						session.ID = "session-1"
						return session, nil
					})
				pub.EXPECT().Publish("user-1", "mining_started", gomock.Any())
			},
			expectedSession: &domain.MiningSession{
				ID:           "session-1",
				UserID:       "user-1",
				StartedAt:    startedAt,
				EndsAt:       startedAt.Add(6 * time.Hour),
				CoinsPerHour: 5,
				IsActive:     true,
			},
			expectedError: nil,
		},
		{
			name:   "Cannot check for active session",
			userID: "user-1",
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(nil, errors.New("some error"))
			},
			expectedSession: nil,
			expectedError:   errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			session, err := service.Start(context.Background(), tt.userID)
			assert.Equal(t, tt.expectedSession, session)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestClaim(t *testing.T) {
	now := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		prepareMock   func(profiles *MockProfileRepo, sessions *MockSessionRepo, ledger *MockLedger, pub *MockPublisher)
		expectedCoins float64
		expectedError error
	}{
		{
			name: "No active session",
			prepareMock: func(_ *MockProfileRepo, sessions *MockSessionRepo, _ *MockLedger, _ *MockPublisher) {
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedCoins: 0,
			expectedError: ErrNoActiveSession,
		},
		{
			name: "Early claim pays for elapsed hours",
			prepareMock: func(profiles *MockProfileRepo, sessions *MockSessionRepo, ledger *MockLedger, pub *MockPublisher) {
				session := &domain.MiningSession{
					ID:           "session-1",
					UserID:       "user-1",
					StartedAt:    now.Add(-3 * time.Hour),
					EndsAt:       now.Add(3 * time.Hour),
					CoinsPerHour: 4,
					IsActive:     true,
				}
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(session, nil)
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1", Balance: 100, TotalMined: 10}, nil)
				sessions.EXPECT().DeactivateMiningSession(gomock.Any(), "session-1").Return(nil)
				profiles.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, profile *domain.Profile) (*domain.Profile, error) {
						assert.Equal(t, 112.0, profile.Balance)
						assert.Equal(t, 22.0, profile.TotalMined)
						return profile, nil
					})
				ledger.EXPECT().Record(gomock.Any(), "user-1", 12.0, domain.TxMining, "Mining reward").Return(&domain.Transaction{}, nil)
				pub.EXPECT().Publish("user-1", "mining_claimed", gomock.Any())
			},
			expectedCoins: 12,
			expectedError: nil,
		},
		{
			name: "Late claim is capped at the session duration",
			prepareMock: func(profiles *MockProfileRepo, sessions *MockSessionRepo, ledger *MockLedger, pub *MockPublisher) {
				session := &domain.MiningSession{
					ID:           "session-2",
					UserID:       "user-1",
					StartedAt:    now.Add(-10 * time.Hour),
					EndsAt:       now.Add(-4 * time.Hour),
					CoinsPerHour: 4,
					IsActive:     true,
				}
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(session, nil)
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)
				sessions.EXPECT().DeactivateMiningSession(gomock.Any(), "session-2").Return(nil)
				profiles.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, profile *domain.Profile) (*domain.Profile, error) {
						return profile, nil
					})
				ledger.EXPECT().Record(gomock.Any(), "user-1", 24.0, domain.TxMining, "Mining reward").Return(&domain.Transaction{}, nil)
				pub.EXPECT().Publish("user-1", "mining_claimed", gomock.Any())
			},
			expectedCoins: 24,
			expectedError: nil,
		},
		{
			name: "Deactivation failure aborts settlement",
			prepareMock: func(profiles *MockProfileRepo, sessions *MockSessionRepo, _ *MockLedger, _ *MockPublisher) {
				session := &domain.MiningSession{
					ID:           "session-3",
					UserID:       "user-1",
					StartedAt:    now.Add(-time.Hour),
					CoinsPerHour: 4,
					IsActive:     true,
				}
				sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(session, nil)
				profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)
				sessions.EXPECT().DeactivateMiningSession(gomock.Any(), "session-3").Return(errors.New("some error"))
			},
			expectedCoins: 0,
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, profiles, sessions, ledger, pub := NewMock(t)
			service.now = func() time.Time { return now }
			tt.prepareMock(profiles, sessions, ledger, pub)

			coins, _, err := service.Claim(context.Background(), "user-1")
			assert.Equal(t, tt.expectedCoins, coins)
			assert.Equal(t, tt.expectedError, err)
		})
	}
}

func TestAutoClaim(t *testing.T) {
	service, profiles, sessions, ledger, pub := NewMock(t)

	session := &domain.MiningSession{
		ID:           "session-1",
		UserID:       "user-1",
		StartedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC),
		CoinsPerHour: 10,
		IsActive:     true,
	}

	profiles.EXPECT().GetProfile(gomock.Any(), "user-1").Return(&domain.Profile{UserID: "user-1"}, nil)
	sessions.EXPECT().DeactivateMiningSession(gomock.Any(), "session-1").Return(nil)
	profiles.EXPECT().UpdateProfile(gomock.Any(), "user-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, profile *domain.Profile) (*domain.Profile, error) {
			return profile, nil
		})
	ledger.EXPECT().Record(gomock.Any(), "user-1", 60.0, domain.TxMiningAuto, "Auto-claimed mining reward").Return(&domain.Transaction{}, nil)
	pub.EXPECT().Publish("user-1", "mining_auto_claimed", gomock.Any())

	coins, profile, err := service.AutoClaim(context.Background(), session)
	assert.NoError(t, err)
	assert.Equal(t, 60.0, coins)
	assert.Equal(t, 60.0, profile.Balance)
}

func TestGetActive(t *testing.T) {
	service, _, sessions, _, _ := NewMock(t)

	sessions.EXPECT().GetActiveMiningSession(gomock.Any(), "user-1").Return(nil, nil)
	session, err := service.GetActive(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestProgress(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	session := &domain.MiningSession{StartedAt: start, CoinsPerHour: 10}

	percent, coins := Progress(session, start.Add(3*time.Hour))
	assert.Equal(t, 50.0, percent)
	assert.Equal(t, 30.0, coins)

	percent, _ = Progress(session, start.Add(12*time.Hour))
	assert.Equal(t, 100.0, percent)
}
