package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/khesal1978-cpu/siku/internal/domain"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService, *MockLedgerService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	ledger := NewMockLedgerService(ctrl)
	handler := New(service, ledger)
	return handler, service, ledger
}

func newRequest(method, target, userID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetProfile(t *testing.T) {
	handler, service, _ := NewMock(t)

	profile := &domain.Profile{
		ID:               "profile-1",
		UserID:           "user-1",
		Balance:          150,
		Energy:           80,
		MaxEnergy:        100,
		MiningSpeed:      2,
		MiningMultiplier: 1,
		LastEnergyRefill: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *domain.Profile
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "user-1").Return(profile, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: profile,
		},
		{
			name: "Service failure",
			prepareMock: func() {
				service.EXPECT().GetProfile(gomock.Any(), "user-1").Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodGet, "/api/profile/user-1", "user-1")
			w := httptest.NewRecorder()

			handler.GetProfile(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var got domain.Profile
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}

func TestGetTransactions(t *testing.T) {
	handler, _, ledger := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "History returned newest first",
			prepareMock: func() {
				ledger.EXPECT().History(gomock.Any(), "user-1").Return([]domain.Transaction{
					{ID: "tx-2", UserID: "user-1", Amount: 30, Type: domain.TxMining},
					{ID: "tx-1", UserID: "user-1", Amount: 100, Type: domain.TxSpinWheel},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Empty history serializes as a list",
			prepareMock: func() {
				ledger.EXPECT().History(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "[]\n",
		},
		{
			name: "Service failure",
			prepareMock: func() {
				ledger.EXPECT().History(gomock.Any(), "user-1").Return(nil, errors.New("some error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodGet, "/api/transactions/user-1", "user-1")
			w := httptest.NewRecorder()

			handler.GetTransactions(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}
