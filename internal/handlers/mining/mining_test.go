package mining

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/dto"
	"github.com/khesal1978-cpu/siku/internal/service/miningservice"
)

func NewMock(t *testing.T) (*MiningHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func newRequest(method, target, userID string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("userId", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetSession(t *testing.T) {
	handler, service := NewMock(t)

	session := &domain.MiningSession{
		ID:           "session-1",
		UserID:       "user-1",
		StartedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		EndsAt:       time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		CoinsPerHour: 10,
		IsActive:     true,
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Active session found",
			prepareMock: func() {
				service.EXPECT().GetActive(gomock.Any(), "user-1").Return(session, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No session returns null",
			prepareMock: func() {
				service.EXPECT().GetActive(gomock.Any(), "user-1").Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: "null\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodGet, "/api/mining/user-1", "user-1")
			w := httptest.NewRecorder()

			handler.GetSession(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				assert.Equal(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestStart(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Session started",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), "user-1").Return(&domain.MiningSession{ID: "session-1", UserID: "user-1", IsActive: true}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Session already active",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), "user-1").Return(nil, miningservice.ErrSessionAlreadyActive)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Profile not found",
			prepareMock: func() {
				service.EXPECT().Start(gomock.Any(), "user-1").Return(nil, miningservice.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodPost, "/api/mining/start/user-1", "user-1")
			w := httptest.NewRecorder()

			handler.Start(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestClaim(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody *dto.ClaimResponseDTO
	}{
		{
			name: "Claim pays out",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), "user-1").Return(30.0, &domain.Profile{UserID: "user-1", Balance: 30}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &dto.ClaimResponseDTO{
				CoinsEarned: 30,
				Profile:     &domain.Profile{UserID: "user-1", Balance: 30},
			},
		},
		{
			name: "No active session",
			prepareMock: func() {
				service.EXPECT().Claim(gomock.Any(), "user-1").Return(0.0, nil, miningservice.ErrNoActiveSession)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := newRequest(http.MethodPost, "/api/mining/claim/user-1", "user-1")
			w := httptest.NewRecorder()

			handler.Claim(w, req)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != nil {
				var got dto.ClaimResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, *tt.expectedBody, got)
			}
		})
	}
}
