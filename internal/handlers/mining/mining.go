package mining

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/dto"
	"github.com/khesal1978-cpu/siku/internal/service/miningservice"
	"github.com/khesal1978-cpu/siku/pkg/utils"
)

type Service interface {
	GetActive(ctx context.Context, userID string) (*domain.MiningSession, error)
	Start(ctx context.Context, userID string) (*domain.MiningSession, error)
	Claim(ctx context.Context, userID string) (float64, *domain.Profile, error)
}

type MiningHandler struct {
	miningService Service
}

func New(miningService Service) *MiningHandler {
	return &MiningHandler{
		miningService: miningService,
	}
}

// GetSession godoc
//
//	@Summary		Get active mining session
//	@Description	Return the user's active mining session, or null when none is running.
//	@Tags			Mining
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	domain.MiningSession	"Active session or null"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/mining/{userId} [get]
func (h *MiningHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	session, err := h.miningService.GetActive(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch mining session")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// Start godoc
//
//	@Summary		Start a mining session
//	@Description	Open a six-hour mining session at a rate frozen from the current profile. Fails when a session is already running.
//	@Tags			Mining
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	domain.MiningSession	"Created session"
//	@Failure		400		{object}	utils.Response			"Session already active"
//	@Failure		404		{object}	utils.Response			"Profile not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/mining/start/{userId} [post]
func (h *MiningHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	session, err := h.miningService.Start(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, miningservice.ErrSessionAlreadyActive):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, miningservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to start mining")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, session)
}

// Claim godoc
//
//	@Summary		Claim a mining session
//	@Description	Settle the active session: early claims pay proportionally, late claims cap at the full six-hour yield.
//	@Tags			Mining
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	dto.ClaimResponseDTO	"Coins earned and updated profile"
//	@Failure		404		{object}	utils.Response			"No active session"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/mining/claim/{userId} [post]
func (h *MiningHandler) Claim(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	coinsEarned, profile, err := h.miningService.Claim(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, miningservice.ErrNoActiveSession):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, miningservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to claim mining reward")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ClaimResponseDTO{
		CoinsEarned: coinsEarned,
		Profile:     profile,
	})
}
