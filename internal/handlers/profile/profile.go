package profile

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/pkg/utils"
)

type Service interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

type LedgerService interface {
	History(ctx context.Context, userID string) ([]domain.Transaction, error)
}

type ProfileHandler struct {
	profileService Service
	ledgerService  LedgerService
}

func New(profileService Service, ledgerService LedgerService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		ledgerService:  ledgerService,
	}
}

// GetProfile godoc
//
//	@Summary		Get user profile
//	@Description	Retrieve the user's economic state. A default profile is created on first request; pending energy regeneration is settled before the response.
//	@Tags			Profile
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{object}	domain.Profile	"Profile with settled energy"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/profile/{userId} [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	profile, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List the user's reward ledger entries, newest first.
//	@Tags			Profile
//	@Produce		json
//	@Param			userId	path		string	true	"User ID"
//	@Success		200		{array}		domain.Transaction	"Ledger entries"
//	@Failure		500		{object}	utils.Response		"Internal server error"
//	@Router			/api/transactions/{userId} [get]
func (h *ProfileHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	transactions, err := h.ledgerService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	utils.RespondWithJSON(w, http.StatusOK, transactions)
}
