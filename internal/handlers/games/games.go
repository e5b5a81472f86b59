package games

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/khesal1978-cpu/siku/internal/domain"
	"github.com/khesal1978-cpu/siku/internal/dto"
	"github.com/khesal1978-cpu/siku/internal/service/gameservice"
	"github.com/khesal1978-cpu/siku/pkg/utils"
)

type Service interface {
	CanSpin(ctx context.Context, userID string) (bool, *time.Time, error)
	Spin(ctx context.Context, userID string) (float64, *domain.Profile, error)
	ScratchCards(ctx context.Context, userID string) ([]domain.ScratchCard, error)
	NewScratchCard(ctx context.Context, userID string) (*domain.ScratchCard, error)
	Scratch(ctx context.Context, cardID string) (*domain.ScratchCard, *domain.Profile, error)
	Achievements(ctx context.Context, userID string) ([]domain.Achievement, error)
	ClaimAchievement(ctx context.Context, achievementID string) (*domain.Achievement, error)
	ActiveBoosts(ctx context.Context, userID string) ([]domain.Boost, error)
	ActivateBoost(ctx context.Context, userID, boostType string) (*domain.Boost, error)
}

type GamesHandler struct {
	gameService Service
}

func New(gameService Service) *GamesHandler {
	return &GamesHandler{
		gameService: gameService,
	}
}

func respondGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, gameservice.ErrProfileNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, gameservice.ErrNotEnoughEnergy),
		errors.Is(err, gameservice.ErrSpinCooldown),
		errors.Is(err, gameservice.ErrInsufficientBalance),
		errors.Is(err, gameservice.ErrInvalidBoostType),
		errors.Is(err, gameservice.ErrCardUnavailable),
		errors.Is(err, gameservice.ErrAchievementUnavailable):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// CanSpin godoc
//
//	@Summary	Check spin availability
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.CanSpinResponseDTO
//	@Failure	500		{object}	utils.Response
//	@Router		/api/spin/can-spin/{userId} [get]
func (h *GamesHandler) CanSpin(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	canSpin, next, err := h.gameService.CanSpin(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to check spin status")
		return
	}

	resp := dto.CanSpinResponseDTO{CanSpin: canSpin}
	if next != nil {
		resp.NextSpinTime = next.Format(time.RFC3339)
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Spin godoc
//
//	@Summary	Spin the wheel
//	@Description	Spend 15 energy on the daily wheel spin.
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	dto.SpinResponseDTO
//	@Failure	400		{object}	utils.Response	"Not enough energy or spin on cooldown"
//	@Failure	404		{object}	utils.Response	"Profile not found"
//	@Failure	500		{object}	utils.Response
//	@Router		/api/spin/{userId} [post]
func (h *GamesHandler) Spin(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	reward, profile, err := h.gameService.Spin(r.Context(), userID)
	if err != nil {
		respondGameError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.SpinResponseDTO{Reward: reward, Profile: profile})
}

// GetScratchCards godoc
//
//	@Summary	List scratch cards
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	domain.ScratchCard
//	@Failure	500		{object}	utils.Response
//	@Router		/api/scratch-cards/{userId} [get]
func (h *GamesHandler) GetScratchCards(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	cards, err := h.gameService.ScratchCards(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch scratch cards")
		return
	}
	if cards == nil {
		cards = []domain.ScratchCard{}
	}
	utils.RespondWithJSON(w, http.StatusOK, cards)
}

// NewScratchCard godoc
//
//	@Summary	Buy a scratch card
//	@Description	Spend 10 energy on a fresh scratch card.
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path		string	true	"User ID"
//	@Success	200		{object}	domain.ScratchCard
//	@Failure	400		{object}	utils.Response	"Not enough energy"
//	@Failure	404		{object}	utils.Response	"Profile not found"
//	@Failure	500		{object}	utils.Response
//	@Router		/api/scratch-card/new/{userId} [post]
func (h *GamesHandler) NewScratchCard(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	card, err := h.gameService.NewScratchCard(r.Context(), userID)
	if err != nil {
		respondGameError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, card)
}

// Scratch godoc
//
//	@Summary	Scratch a card
//	@Description	Spend 5 energy to reveal the card's prize and credit it.
//	@Tags		Games
//	@Produce	json
//	@Param		cardId	path		string	true	"Card ID"
//	@Success	200		{object}	dto.ScratchResponseDTO
//	@Failure	400		{object}	utils.Response	"Card unavailable or not enough energy"
//	@Failure	500		{object}	utils.Response
//	@Router		/api/scratch-card/{cardId} [post]
func (h *GamesHandler) Scratch(w http.ResponseWriter, r *http.Request) {
	cardID := chi.URLParam(r, "cardId")

	card, profile, err := h.gameService.Scratch(r.Context(), cardID)
	if err != nil {
		respondGameError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ScratchResponseDTO{Card: card, Profile: profile})
}

// GetAchievements godoc
//
//	@Summary	List achievements
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	domain.Achievement
//	@Failure	500		{object}	utils.Response
//	@Router		/api/achievements/{userId} [get]
func (h *GamesHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	achievements, err := h.gameService.Achievements(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}
	if achievements == nil {
		achievements = []domain.Achievement{}
	}
	utils.RespondWithJSON(w, http.StatusOK, achievements)
}

// ClaimAchievement godoc
//
//	@Summary	Claim an achievement reward
//	@Tags		Games
//	@Produce	json
//	@Param		achievementId	path		string	true	"Achievement ID"
//	@Success	200				{object}	domain.Achievement
//	@Failure	400				{object}	utils.Response	"Achievement unavailable"
//	@Failure	500				{object}	utils.Response
//	@Router		/api/achievement/{achievementId}/claim [post]
func (h *GamesHandler) ClaimAchievement(w http.ResponseWriter, r *http.Request) {
	achievementID := chi.URLParam(r, "achievementId")

	achievement, err := h.gameService.ClaimAchievement(r.Context(), achievementID)
	if err != nil {
		respondGameError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, achievement)
}

// GetBoosts godoc
//
//	@Summary	List active boosts
//	@Tags		Games
//	@Produce	json
//	@Param		userId	path	string	true	"User ID"
//	@Success	200		{array}	domain.Boost
//	@Failure	500		{object}	utils.Response
//	@Router		/api/boosts/{userId} [get]
func (h *GamesHandler) GetBoosts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	boosts, err := h.gameService.ActiveBoosts(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch boosts")
		return
	}
	if boosts == nil {
		boosts = []domain.Boost{}
	}
	utils.RespondWithJSON(w, http.StatusOK, boosts)
}

// ActivateBoost godoc
//
//	@Summary	Purchase and activate a boost
//	@Description	Debit balance and energy, compound the mining multiplier for future sessions.
//	@Tags		Games
//	@Accept		json
//	@Produce	json
//	@Param		userId	path		string						true	"User ID"
//	@Param		request	body		dto.BoostActivateRequestDTO	true	"Boost type"
//	@Success	200		{object}	domain.Boost
//	@Failure	400		{object}	utils.Response	"Invalid type, insufficient balance or energy"
//	@Failure	404		{object}	utils.Response	"Profile not found"
//	@Failure	500		{object}	utils.Response
//	@Router		/api/boost/activate/{userId} [post]
func (h *GamesHandler) ActivateBoost(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	var req dto.BoostActivateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	boost, err := h.gameService.ActivateBoost(r.Context(), userID, req.BoostType)
	if err != nil {
		respondGameError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, boost)
}
