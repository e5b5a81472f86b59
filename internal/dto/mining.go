package dto

import "github.com/khesal1978-cpu/siku/internal/domain"

type ClaimResponseDTO struct {
	CoinsEarned float64         `json:"coinsEarned" example:"30"`
	Profile     *domain.Profile `json:"profile"`
}
