package dto

import "github.com/khesal1978-cpu/siku/internal/domain"

type CanSpinResponseDTO struct {
	CanSpin      bool   `json:"canSpin" example:"true"`
	NextSpinTime string `json:"nextSpinTime,omitempty" example:"2025-06-01T12:00:00Z"`
}

type SpinResponseDTO struct {
	Reward  float64         `json:"reward" example:"200"`
	Profile *domain.Profile `json:"profile"`
}

type ScratchResponseDTO struct {
	Card    *domain.ScratchCard `json:"card"`
	Profile *domain.Profile     `json:"profile"`
}

type BoostActivateRequestDTO struct {
	BoostType string `json:"boostType" example:"2x_speed"`
}
