package domain

import "time"

type Profile struct {
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"userId" db:"user_id"`
	Balance          float64   `json:"balance" db:"balance"`
	Energy           int       `json:"energy" db:"energy"`
	MaxEnergy        int       `json:"maxEnergy" db:"max_energy"`
	Streak           int       `json:"streak" db:"streak"`
	MiningSpeed      float64   `json:"miningSpeed" db:"mining_speed"`
	MiningMultiplier float64   `json:"miningMultiplier" db:"mining_multiplier"`
	LastEnergyRefill time.Time `json:"lastEnergyRefill" db:"last_energy_refill"`
	TotalMined       float64   `json:"totalMined" db:"total_mined"`
}

type MiningSession struct {
	ID           string    `json:"id" db:"id"`
	UserID       string    `json:"userId" db:"user_id"`
	StartedAt    time.Time `json:"startedAt" db:"started_at"`
	EndsAt       time.Time `json:"endsAt" db:"ends_at"`
	CoinsPerHour float64   `json:"coinsPerHour" db:"coins_per_hour"`
	IsActive     bool      `json:"isActive" db:"is_active"`
}

type Transaction struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"userId" db:"user_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Transaction types recorded in the reward ledger.
const (
	TxMining         = "mining"
	TxMiningAuto     = "mining_auto"
	TxSpinWheel      = "spin_wheel"
	TxScratchCard    = "scratch_card"
	TxAchievement    = "achievement"
	TxReferral       = "referral"
	TxReferralBonus  = "referral_bonus"
	TxReferralReward = "referral_reward"
	TxBoostPurchase  = "boost_purchase"
)

type Boost struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"userId" db:"user_id"`
	BoostType  string    `json:"boostType" db:"boost_type"`
	Multiplier float64   `json:"multiplier" db:"multiplier"`
	Duration   int       `json:"duration" db:"duration"`
	StartedAt  time.Time `json:"startedAt" db:"started_at"`
	ExpiresAt  time.Time `json:"expiresAt" db:"expires_at"`
	IsActive   bool      `json:"isActive" db:"is_active"`
}

type Achievement struct {
	ID             string     `json:"id" db:"id"`
	UserID         string     `json:"userId" db:"user_id"`
	AchievementKey string     `json:"achievementKey" db:"achievement_key"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	Reward         float64    `json:"reward" db:"reward"`
	IsCompleted    bool       `json:"isCompleted" db:"is_completed"`
	CompletedAt    *time.Time `json:"completedAt" db:"completed_at"`
	Progress       int        `json:"progress" db:"progress"`
	Target         int        `json:"target" db:"target"`
}

type SpinRecord struct {
	ID       string    `json:"id" db:"id"`
	UserID   string    `json:"userId" db:"user_id"`
	Reward   float64   `json:"reward" db:"reward"`
	SpinDate time.Time `json:"spinDate" db:"spin_date"`
}

type ScratchCard struct {
	ID          string     `json:"id" db:"id"`
	UserID      string     `json:"userId" db:"user_id"`
	Reward      float64    `json:"reward" db:"reward"`
	IsScratched bool       `json:"isScratched" db:"is_scratched"`
	ScratchedAt *time.Time `json:"scratchedAt" db:"scratched_at"`
	CardType    string     `json:"cardType" db:"card_type"`
}
