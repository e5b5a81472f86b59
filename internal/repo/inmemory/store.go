package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/khesal1978-cpu/siku/internal/domain"
)

// Store keeps all records in process memory. It backs tests and DSN-less
// deployments; the Postgres store in internal/repo is the durable twin.
type Store struct {
	mu           sync.RWMutex
	nextID       int
	profiles     map[string]*domain.Profile
	sessions     map[string]*domain.MiningSession
	transactions []domain.Transaction
	boosts       map[string]*domain.Boost
	achievements map[string]*domain.Achievement
	spinRecords  []domain.SpinRecord
	scratchCards map[string]*domain.ScratchCard
}

func New() *Store {
	return &Store{
		profiles:     make(map[string]*domain.Profile),
		sessions:     make(map[string]*domain.MiningSession),
		boosts:       make(map[string]*domain.Boost),
		achievements: make(map[string]*domain.Achievement),
		scratchCards: make(map[string]*domain.ScratchCard),
	}
}

func (s *Store) newID() string {
	s.nextID++
	return fmt.Sprintf("mem-%d", s.nextID)
}

func (s *Store) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, nil
	}
	copy := *p
	return &copy, nil
}

func (s *Store) CreateProfile(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.UserID]; ok {
		return nil, fmt.Errorf("profile already exists for user %s", profile.UserID)
	}
	created := *profile
	created.ID = s.newID()
	s.profiles[profile.UserID] = &created
	out := created
	return &out, nil
}

func (s *Store) UpdateProfile(_ context.Context, userID string, profile *domain.Profile) (*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.profiles[userID]
	if !ok {
		return nil, fmt.Errorf("no profile for user %s", userID)
	}
	updated := *profile
	updated.ID = existing.ID
	updated.UserID = userID
	s.profiles[userID] = &updated
	out := updated
	return &out, nil
}

func (s *Store) FindProfilesBelowMaxEnergy(_ context.Context, limit uint32) ([]domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var profiles []domain.Profile
	for _, p := range s.profiles {
		if p.Energy < p.MaxEnergy {
			profiles = append(profiles, *p)
			if uint32(len(profiles)) >= limit {
				break
			}
		}
	}
	return profiles, nil
}

func (s *Store) GetActiveMiningSession(_ context.Context, userID string) (*domain.MiningSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sess := range s.sessions {
		if sess.UserID == userID && sess.IsActive {
			copy := *sess
			return &copy, nil
		}
	}
	return nil, nil
}

func (s *Store) CreateMiningSession(_ context.Context, session *domain.MiningSession) (*domain.MiningSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *session
	created.ID = s.newID()
	s.sessions[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) DeactivateMiningSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.IsActive = false
	}
	return nil
}

func (s *Store) FindActiveMiningSessions(_ context.Context, limit uint32) ([]domain.MiningSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var sessions []domain.MiningSession
	for _, sess := range s.sessions {
		if sess.IsActive {
			sessions = append(sessions, *sess)
			if uint32(len(sessions)) >= limit {
				break
			}
		}
	}
	return sessions, nil
}

func (s *Store) CreateTransaction(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *tx
	created.ID = s.newID()
	created.CreatedAt = time.Now()
	s.transactions = append(s.transactions, created)
	out := created
	return &out, nil
}

func (s *Store) FindTransactionsByUserID(_ context.Context, userID string, limit uint32) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var transactions []domain.Transaction
	for i := len(s.transactions) - 1; i >= 0; i-- {
		if s.transactions[i].UserID == userID {
			transactions = append(transactions, s.transactions[i])
			if uint32(len(transactions)) >= limit {
				break
			}
		}
	}
	return transactions, nil
}

func (s *Store) CreateBoost(_ context.Context, boost *domain.Boost) (*domain.Boost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *boost
	created.ID = s.newID()
	s.boosts[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) FindBoostsByUserID(_ context.Context, userID string) ([]domain.Boost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var boosts []domain.Boost
	for _, b := range s.boosts {
		if b.UserID == userID {
			boosts = append(boosts, *b)
		}
	}
	return boosts, nil
}

func (s *Store) DeactivateBoost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.boosts[id]; ok {
		b.IsActive = false
	}
	return nil
}

func (s *Store) CreateSpinRecord(_ context.Context, record *domain.SpinRecord) (*domain.SpinRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *record
	created.ID = s.newID()
	created.SpinDate = time.Now()
	s.spinRecords = append(s.spinRecords, created)
	out := created
	return &out, nil
}

func (s *Store) GetLastSpinRecord(_ context.Context, userID string) (*domain.SpinRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var last *domain.SpinRecord
	for i := range s.spinRecords {
		r := &s.spinRecords[i]
		if r.UserID != userID {
			continue
		}
		if last == nil || r.SpinDate.After(last.SpinDate) {
			last = r
		}
	}
	if last == nil {
		return nil, nil
	}
	copy := *last
	return &copy, nil
}

func (s *Store) CreateScratchCard(_ context.Context, card *domain.ScratchCard) (*domain.ScratchCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *card
	created.ID = s.newID()
	s.scratchCards[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) GetScratchCard(_ context.Context, id string) (*domain.ScratchCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.scratchCards[id]
	if !ok {
		return nil, nil
	}
	copy := *c
	return &copy, nil
}

func (s *Store) FindScratchCardsByUserID(_ context.Context, userID string) ([]domain.ScratchCard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var cards []domain.ScratchCard
	for _, c := range s.scratchCards {
		if c.UserID == userID {
			cards = append(cards, *c)
		}
	}
	return cards, nil
}

func (s *Store) ScratchCard(_ context.Context, id string) (*domain.ScratchCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.scratchCards[id]
	if !ok || c.IsScratched {
		return nil, nil
	}
	now := time.Now()
	c.IsScratched = true
	c.ScratchedAt = &now
	copy := *c
	return &copy, nil
}

func (s *Store) CreateAchievement(_ context.Context, achievement *domain.Achievement) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created := *achievement
	created.ID = s.newID()
	s.achievements[created.ID] = &created
	out := created
	return &out, nil
}

func (s *Store) FindAchievementsByUserID(_ context.Context, userID string) ([]domain.Achievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var achievements []domain.Achievement
	for _, a := range s.achievements {
		if a.UserID == userID {
			achievements = append(achievements, *a)
		}
	}
	return achievements, nil
}

func (s *Store) CompleteAchievement(_ context.Context, id string) (*domain.Achievement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.achievements[id]
	if !ok || a.IsCompleted {
		return nil, nil
	}
	now := time.Now()
	a.IsCompleted = true
	a.CompletedAt = &now
	copy := *a
	return &copy, nil
}
