package moderation

import (
	"context"
	"sync"

	"github.com/AegisWorks/AegisBotGo/pkg/models"
)

// WarningRepository is the durable storage behind the Store. The database
// implementation queues writes while offline, so a returned error means
// "surfaced, will be retried", never "lost".
type WarningRepository interface {
	SaveCount(ctx context.Context, userID string, count int) error
	LoadAll(ctx context.Context) ([]models.WarningRecord, error)
}

// Store holds the warning counter per user. All mutations happen under a
// single mutex, which is held across the write-through persist so storage
// sees updates for a user in order.
type Store struct {
	mu     sync.Mutex
	counts map[string]int
	order  []string
	repo   WarningRepository
}

// NewStore creates an empty Store backed by repo
func NewStore(repo WarningRepository) *Store {
	return &Store{
		counts: make(map[string]int),
		repo:   repo,
	}
}

// Load hydrates the in-memory state from storage. Call once at startup,
// before the store is shared.
func (s *Store) Load(ctx context.Context) error {
	records, err := s.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		if _, ok := s.counts[rec.UserID]; !ok {
			s.order = append(s.order, rec.UserID)
		}
		s.counts[rec.UserID] = rec.Count
	}
	return nil
}

// Increment adds one warning to a user, persists the new count and returns
// it. The count is valid even when the persist error is non-nil; the caller
// decides how to surface the failure.
func (s *Store) Increment(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counts[userID]; !ok {
		s.order = append(s.order, userID)
	}
	s.counts[userID]++
	count := s.counts[userID]

	return count, s.repo.SaveCount(ctx, userID, count)
}

// Get returns the current warning count for a user, zero when unknown
func (s *Store) Get(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[userID]
}

// Reset zeroes the warning count for a user and persists the change.
// Records are never deleted, only reset.
func (s *Store) Reset(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.counts[userID]; !ok {
		s.order = append(s.order, userID)
	}
	s.counts[userID] = 0

	return s.repo.SaveCount(ctx, userID, 0)
}

// List returns all users with at least one warning, in record-creation
// order. Zero-count records carry no information and are excluded.
func (s *Store) List() []models.WarningRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.WarningRecord
	for _, userID := range s.order {
		if count := s.counts[userID]; count >= 1 {
			out = append(out, models.WarningRecord{UserID: userID, Count: count})
		}
	}
	return out
}

// WarnedUsers returns how many users currently hold at least one warning
func (s *Store) WarnedUsers() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, count := range s.counts {
		if count >= 1 {
			n++
		}
	}
	return n
}
