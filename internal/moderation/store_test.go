package moderation

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AegisWorks/AegisBotGo/pkg/models"
)

// fakeRepo records writes and can be told to fail
type fakeRepo struct {
	mu      sync.Mutex
	saved   map[string]int
	saves   int
	failAll bool
	records []models.WarningRecord
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{saved: make(map[string]int)}
}

func (r *fakeRepo) SaveCount(_ context.Context, userID string, count int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failAll {
		return errors.New("storage down")
	}
	if r.saved == nil {
		r.saved = make(map[string]int)
	}
	r.saved[userID] = count
	r.saves++
	return nil
}

func (r *fakeRepo) LoadAll(_ context.Context) ([]models.WarningRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.records, nil
}

func TestStoreGetAbsent(t *testing.T) {
	store := NewStore(newFakeRepo())

	if got := store.Get("nobody"); got != 0 {
		t.Errorf("Get(absent) = %d, want 0", got)
	}
}

func TestStoreIncrement(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo)
	ctx := context.Background()

	count, err := store.Increment(ctx, "u1")
	if err != nil {
		t.Fatalf("Increment returned error: %v", err)
	}
	if count != 1 {
		t.Errorf("first Increment = %d, want 1", count)
	}

	count, _ = store.Increment(ctx, "u1")
	if count != 2 {
		t.Errorf("second Increment = %d, want 2", count)
	}

	if store.Get("u1") != 2 {
		t.Errorf("Get after increments = %d, want 2", store.Get("u1"))
	}

	// Write-through: every mutation persisted with the new count
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.saves != 2 {
		t.Errorf("persisted writes = %d, want 2", repo.saves)
	}
	if repo.saved["u1"] != 2 {
		t.Errorf("persisted count = %d, want 2", repo.saved["u1"])
	}
}

func TestStoreReset(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo)
	ctx := context.Background()

	store.Increment(ctx, "u1")
	store.Increment(ctx, "u1")

	if err := store.Reset(ctx, "u1"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if store.Get("u1") != 0 {
		t.Errorf("Get after Reset = %d, want 0", store.Get("u1"))
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.saved["u1"] != 0 {
		t.Errorf("persisted count after Reset = %d, want 0", repo.saved["u1"])
	}
}

func TestStoreResetUnknownUserCreatesRecord(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo)

	if err := store.Reset(context.Background(), "new"); err != nil {
		t.Fatalf("Reset returned error: %v", err)
	}
	if store.Get("new") != 0 {
		t.Errorf("Get after Reset = %d, want 0", store.Get("new"))
	}
}

func TestStorePersistenceFailureKeepsMemory(t *testing.T) {
	repo := newFakeRepo()
	repo.failAll = true
	store := NewStore(repo)

	count, err := store.Increment(context.Background(), "u1")
	if err == nil {
		t.Fatal("expected persist error to be surfaced")
	}
	if count != 1 {
		t.Errorf("Increment under storage failure = %d, want 1", count)
	}
	if store.Get("u1") != 1 {
		t.Errorf("in-memory count lost on persist failure: got %d, want 1", store.Get("u1"))
	}
}

func TestStoreList(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	store.Increment(ctx, "a")
	store.Increment(ctx, "a")
	store.Reset(ctx, "b")
	for i := 0; i < 5; i++ {
		store.Increment(ctx, "c")
	}

	list := store.List()
	if len(list) != 2 {
		t.Fatalf("List length = %d, want 2 (zero-count records excluded)", len(list))
	}

	// Insertion order: a was created before c
	if list[0].UserID != "a" || list[0].Count != 2 {
		t.Errorf("List[0] = %+v, want {a 2}", list[0])
	}
	if list[1].UserID != "c" || list[1].Count != 5 {
		t.Errorf("List[1] = %+v, want {c 5}", list[1])
	}
}

func TestStoreListDoesNotMutate(t *testing.T) {
	store := NewStore(newFakeRepo())
	store.Increment(context.Background(), "a")

	store.List()
	store.List()

	if store.Get("a") != 1 {
		t.Errorf("List mutated state: Get = %d, want 1", store.Get("a"))
	}
}

func TestStoreConcurrentIncrements(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			store.Increment(ctx, "hot")
		}()
	}
	wg.Wait()

	if got := store.Get("hot"); got != n {
		t.Errorf("count after %d concurrent increments = %d, want %d", n, got, n)
	}
}

func TestStoreLoad(t *testing.T) {
	repo := newFakeRepo()
	repo.records = []models.WarningRecord{
		{UserID: "a", Count: 2, CreatedAt: 100},
		{UserID: "b", Count: 4, CreatedAt: 200},
	}
	store := NewStore(repo)

	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if store.Get("a") != 2 || store.Get("b") != 4 {
		t.Errorf("hydrated counts = %d/%d, want 2/4", store.Get("a"), store.Get("b"))
	}

	list := store.List()
	if len(list) != 2 || list[0].UserID != "a" || list[1].UserID != "b" {
		t.Errorf("hydrated order wrong: %+v", list)
	}

	if store.WarnedUsers() != 2 {
		t.Errorf("WarnedUsers = %d, want 2", store.WarnedUsers())
	}
}
