package moderation

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeRoles counts grant/revoke calls and can fail grants
type fakeRoles struct {
	mu        sync.Mutex
	grants    int
	revokes   int
	failGrant bool
}

func (f *fakeRoles) GrantMute(Subject) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGrant {
		return errors.New("missing permissions")
	}
	f.grants++
	return nil
}

func (f *fakeRoles) RevokeMute(Subject) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revokes++
	return nil
}

func (f *fakeRoles) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.grants, f.revokes
}

// fakeNotify records notification calls
type fakeNotify struct {
	mu            sync.Mutex
	warnings      int
	autoMutes     int
	autoUnmutes   int
	manualUnmutes int
}

func (f *fakeNotify) WarningRecorded(Subject, string, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.warnings++
}

func (f *fakeNotify) AutoMuteApplied(Subject) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoMutes++
}

func (f *fakeNotify) AutoUnmuteApplied(Subject) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoUnmutes++
}

func (f *fakeNotify) ManualUnmuteApplied(Subject) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manualUnmutes++
}

func (f *fakeNotify) snapshot() (int, int, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.warnings, f.autoMutes, f.autoUnmutes, f.manualUnmutes
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

var testSubject = Subject{GuildID: "g1", UserID: "u1"}

func TestSchedulerApplyGrantsImmediately(t *testing.T) {
	roles := &fakeRoles{}
	sched := NewScheduler(roles, &fakeNotify{})

	task, err := sched.Apply(testSubject, time.Hour)
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if task == nil || task.ID == "" {
		t.Fatal("Apply returned no usable task handle")
	}

	grants, revokes := roles.counts()
	if grants != 1 {
		t.Errorf("grants = %d, want 1", grants)
	}
	if revokes != 0 {
		t.Errorf("revokes = %d, want 0 before expiry", revokes)
	}
	if sched.PendingCount() != 1 {
		t.Errorf("PendingCount = %d, want 1", sched.PendingCount())
	}
}

func TestSchedulerMuteLifecycle(t *testing.T) {
	roles := &fakeRoles{}
	notify := &fakeNotify{}
	sched := NewScheduler(roles, notify)

	if _, err := sched.Apply(testSubject, 30*time.Millisecond); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}

	waitUntil(t, 2*time.Second, func() bool {
		_, revokes := roles.counts()
		return revokes == 1
	})

	_, _, autoUnmutes, _ := notify.snapshot()
	if autoUnmutes != 1 {
		t.Errorf("auto-unmute notifications = %d, want exactly 1", autoUnmutes)
	}
	if sched.PendingCount() != 0 {
		t.Errorf("PendingCount after expiry = %d, want 0", sched.PendingCount())
	}
}

func TestSchedulerCancelBeforeFire(t *testing.T) {
	roles := &fakeRoles{}
	notify := &fakeNotify{}
	sched := NewScheduler(roles, notify)

	task, _ := sched.Apply(testSubject, time.Hour)

	if !sched.Cancel(task) {
		t.Fatal("Cancel of a pending task should return true")
	}

	// Cancel performs the reversal immediately
	_, revokes := roles.counts()
	if revokes != 1 {
		t.Errorf("revokes after Cancel = %d, want 1", revokes)
	}
	_, _, autoUnmutes, manualUnmutes := notify.snapshot()
	if manualUnmutes != 1 {
		t.Errorf("manual unmute notifications = %d, want 1", manualUnmutes)
	}
	if autoUnmutes != 0 {
		t.Errorf("auto unmute notifications = %d, want 0", autoUnmutes)
	}

	// The cancelled timer must never fire
	time.Sleep(50 * time.Millisecond)
	if _, revokes := roles.counts(); revokes != 1 {
		t.Errorf("revokes after settle = %d, want still 1", revokes)
	}
}

func TestSchedulerCancelIsIdempotent(t *testing.T) {
	roles := &fakeRoles{}
	sched := NewScheduler(roles, &fakeNotify{})

	task, _ := sched.Apply(testSubject, time.Hour)

	if !sched.Cancel(task) {
		t.Fatal("first Cancel should return true")
	}
	if sched.Cancel(task) {
		t.Error("second Cancel should be a no-op returning false")
	}

	if _, revokes := roles.counts(); revokes != 1 {
		t.Errorf("revokes after double Cancel = %d, want 1", revokes)
	}
}

func TestSchedulerCancelAfterFire(t *testing.T) {
	roles := &fakeRoles{}
	sched := NewScheduler(roles, &fakeNotify{})

	task, _ := sched.Apply(testSubject, 20*time.Millisecond)

	waitUntil(t, 2*time.Second, func() bool {
		_, revokes := roles.counts()
		return revokes == 1
	})

	if sched.Cancel(task) {
		t.Error("Cancel after the reversal fired should return false")
	}
	if _, revokes := roles.counts(); revokes != 1 {
		t.Errorf("revokes = %d, want 1", revokes)
	}
}

func TestSchedulerReplaceDoesNotStack(t *testing.T) {
	roles := &fakeRoles{}
	notify := &fakeNotify{}
	sched := NewScheduler(roles, notify)

	first, _ := sched.Apply(testSubject, 10*time.Second)
	second, _ := sched.Apply(testSubject, 40*time.Millisecond)

	if first.ID == second.ID {
		t.Fatal("expected a fresh task handle for the superseding mute")
	}
	if sched.PendingCount() != 1 {
		t.Fatalf("PendingCount after replace = %d, want 1", sched.PendingCount())
	}

	waitUntil(t, 2*time.Second, func() bool {
		_, revokes := roles.counts()
		return revokes >= 1
	})
	time.Sleep(100 * time.Millisecond)

	// Exactly one reversal, from the second task
	if _, revokes := roles.counts(); revokes != 1 {
		t.Errorf("revokes = %d, want exactly 1", revokes)
	}
	_, _, autoUnmutes, _ := notify.snapshot()
	if autoUnmutes != 1 {
		t.Errorf("auto-unmute notifications = %d, want exactly 1", autoUnmutes)
	}

	// The superseded handle is dead
	if sched.Cancel(first) {
		t.Error("Cancel of a superseded task should return false")
	}
}

func TestSchedulerGrantFailureIsAtomic(t *testing.T) {
	roles := &fakeRoles{failGrant: true}
	sched := NewScheduler(roles, &fakeNotify{})

	task, err := sched.Apply(testSubject, time.Hour)
	if err == nil {
		t.Fatal("expected Apply to fail when the role grant fails")
	}
	if task != nil {
		t.Error("no task handle should be returned on grant failure")
	}
	if sched.PendingCount() != 0 {
		t.Errorf("PendingCount = %d, want 0 after failed grant", sched.PendingCount())
	}
}

func TestSchedulerGrantFailureKeepsPriorTask(t *testing.T) {
	roles := &fakeRoles{}
	sched := NewScheduler(roles, &fakeNotify{})

	task, _ := sched.Apply(testSubject, time.Hour)

	roles.mu.Lock()
	roles.failGrant = true
	roles.mu.Unlock()

	if _, err := sched.Apply(testSubject, time.Minute); err == nil {
		t.Fatal("expected second Apply to fail")
	}

	// The original reversal intent must remain intact
	pending, ok := sched.Pending(testSubject)
	if !ok || pending.ID != task.ID {
		t.Error("failed Apply must leave the prior pending task untouched")
	}
}

func TestSchedulerPending(t *testing.T) {
	sched := NewScheduler(&fakeRoles{}, &fakeNotify{})

	if _, ok := sched.Pending(testSubject); ok {
		t.Error("Pending on an empty scheduler should report nothing")
	}

	task, _ := sched.Apply(testSubject, time.Hour)
	got, ok := sched.Pending(testSubject)
	if !ok || got.ID != task.ID {
		t.Error("Pending should return the live task for the subject")
	}

	sched.Cancel(task)
	if _, ok := sched.Pending(testSubject); ok {
		t.Error("Pending should report nothing after Cancel")
	}
}
