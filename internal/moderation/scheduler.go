package moderation

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/AegisWorks/AegisBotGo/pkg/logger"
)

// Subject identifies a guild member under enforcement
type Subject struct {
	GuildID string
	UserID  string
}

func (s Subject) key() string {
	return s.GuildID + ":" + s.UserID
}

// RoleManager grants and revokes the restricted role on the chat platform.
// RevokeMute must treat "role already absent" as success.
type RoleManager interface {
	GrantMute(subject Subject) error
	RevokeMute(subject Subject) error
}

// Notifier receives the moderation side-effect notifications that go to the
// warning channel.
type Notifier interface {
	WarningRecorded(subject Subject, reason string, count int)
	AutoMuteApplied(subject Subject)
	AutoUnmuteApplied(subject Subject)
	ManualUnmuteApplied(subject Subject)
}

// Task is the handle for one pending mute reversal
type Task struct {
	ID        string
	Subject   Subject
	ExpiresAt time.Time

	timer *time.Timer
	done  bool // guarded by the scheduler mutex
}

// Scheduler applies timed mutes and guarantees their reversal. It keeps one
// live timer per subject: applying a new mute while one is pending
// supersedes the old reversal instead of stacking a second one.
//
// Pending tasks live only in process memory; they do not survive a restart.
type Scheduler struct {
	mu     sync.Mutex
	tasks  map[string]*Task
	roles  RoleManager
	notify Notifier
}

// NewScheduler creates a Scheduler using the given role manager and notifier
func NewScheduler(roles RoleManager, notify Notifier) *Scheduler {
	return &Scheduler{
		tasks:  make(map[string]*Task),
		roles:  roles,
		notify: notify,
	}
}

// Apply grants the restricted role to the subject and schedules its removal
// after d. If the grant fails, no reversal is registered and the previous
// pending task (if any) is left untouched.
func (s *Scheduler) Apply(subject Subject, d time.Duration) (*Task, error) {
	if err := s.roles.GrantMute(subject); err != nil {
		return nil, fmt.Errorf("grant mute for %s: %w", subject.UserID, err)
	}

	s.mu.Lock()
	if prev, ok := s.tasks[subject.key()]; ok && !prev.done {
		// Supersede: the new expiry replaces the old one, silently
		prev.timer.Stop()
		prev.done = true
	}

	task := &Task{
		ID:        uuid.NewString(),
		Subject:   subject,
		ExpiresAt: time.Now().Add(d),
	}
	task.timer = time.AfterFunc(d, func() { s.fire(task) })
	s.tasks[subject.key()] = task
	s.mu.Unlock()

	return task, nil
}

// fire is the timer callback performing the automatic reversal
func (s *Scheduler) fire(task *Task) {
	s.mu.Lock()
	if task.done {
		s.mu.Unlock()
		return
	}
	task.done = true
	if s.tasks[task.Subject.key()] == task {
		delete(s.tasks, task.Subject.key())
	}
	s.mu.Unlock()

	if err := s.roles.RevokeMute(task.Subject); err != nil {
		logger.Error(fmt.Sprintf("Auto-unmute failed for %s: %v", task.Subject.UserID, err), "MuteScheduler")
		return
	}
	s.notify.AutoUnmuteApplied(task.Subject)
}

// Cancel stops a pending reversal and performs the unmute immediately.
// It returns false without side effects if the task already fired or was
// cancelled before; calling it twice is safe.
func (s *Scheduler) Cancel(task *Task) bool {
	if task == nil {
		return false
	}

	s.mu.Lock()
	if task.done {
		s.mu.Unlock()
		return false
	}
	task.done = true
	task.timer.Stop()
	if s.tasks[task.Subject.key()] == task {
		delete(s.tasks, task.Subject.key())
	}
	s.mu.Unlock()

	if err := s.roles.RevokeMute(task.Subject); err != nil {
		logger.Error(fmt.Sprintf("Manual unmute failed for %s: %v", task.Subject.UserID, err), "MuteScheduler")
		return true
	}
	s.notify.ManualUnmuteApplied(task.Subject)
	return true
}

// Pending returns the live task for a subject, if one exists
func (s *Scheduler) Pending(subject Subject) (*Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	task, ok := s.tasks[subject.key()]
	return task, ok
}

// PendingCount returns the number of mutes awaiting reversal
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
