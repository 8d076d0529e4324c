package notifications

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
)

const defaultToastTTL = 3 * time.Second

// Toast is one transient notification shown to a user.
type Toast struct {
	ID        uuid.UUID           `json:"id"`
	Message   string              `json:"message"`
	Severity  enums.ToastSeverity `json:"severity"`
	CreatedAt time.Time           `json:"created_at"`
}

// Service keeps per-user toast queues in process memory. Toasts expire on
// their own after the configured TTL; dismissing an already expired toast
// is a no-op.
type Service struct {
	mu     sync.Mutex
	queues map[uuid.UUID][]toastEntry
	ttl    time.Duration

	// afterFunc is swappable so expiry can be driven manually in tests.
	afterFunc func(d time.Duration, f func()) *time.Timer
}

type toastEntry struct {
	toast Toast
	timer *time.Timer
}

func NewService(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultToastTTL
	}
	return &Service{
		queues:    map[uuid.UUID][]toastEntry{},
		ttl:       ttl,
		afterFunc: time.AfterFunc,
	}
}

// Show enqueues a toast for the user and schedules its expiry.
func (s *Service) Show(userID uuid.UUID, message string, severity enums.ToastSeverity) (*Toast, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if message == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "message required")
	}
	if !severity.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid toast severity")
	}

	toast := Toast{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		CreatedAt: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	timer := s.afterFunc(s.ttl, func() {
		s.Dismiss(userID, toast.ID)
	})
	s.queues[userID] = append(s.queues[userID], toastEntry{toast: toast, timer: timer})
	return &toast, nil
}

// Dismiss removes the toast and cancels its expiry timer. Unknown or
// already expired ids are ignored.
func (s *Service) Dismiss(userID, toastID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[userID]
	for i, entry := range queue {
		if entry.toast.ID != toastID {
			continue
		}
		if entry.timer != nil {
			entry.timer.Stop()
		}
		queue = append(queue[:i], queue[i+1:]...)
		if len(queue) == 0 {
			delete(s.queues, userID)
		} else {
			s.queues[userID] = queue
		}
		return
	}
}

// List returns the user's active toasts in the order they were shown.
func (s *Service) List(userID uuid.UUID) []Toast {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[userID]
	toasts := make([]Toast, 0, len(queue))
	for _, entry := range queue {
		toasts = append(toasts, entry.toast)
	}
	return toasts
}
