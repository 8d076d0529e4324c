package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
)

// manualTimers captures expiry callbacks so tests can fire them on demand.
type manualTimers struct {
	callbacks []func()
}

func (m *manualTimers) afterFunc(d time.Duration, f func()) *time.Timer {
	m.callbacks = append(m.callbacks, f)
	return time.NewTimer(time.Hour)
}

func (m *manualTimers) fireAll() {
	for _, f := range m.callbacks {
		f()
	}
	m.callbacks = nil
}

func newManualService() (*Service, *manualTimers) {
	timers := &manualTimers{}
	svc := NewService(time.Second)
	svc.afterFunc = timers.afterFunc
	return svc, timers
}

func TestShowAndListPreservesOrder(t *testing.T) {
	svc, _ := newManualService()
	userID := uuid.New()

	first, err := svc.Show(userID, "added to cart", enums.ToastSeveritySuccess)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	second, err := svc.Show(userID, "saved to wishlist", enums.ToastSeverityInfo)
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	toasts := svc.List(userID)
	if len(toasts) != 2 {
		t.Fatalf("expected 2 toasts, got %d", len(toasts))
	}
	if toasts[0].ID != first.ID || toasts[1].ID != second.ID {
		t.Fatal("expected insertion order to be preserved")
	}
}

func TestShowRejectsInvalidInput(t *testing.T) {
	svc, _ := newManualService()

	if _, err := svc.Show(uuid.Nil, "msg", enums.ToastSeverityInfo); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for nil user, got %v", err)
	}
	if _, err := svc.Show(uuid.New(), "", enums.ToastSeverityInfo); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for blank message, got %v", err)
	}
	if _, err := svc.Show(uuid.New(), "msg", enums.ToastSeverity("loud")); pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for bad severity, got %v", err)
	}
}

func TestToastExpiresAfterTTL(t *testing.T) {
	svc, timers := newManualService()
	userID := uuid.New()

	if _, err := svc.Show(userID, "order placed", enums.ToastSeveritySuccess); err != nil {
		t.Fatalf("show: %v", err)
	}
	if len(svc.List(userID)) != 1 {
		t.Fatal("expected toast before expiry")
	}

	timers.fireAll()
	if len(svc.List(userID)) != 0 {
		t.Fatal("expected toast gone after expiry")
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	svc, timers := newManualService()
	userID := uuid.New()

	toast, err := svc.Show(userID, "order placed", enums.ToastSeveritySuccess)
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	svc.Dismiss(userID, toast.ID)
	if len(svc.List(userID)) != 0 {
		t.Fatal("expected toast dismissed")
	}

	// Second dismiss and the late expiry callback must both be harmless.
	svc.Dismiss(userID, toast.ID)
	timers.fireAll()
	svc.Dismiss(uuid.New(), uuid.New())
	if len(svc.List(userID)) != 0 {
		t.Fatal("expected queue still empty")
	}
}

func TestQueuesAreScopedPerUser(t *testing.T) {
	svc, _ := newManualService()
	alice := uuid.New()
	bob := uuid.New()

	if _, err := svc.Show(alice, "hello alice", enums.ToastSeverityInfo); err != nil {
		t.Fatalf("show: %v", err)
	}

	if len(svc.List(bob)) != 0 {
		t.Fatal("expected empty queue for other user")
	}
	if len(svc.List(alice)) != 1 {
		t.Fatal("expected one toast for alice")
	}
}
