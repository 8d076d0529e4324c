package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	redisclient "github.com/lucashenriquez/exclusive-backend/pkg/redis"
)

type fakeKV struct {
	values map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{values: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	value, ok := f.values[key]
	if !ok {
		return "", redisclient.Nil
	}
	return value, nil
}

func (f *fakeKV) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if f.setErr != nil {
		return f.setErr
	}
	switch typed := value.(type) {
	case []byte:
		f.values[key] = string(typed)
	case string:
		f.values[key] = typed
	default:
		return errors.New("unexpected value type")
	}
	return nil
}

func (f *fakeKV) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeKV) WishlistKey(userID string) string {
	return "exc:wishlist:" + userID
}

func TestStoreRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	userID := uuid.New()
	entries := []Entry{{ProductID: uuid.New(), AddedAt: time.Now().UTC()}}
	if err := store.Save(context.Background(), userID, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded := store.Load(context.Background(), userID)
	if len(loaded) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(loaded))
	}
	if loaded[0].ProductID != entries[0].ProductID {
		t.Fatalf("unexpected entry: %+v", loaded[0])
	}
}

func TestStoreLoadMissingKeyIsEmpty(t *testing.T) {
	store, err := NewStore(newFakeKV(), nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	loaded := store.Load(context.Background(), uuid.New())
	if loaded == nil || len(loaded) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", loaded)
	}
}

func TestStoreLoadCorruptDocumentIsEmpty(t *testing.T) {
	kv := newFakeKV()
	userID := uuid.New()
	kv.values[kv.WishlistKey(userID.String())] = "{not json"

	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	loaded := store.Load(context.Background(), userID)
	if len(loaded) != 0 {
		t.Fatalf("expected empty wishlist on corrupt document, got %+v", loaded)
	}
}

func TestStoreLoadRedisFailureIsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.getErr = errors.New("connection refused")

	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	loaded := store.Load(context.Background(), uuid.New())
	if len(loaded) != 0 {
		t.Fatalf("expected empty wishlist on redis failure, got %+v", loaded)
	}
}

func TestStoreSaveNilWritesEmptyArray(t *testing.T) {
	kv := newFakeKV()
	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	userID := uuid.New()
	if err := store.Save(context.Background(), userID, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw := kv.values[kv.WishlistKey(userID.String())]
	var decoded []Entry
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		t.Fatalf("stored document not valid json: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Fatalf("expected empty array document, got %q", raw)
	}
}

func TestStoreSaveRedisFailureIsDependencyError(t *testing.T) {
	kv := newFakeKV()
	kv.setErr = errors.New("connection refused")

	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	if err := store.Save(context.Background(), uuid.New(), []Entry{{ProductID: uuid.New()}}); err == nil {
		t.Fatal("expected save to fail")
	}
}

func TestStoreDelete(t *testing.T) {
	kv := newFakeKV()
	store, err := NewStore(kv, nil)
	if err != nil {
		t.Fatalf("build store: %v", err)
	}

	userID := uuid.New()
	if err := store.Save(context.Background(), userID, []Entry{{ProductID: uuid.New()}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Delete(context.Background(), userID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(store.Load(context.Background(), userID)) != 0 {
		t.Fatal("expected empty wishlist after delete")
	}
}
