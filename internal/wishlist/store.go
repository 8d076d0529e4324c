package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
	redisclient "github.com/lucashenriquez/exclusive-backend/pkg/redis"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	WishlistKey(userID string) string
}

// Store persists wishlist documents as JSON blobs in Redis, one per user.
type Store struct {
	kv   kvStore
	logg *logger.Logger
}

func NewStore(kv kvStore, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, errors.New("wishlist store requires a redis client")
	}
	return &Store{kv: kv, logg: logg}, nil
}

// Load returns the user's wishlist entries. A missing key or an unreadable
// document degrades to an empty wishlist.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) []Entry {
	raw, err := s.kv.Get(ctx, s.kv.WishlistKey(userID.String()))
	if err != nil {
		if !errors.Is(err, redisclient.Nil) {
			s.warn(ctx, userID, "wishlist load failed, starting empty")
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.warn(ctx, userID, "wishlist document unreadable, starting empty")
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Save replaces the user's wishlist document.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal wishlist document")
	}
	if err := s.kv.Set(ctx, s.kv.WishlistKey(userID.String()), payload, 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist wishlist document")
	}
	return nil
}

// Delete removes the user's wishlist document entirely.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.kv.Del(ctx, s.kv.WishlistKey(userID.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete wishlist document")
	}
	return nil
}

func (s *Store) warn(ctx context.Context, userID uuid.UUID, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), msg)
}
