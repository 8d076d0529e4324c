package cart

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
	CartKey(userID string) string
}

// Store persists cart documents as JSON blobs in Redis, one document per user.
type Store struct {
	kv   kvStore
	logg *logger.Logger
}

func NewStore(kv kvStore, logg *logger.Logger) (*Store, error) {
	if kv == nil {
		return nil, errors.New("cart store requires a redis client")
	}
	return &Store{kv: kv, logg: logg}, nil
}

// Load returns the user's cart entries. A missing key or an unreadable
// document degrades to an empty cart so a bad blob never blocks the
// storefront.
func (s *Store) Load(ctx context.Context, userID uuid.UUID) []Entry {
	raw, err := s.kv.Get(ctx, s.kv.CartKey(userID.String()))
	if err != nil {
		if !errors.Is(err, redisclient.Nil) {
			s.warn(ctx, userID, "cart load failed, starting empty")
		}
		return []Entry{}
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		s.warn(ctx, userID, "cart document unreadable, starting empty")
		return []Entry{}
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries
}

// Save replaces the user's cart document.
func (s *Store) Save(ctx context.Context, userID uuid.UUID, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal cart document")
	}
	if err := s.kv.Set(ctx, s.kv.CartKey(userID.String()), payload, 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart document")
	}
	return nil
}

// Delete removes the user's cart document entirely.
func (s *Store) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := s.kv.Del(ctx, s.kv.CartKey(userID.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete cart document")
	}
	return nil
}

func (s *Store) warn(ctx context.Context, userID uuid.UUID, msg string) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), msg)
}
