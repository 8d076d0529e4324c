package preferences

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
	redisclient "github.com/lucashenriquez/exclusive-backend/pkg/redis"
)

type kvStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	ThemeKey(userID string) string
}

// Service persists per-user display preferences in Redis.
type Service struct {
	kv   kvStore
	logg *logger.Logger
}

func NewService(kv kvStore, logg *logger.Logger) (*Service, error) {
	if kv == nil {
		return nil, fmt.Errorf("preferences service requires a redis client")
	}
	return &Service{kv: kv, logg: logg}, nil
}

// Theme returns the user's stored theme. A missing or unreadable value
// falls back to light.
func (s *Service) Theme(ctx context.Context, userID uuid.UUID) enums.Theme {
	raw, err := s.kv.Get(ctx, s.kv.ThemeKey(userID.String()))
	if err != nil {
		if !errors.Is(err, redisclient.Nil) && s.logg != nil {
			s.logg.Warn(s.logg.WithUserID(ctx, userID.String()), "theme load failed, falling back to light")
		}
		return enums.ThemeLight
	}
	theme, err := enums.ParseTheme(raw)
	if err != nil {
		return enums.ThemeLight
	}
	return theme
}

// SetTheme stores the user's theme choice.
func (s *Service) SetTheme(ctx context.Context, userID uuid.UUID, theme enums.Theme) error {
	if !theme.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid theme")
	}
	if err := s.kv.Set(ctx, s.kv.ThemeKey(userID.String()), theme.String(), 0); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist theme")
	}
	return nil
}
