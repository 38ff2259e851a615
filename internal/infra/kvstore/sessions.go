package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"

	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

// Sessions exposes the renter-scoped records kept in the key-value store:
// favorites and the lightweight profile. Missing or corrupt records read as
// empty rather than failing; writes always replace the whole record.
type Sessions struct {
	store  Store
	prefix string
}

func NewSessions(store Store, prefix string) *Sessions {
	if prefix == "" {
		prefix = "arbitat"
	}
	return &Sessions{store: store, prefix: prefix}
}

type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s *Sessions) Favorites(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	raw, ok, err := s.store.Get(ctx, s.favoritesKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var ids []int64
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		slog.Warn("corrupt favorites record, treating as empty", "user_id", userID, "error", err)
		return nil, nil
	}
	return ids, nil
}

// ToggleFavorite flips membership and reports whether the listing is a
// favorite after the call.
func (s *Sessions) ToggleFavorite(ctx context.Context, userID uuid.UUID, listingID int64) (bool, error) {
	ids, err := s.Favorites(ctx, userID)
	if err != nil {
		return false, err
	}

	next := make([]int64, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == listingID {
			removed = true
			continue
		}
		next = append(next, id)
	}
	if !removed {
		next = append(next, listingID)
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return false, errs.Wrap(err, "failed to encode favorites")
	}
	if err := s.store.Set(ctx, s.favoritesKey(userID), string(raw)); err != nil {
		return false, err
	}
	return !removed, nil
}

func (s *Sessions) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	raw, ok, err := s.store.Get(ctx, s.profileKey(userID))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		slog.Warn("corrupt profile record, treating as absent", "user_id", userID, "error", err)
		return nil, nil
	}
	return &p, nil
}

func (s *Sessions) SaveProfile(ctx context.Context, userID uuid.UUID, p Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return errs.Wrap(err, "failed to encode profile")
	}
	return s.store.Set(ctx, s.profileKey(userID), string(raw))
}

func (s *Sessions) ClearProfile(ctx context.Context, userID uuid.UUID) error {
	return s.store.Delete(ctx, s.profileKey(userID))
}

func (s *Sessions) favoritesKey(userID uuid.UUID) string {
	return s.prefix + ":favorites:" + userID.String()
}

func (s *Sessions) profileKey(userID uuid.UUID) string {
	return s.prefix + ":profile:" + userID.String()
}
