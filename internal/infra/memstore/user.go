package memstore

import (
	"context"
	"strings"
	"sync"
	"time"

	"arbitat/internal/domain/user"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/clock"

	"github.com/google/uuid"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*user.User
	byEmail map[string]uuid.UUID
	clock   clock.Clock
}

func NewUserStore(clock clock.Clock) *UserStore {
	return &UserStore{
		byID:    make(map[uuid.UUID]*user.User),
		byEmail: make(map[string]uuid.UUID),
		clock:   clock,
	}
}

func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[strings.ToLower(email.Value())]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return s.byID[id], nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (s *UserStore) UpdateLastLogin(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}

	now := s.clock.Now()
	s.byID[id] = reconstructWithLastLogin(u, now)
	return nil
}

func (s *UserStore) put(u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(u.Email().Value())
	if _, exists := s.byEmail[key]; exists {
		return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
	}
	s.byID[u.ID()] = u
	s.byEmail[key] = u.ID()
	return nil
}

func reconstructWithLastLogin(u *user.User, t time.Time) *user.User {
	return user.ReconstructUser(
		u.ID(),
		u.Name(),
		u.Email(),
		u.PasswordHash(),
		u.Role(),
		u.Phone(),
		&t,
		u.IsActive(),
		u.CreatedAt(),
		t,
	)
}
