package queries

import (
	"context"

	"arbitat/internal/domain/user"
	"arbitat/internal/infra"
	"arbitat/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	u, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	v := NewUserView(u)
	return &v, nil
}

func NewUserView(u *user.User) UserView {
	return UserView{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email().Value(),
		Role:      u.Role().String(),
		Phone:     u.Phone(),
		IsActive:  u.IsActive(),
		LastLogin: u.LastLogin(),
	}
}
