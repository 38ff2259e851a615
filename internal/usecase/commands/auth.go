package commands

import (
	"context"
	"log/slog"

	"arbitat/internal/domain/user"
	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/infra"
	"arbitat/internal/infra/kvstore"
	"arbitat/internal/pkg/errs"
	"arbitat/internal/pkg/jwt"
	"arbitat/internal/pkg/password"
	"arbitat/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID uuid.UUID
	Token  string
	User   queries.UserView
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
	Logout(ctx context.Context, userID uuid.UUID) error
}

type authCommandsImpl struct {
	userRepo   UserRepository
	sessions   SessionRepository
	jwtService *jwt.Service
}

func NewAuthCommands(userRepo UserRepository, sessions SessionRepository, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	u, err := a.userRepo.FindByEmail(ctx, credentials.Email())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same marker as a bad password so probes cannot enumerate accounts.
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	if !u.IsActive() {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(u.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	if err := a.userRepo.UpdateLastLogin(ctx, u.ID()); err != nil {
		slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
		// Continue without failing - this is not critical
	}

	profile := kvstore.Profile{
		Name:  u.Name(),
		Email: u.Email().Value(),
		Role:  u.Role().String(),
	}
	if err := a.sessions.SaveProfile(ctx, u.ID(), profile); err != nil {
		slog.Warn("failed to cache session profile", "user_id", u.ID(), "error", err.Error())
	}

	return &LoginResult{
		UserID: u.ID(),
		Token:  token,
		User:   queries.NewUserView(u),
	}, nil
}

func (a *authCommandsImpl) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := a.sessions.ClearProfile(ctx, userID); err != nil {
		return errs.Mark(err, ErrStorageOperationFailed)
	}
	return nil
}
