//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "arbitat/internal/handler/dto/request"
	"arbitat/internal/infra/kvstore"
	"arbitat/internal/infra/memstore"
	"arbitat/internal/pkg/clock"
	"arbitat/internal/pkg/jwt"
	"arbitat/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	commands commands.AuthCommands
	sessions *kvstore.Sessions
	users    *memstore.UserStore
}

func newAuthFixture(t *testing.T) authFixture {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	listings := memstore.NewListingStore(clk)
	users := memstore.NewUserStore(clk)
	require.NoError(t, memstore.SeedDemoData(listings, users, clk))

	sessions := kvstore.NewSessions(kvstore.NewMemoryStore(), "test")
	jwtService := jwt.NewService("test-secret", time.Hour)

	return authFixture{
		commands: commands.NewAuthCommands(users, sessions, jwtService),
		sessions: sessions,
		users:    users,
	}
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a token and caches the session profile", func(t *testing.T) {
		f := newAuthFixture(t)

		result, err := f.commands.Login(ctx, reqdto.LoginRequest{
			Email:    "student@demo.com",
			Password: memstore.DemoPassword,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, memstore.DemoRenterID, result.UserID)
		assert.Equal(t, "Demo Student", result.User.Name)

		profile, err := f.sessions.Profile(ctx, result.UserID)
		require.NoError(t, err)
		require.NotNil(t, profile)
		assert.Equal(t, "student@demo.com", profile.Email)
		assert.Equal(t, "renter", profile.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.commands.Login(ctx, reqdto.LoginRequest{
			Email:    "student@demo.com",
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown account maps to the same error as a bad password", func(t *testing.T) {
		f := newAuthFixture(t)

		_, err := f.commands.Login(ctx, reqdto.LoginRequest{
			Email:    "nobody@demo.com",
			Password: memstore.DemoPassword,
		})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	result, err := f.commands.Login(ctx, reqdto.LoginRequest{
		Email:    "student@demo.com",
		Password: memstore.DemoPassword,
	})
	require.NoError(t, err)

	require.NoError(t, f.commands.Logout(ctx, result.UserID))

	profile, err := f.sessions.Profile(ctx, result.UserID)
	require.NoError(t, err)
	assert.Nil(t, profile)
}
