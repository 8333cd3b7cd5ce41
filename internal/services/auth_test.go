package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opsdeck/ams-backend/internal/data/repos"
	"github.com/opsdeck/ams-backend/internal/data/repos/testutil"
	errs "github.com/opsdeck/ams-backend/internal/pkg/errors"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return NewAuthService(db, log, repos.NewUserRepo(db, log), "test-secret", time.Minute, time.Hour)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, "  Priya  ", "s3cret")
	require.NoError(t, err)
	require.Equal(t, "priya", user.Username)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// the stored password is a hash, never the plaintext
	require.NotEqual(t, "s3cret", user.Password)

	loggedIn, pair, err := svc.Login(ctx, "priya", "s3cret")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	userID, err := svc.ParseAccessToken(pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "priya", "one")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "PRIYA", "two")
	require.ErrorIs(t, err, errs.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc := newAuthService(t)

	_, _, err := svc.Register(context.Background(), "   ", "pw")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, _, err = svc.Register(context.Background(), "priya", "")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "priya", "right")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "priya", "wrong")
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, _, err = svc.Login(ctx, "nobody", "right")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, pair, err := svc.Register(ctx, "priya", "pw")
	require.NoError(t, err)

	fresh, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	userID, err := svc.ParseAccessToken(fresh.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, userID)

	// an access token cannot stand in for a refresh token
	_, err = svc.Refresh(ctx, pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestParseAccessTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t)

	_, err := svc.ParseAccessToken("not-a-token")
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}
