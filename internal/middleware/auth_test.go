package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fairytale-lab/backend/config"
	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/pkg/authenticator"
	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/testutil"
	"github.com/fairytale-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTestTokenEngine() authenticator.TokenEngine[model.AccessToken] {
	return authenticator.NewTokenEngine[model.AccessToken](config.AuthConfigs{
		TokenSecret: "secret",
		AccessToken: config.TokenConfigs{Name: "access_token", Expiration: time.Minute},
	})
}

func Test_AuthVerifier_ValidToken(t *testing.T) {
	engine := newTestTokenEngine()
	token, err := engine.Generate("user1", model.AccessToken{ID: "user1"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/getMyStats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)

	ctx, err = NewAuthVerifier(engine).Middleware()(ctx)
	require.NoError(t, err)
	require.Equal(t, "user1", xcontext.RequestUserID(ctx))
}

func Test_AuthVerifier_MissingToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/getMyStats", nil)
	ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)

	_, err := NewAuthVerifier(newTestTokenEngine()).Middleware()(ctx)
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_AuthVerifier_InvalidToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/getMyStats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)

	_, err := NewAuthVerifier(newTestTokenEngine()).Middleware()(ctx)
	require.Error(t, err)
	require.Equal(t, errorx.Unauthenticated, err.(errorx.Error).Code)
}

func Test_AuthVerifier_OptionalAllowsAnonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/getLeaderboard", nil)
	ctx := xcontext.WithHTTPRequest(testutil.MockContext(), req)

	ctx, err := NewAuthVerifier(newTestTokenEngine()).WithOptional().Middleware()(ctx)
	require.NoError(t, err)
	require.Equal(t, "", xcontext.RequestUserID(ctx))
}
