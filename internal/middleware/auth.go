package middleware

import (
	"context"
	"strings"

	"github.com/fairytale-lab/backend/internal/model"
	"github.com/fairytale-lab/backend/pkg/authenticator"
	"github.com/fairytale-lab/backend/pkg/errorx"
	"github.com/fairytale-lab/backend/pkg/router"
	"github.com/fairytale-lab/backend/pkg/xcontext"
)

type AuthVerifier struct {
	tokenEngine authenticator.TokenEngine[model.AccessToken]
	optional    bool
}

func NewAuthVerifier(tokenEngine authenticator.TokenEngine[model.AccessToken]) *AuthVerifier {
	return &AuthVerifier{tokenEngine: tokenEngine}
}

// WithOptional makes the verifier pass anonymous requests through instead of
// rejecting them.
func (v *AuthVerifier) WithOptional() *AuthVerifier {
	v.optional = true
	return v
}

func (v *AuthVerifier) Middleware() router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		token := extractBearerToken(ctx)
		if token == "" {
			if v.optional {
				return ctx, nil
			}

			return ctx, errorx.New(errorx.Unauthenticated, "You need to authenticate before")
		}

		accessToken, err := v.tokenEngine.Verify(token)
		if err != nil {
			xcontext.Logger(ctx).Debugf("Cannot verify access token: %v", err)
			return ctx, errorx.New(errorx.Unauthenticated, "Invalid access token")
		}

		return xcontext.WithRequestUserID(ctx, accessToken.ID), nil
	}
}

func extractBearerToken(ctx context.Context) string {
	authHeader := xcontext.HTTPRequest(ctx).Header.Get("Authorization")
	return strings.TrimPrefix(authHeader, "Bearer ")
}
