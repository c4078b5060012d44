package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// HumaMiddleware resolves a Bearer token into the request context. Requests
// without an Authorization header pass through anonymously. A malformed or
// expired token is rejected with 401.
func HumaMiddleware(api huma.API, jwtManager *JWTManager) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		authHeader := ctx.Header("Authorization")
		if authHeader == "" {
			next(ctx)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrInvalidToken.Error())
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, ErrInvalidToken.Error(), err)
			return
		}

		userID := uuid.FromStringOrNil(claims.UserID)
		next(huma.WithContext(ctx, WithUser(ctx.Context(), userID, claims.Email)))
	}
}
