package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/notifique/alert/internal/auth"
)

type AuthConfigurator interface {
	GetJWKSURL() (string, error)
}

type AuthMiddleware gin.HandlerFunc

func NewAuthMiddleware(cfg AuthConfigurator) (AuthMiddleware, error) {

	jwksURL, err := cfg.GetJWKSURL()

	if err != nil {
		return nil, fmt.Errorf("failed to get JWKS URL - %w", err)
	}

	jwks, err := keyfunc.NewDefault([]string{jwksURL})

	if err != nil {
		return nil, fmt.Errorf("failed to create JWK Set from resource at the given URL - %w", err)
	}

	return NewJWTAuthMiddleware(jwks.Keyfunc), nil
}

// NewJWTAuthMiddleware authenticates requests carrying a bearer token.
// Requests without an Authorization header continue as anonymous callers.
// Identity headers sent by the client are always discarded, only a valid
// token can set them.
func NewJWTAuthMiddleware(kf jwt.Keyfunc) AuthMiddleware {
	return func(ctx *gin.Context) {

		ctx.Request.Header.Del(string(auth.UserHeader))
		ctx.Request.Header.Del(string(auth.ScopeHeader))

		authToken := ctx.GetHeader("Authorization")

		if authToken == "" {
			ctx.Next()
			return
		}

		jwtToken, ok := strings.CutPrefix(authToken, "Bearer ")

		if !ok || jwtToken == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(jwtToken, kf)

		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			err = fmt.Errorf("failed to parse token - %w", err)
			slog.Error(err.Error())
			return
		}

		if !token.Valid {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			slog.Error("The token is not valid.")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			slog.Error("The token claims are malformed.")
			return
		}

		username, ok := claims["username"].(string)

		if !ok || username == "" {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			slog.Error("The token does not contain a username.")
			return
		}

		scope, ok := claims["scope"].(string)

		if !ok {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			slog.Error("The token does not contain a scope.")
			return
		}

		ctx.Request.Header.Set(string(auth.UserHeader), username)
		ctx.Request.Header.Set(string(auth.ScopeHeader), scope)

		ctx.Next()
	}
}
