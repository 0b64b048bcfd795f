package mocks

import (
	"github.com/gin-gonic/gin"

	"github.com/notifique/alert/internal/middleware"
)

func NewTestAuthMiddleware() middleware.AuthMiddleware {
	return func(ctx *gin.Context) {
		ctx.Next()
	}
}

func NewTestRateLimitMiddleware() middleware.RateLimitMiddleware {
	return func(ctx *gin.Context) {
		ctx.Next()
	}
}
