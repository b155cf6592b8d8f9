package middleware

import (
	"lustrio/services/identity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// IdentityMiddleware resolves the bearer token and stores the tri-state
// result in the context. It never aborts: handlers decide what an
// unverified or failed caller may do.
func IdentityMiddleware(verifier identity.Verifier, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		var result identity.Result

		token, ok := identity.BearerToken(c.GetHeader("Authorization"))
		if !ok {
			result = identity.Anonymous("missing bearer token")
		} else {
			result = verifier.Verify(c.Request.Context(), token)
		}

		switch result.Status {
		case identity.Failed:
			logger.Error("identity verification failed", zap.String("requestId", RequestID(c)), zap.Error(result.Err))
		case identity.Unverified:
			logger.Debug("anonymous request", zap.String("reason", result.Reason))
		}

		c.Set(identityKey, result)
		c.Next()
	}
}

// Identity returns the result stored by IdentityMiddleware, or Unverified
// when the middleware did not run.
func Identity(c *gin.Context) identity.Result {
	if v, ok := c.Get(identityKey); ok {
		if r, ok := v.(identity.Result); ok {
			return r
		}
	}
	return identity.Anonymous("no identity middleware")
}
