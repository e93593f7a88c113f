package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"careconnect_backend/internal/auth"
	"careconnect_backend/internal/logger"
	"careconnect_backend/internal/repositories"
	"careconnect_backend/pkg/apperrors"
	"careconnect_backend/pkg/contextkeys"
)

const identityHeader = "X-User-Email"

// AuthMiddleware authenticates every request under it. The primary scheme is
// a Bearer token checked through the Verifier; when allowHeaderIdentity is on,
// requests without a token may assert their identity via the X-User-Email
// header instead. Soft-deleted accounts never authenticate.
func AuthMiddleware(verifier auth.Verifier, userRepo repositories.UserRepository, allowHeaderIdentity bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			identity, err := verifier.Verify(tokenStr)
			if err != nil {
				abortWithError(c, apperrors.ErrInvalidToken)
				return
			}

			user, err := userRepo.FindByID(identity.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					abortWithError(c, apperrors.NewUnauthenticatedError("Account is deactivated"))
					return
				}
				abortWithError(c, apperrors.InternalError(err))
				return
			}

			setIdentity(c, user.ID, user.Email)
			c.Next()
			return
		}

		if allowHeaderIdentity {
			if email := c.GetHeader(identityHeader); email != "" {
				user, err := userRepo.FindByEmail(email)
				if err != nil {
					if errors.Is(err, repositories.ErrUserNotFound) {
						abortWithError(c, apperrors.NotFound("User"))
						return
					}
					abortWithError(c, apperrors.InternalError(err))
					return
				}

				setIdentity(c, user.ID, user.Email)
				c.Next()
				return
			}
		}

		abortWithError(c, apperrors.ErrUnauthenticated)
	}
}

func setIdentity(c *gin.Context, userID uint, email string) {
	c.Set(string(contextkeys.UserIDKey), userID)
	c.Set(string(contextkeys.UserEmailKey), email)

	ctx := logger.WithUserID(c.Request.Context(), fmt.Sprintf("%d", userID))
	c.Request = c.Request.WithContext(ctx)
}

func abortWithError(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err})
}
