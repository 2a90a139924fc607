package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/minhvuq/planora/internal/model"
)

// ContextKeyUID is the gin context key holding the authenticated caller's UID
const ContextKeyUID = "uid"

// TokenVerifier validates a Firebase ID token. *auth.Client satisfies it.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// FirebaseAuth validates the bearer ID token and injects the caller's UID
// into the gin context. A request without a token is rejected before any
// verification round trip.
func FirebaseAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden,
				model.ErrorResponse{Error: "Unauthorized - No token provided"})
			return
		}

		decoded, err := verifier.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				model.ErrorResponse{Error: "Invalid token"})
			return
		}

		c.Set(ContextKeyUID, decoded.UID)
		c.Next()
	}
}

func extractBearerToken(header string) string {
	parts := strings.SplitN(header, "Bearer ", 2)
	if len(parts) != 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
