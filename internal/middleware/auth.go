package middleware

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/auth"
)

const decodedEmailKey = "decodedEmail"

// VerifyToken annotates the request with the verified email when a valid
// bearer token is present. It never rejects: routes decide what an
// anonymous caller may do.
func VerifyToken(verifier auth.Verifier, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenString := bearerToken(authHeader)
		email, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			log.Debug("token verification failed", slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Set(decodedEmailKey, email)
		c.Next()
	}
}

// bearerToken returns the field after the first space, as a plain split
// on " " would.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// DecodedEmail reports the email set by VerifyToken.
func DecodedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(decodedEmailKey)
	return email, email != ""
}
