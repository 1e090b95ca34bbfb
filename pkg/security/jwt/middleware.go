package jwt

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/artem13815/hr-dashboard/pkg/auth"
)

// Locals keys set on a successfully authenticated request.
const (
	LocalUserID   = "userId"
	LocalIsAdmin  = "isAdmin"
	LocalTokenID  = "tokenId"
	LocalTokenExp = "tokenExp"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256)
// and rejects revoked token ids. A nil revocation store skips that check.
func NewAuthMiddleware(secret, expectedIssuer string, revoked auth.RevocationStore) fiber.Handler {
	secretBytes := []byte(secret)
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "missing Authorization header"})
		}
		// Support both "Bearer <token>" and "<token>" (no prefix).
		tokenStr := strings.TrimSpace(authHeader)
		if parts := strings.SplitN(tokenStr, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			tokenStr = strings.TrimSpace(parts[1])
		}
		if tokenStr == "" {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "empty token"})
		}
		token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
			return secretBytes, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
		if err != nil || !token.Valid {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid or expired token"})
		}
		claims, ok := token.Claims.(*Claims)
		if !ok {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token claims"})
		}
		if expectedIssuer != "" && claims.Issuer != expectedIssuer {
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "invalid token issuer"})
		}
		if revoked != nil && claims.ID != "" {
			isRevoked, err := revoked.IsRevoked(c.UserContext(), claims.ID)
			if err != nil {
				slog.ErrorContext(c.UserContext(), "revocation lookup failed", "error", err)
				return c.Status(http.StatusServiceUnavailable).JSON(fiber.Map{"message": "token check unavailable"})
			}
			if isRevoked {
				return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "token revoked"})
			}
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalTokenID, claims.ID)
		c.Locals(LocalTokenExp, claims.ExpiresAt.Time)
		if claims.IsAdmin {
			c.Locals(LocalIsAdmin, true)
		}
		return c.Next()
	}
}
