package helpers

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w-]+`)
	fileSanitize = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
)

// GenerateSlug derives a URL-safe identifier from a human-readable name.
func GenerateSlug(parts ...string) string {
	joined := strings.ToLower(strings.TrimSpace(strings.Join(parts, " ")))
	joined = strings.ReplaceAll(joined, " ", "-")
	joined = slugStrip.ReplaceAllString(joined, "")
	return strings.Trim(joined, "-")
}

// SignSession issues an HMAC-signed session token for the cookie.
func SignSession(secret string, claims *SessionClaims) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:   claims.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSession verifies the token and returns its claims.
func ParseSession(secret, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %v", err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// UploadFilename prefixes a timestamp and strips anything shell- or
// path-hostile from the client-supplied name. Collisions on identical names
// are only avoided by the timestamp, nothing stronger.
func UploadFilename(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), fileSanitize.ReplaceAllString(original, "_"))
}
