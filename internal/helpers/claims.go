package helpers

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims is the payload of the session cookie token.
type SessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (sc *SessionClaims) IsAdmin() bool {
	return sc.Role == "admin"
}

func (sc *SessionClaims) HasRole(role string) bool {
	return sc.Role == role
}

func (sc *SessionClaims) IsOwner(userID string) bool {
	return sc.UserID == userID
}

// MustUserID parses the subject; uuid.Nil when the token carries garbage.
func (sc *SessionClaims) MustUserID() uuid.UUID {
	id, err := uuid.Parse(sc.UserID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// SessionTTL is how long an issued session cookie stays valid.
const SessionTTL = 30 * 24 * time.Hour

// SessionCookie is the name of the httpOnly auth cookie.
const SessionCookie = "session_token"
