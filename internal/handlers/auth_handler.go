package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adjei-dev/stagepress/internal/config"
	"github.com/adjei-dev/stagepress/internal/helpers"
	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login validates credentials and issues the session cookie.
func Login(u *services.UserService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}

		user, err := u.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		claims := &helpers.SessionClaims{
			UserID: user.ID.String(),
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		}
		token, err := helpers.SignSession(cfg.JWTSecret, claims)
		if err != nil {
			respondError(c, err)
			return
		}

		c.SetCookie(helpers.SessionCookie, token, int(helpers.SessionTTL.Seconds()),
			"/", "", cfg.IsProduction(), true)
		c.JSON(http.StatusOK, user)
	}
}

// Logout clears the session cookie.
func Logout(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(helpers.SessionCookie, "", -1, "/", "", cfg.IsProduction(), true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

// Session echoes the authenticated caller's claims.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		if claims == nil {
			respondError(c, models.ErrUnauthorized)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":    claims.UserID,
			"email": claims.Email,
			"name":  claims.Name,
			"role":  claims.Role,
		})
	}
}
