package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

// ListEvents serves both the public listing and the admin dashboard. The
// adminMode and creatorId query params only widen the filter when the session
// actually carries the matching privilege.
func ListEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		isAdmin := claims != nil && claims.IsAdmin()

		f := models.EventFilter{Category: c.Query("category")}
		f.AdminMode = c.Query("adminMode") == "true" && isAdmin

		if creatorID := c.Query("creatorId"); creatorID != "" {
			id, err := uuid.Parse(creatorID)
			if err != nil {
				respondError(c, fmt.Errorf("%w: invalid creatorId", models.ErrValidation))
				return
			}
			if claims == nil || (!isAdmin && claims.MustUserID() != id) {
				respondError(c, models.ErrUnauthorized)
				return
			}
			f.CreatorID = &id
			// Creators see their own pending events.
			f.AdminMode = true
		}

		events, err := s.ListEvents(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, events)
	}
}

func GetEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		event, err := s.GetEvent(c.Request.Context(), c.Param("idOrSlug"), sessionClaims(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

// CreateEvent takes the creator from the session: non-admin submissions go
// through the lifecycle gate, admin ones go straight live.
func CreateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		if claims == nil {
			respondError(c, models.ErrUnauthorized)
			return
		}
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		if !claims.IsAdmin() {
			id := claims.MustUserID()
			in.CreatorID = &id
		}
		event, err := s.CreateEvent(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, event)
	}
}

func UpdateEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.EventUpdate
		if err := c.ShouldBindJSON(&patch); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		event, err := s.UpdateEvent(c.Request.Context(), c.Param("idOrSlug"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}

func DeleteEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("idOrSlug"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid event ID", models.ErrValidation))
			return
		}
		if err := s.DeleteEvent(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

type eventPaymentRequest struct {
	EventID uuid.UUID `json:"eventId"`
}

// ConfirmEventPayment simulates the payment callback for creator-submitted
// events; no gateway verification happens here.
func ConfirmEventPayment(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req eventPaymentRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.EventID == uuid.Nil {
			respondError(c, fmt.Errorf("%w: missing eventId", models.ErrValidation))
			return
		}
		event, err := s.ConfirmPayment(c.Request.Context(), req.EventID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "event": event})
	}
}

func ApproveEvent(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid event ID", models.ErrValidation))
			return
		}
		event, err := s.Approve(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, event)
	}
}
