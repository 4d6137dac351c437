package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

// PurchaseTicket runs the atomic purchase and returns the created order.
// There is no retry; a rejected purchase is final and the client resubmits.
func PurchaseTicket(s *services.PurchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.PurchaseInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		order, err := s.Purchase(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// ListOrders is the admin purchase audit view.
func ListOrders(s *services.PurchaseService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ticketID *uuid.UUID
		if raw := c.Query("ticketId"); raw != "" {
			id, err := uuid.Parse(raw)
			if err != nil {
				respondError(c, fmt.Errorf("%w: invalid ticketId", models.ErrValidation))
				return
			}
			ticketID = &id
		}
		orders, err := s.ListOrders(c.Request.Context(), ticketID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}
