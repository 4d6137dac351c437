package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

// ListPublicAdverts returns only published adverts, newest first.
func ListPublicAdverts(s *services.AdvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adverts, err := s.ListAdverts(c.Request.Context(), true)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, adverts)
	}
}

func ListAdverts(s *services.AdvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		adverts, err := s.ListAdverts(c.Request.Context(), false)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, adverts)
	}
}

func CreateAdvert(s *services.AdvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.AdvertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		advert, err := s.CreateAdvert(c.Request.Context(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, advert)
	}
}

func UpdateAdvert(s *services.AdvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid advert ID", models.ErrValidation))
			return
		}
		var in models.AdvertInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		advert, err := s.UpdateAdvert(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, advert)
	}
}

func DeleteAdvert(s *services.AdvertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid advert ID", models.ErrValidation))
			return
		}
		if err := s.DeleteAdvert(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
