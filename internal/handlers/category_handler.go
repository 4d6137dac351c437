package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

type categoryRequest struct {
	Name string `json:"name"`
}

func ListCategories(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cats, err := s.ListCategories(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cats)
	}
}

func CreateCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		cat, err := s.CreateCategory(c.Request.Context(), req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func UpdateCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid category ID", models.ErrValidation))
			return
		}
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		cat, err := s.RenameCategory(c.Request.Context(), id, req.Name)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, cat)
	}
}

func DeleteCategory(s *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid category ID", models.ErrValidation))
			return
		}
		if err := s.DeleteCategory(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
