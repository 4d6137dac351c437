package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/adjei-dev/stagepress/internal/models"
	"github.com/adjei-dev/stagepress/internal/services"
)

func ListPosts(s *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := models.PostFilter{
			CategorySlug: c.Query("category"),
			Search:       c.Query("search"),
		}
		if published := c.Query("published"); published != "" {
			v := published == "true"
			f.Published = &v
		}
		f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "10"))

		page, err := s.ListPosts(c.Request.Context(), f)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func GetPost(s *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		isAdmin := claims != nil && claims.IsAdmin()

		post, err := s.GetPost(c.Request.Context(), c.Param("idOrSlug"), isAdmin)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func CreatePost(s *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := sessionClaims(c)
		if claims == nil {
			respondError(c, models.ErrUnauthorized)
			return
		}
		var in models.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		post, err := s.CreatePost(c.Request.Context(), claims.MustUserID(), in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func UpdatePost(s *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid post ID", models.ErrValidation))
			return
		}
		var in models.PostInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, fmt.Errorf("%w: %v", models.ErrValidation, err))
			return
		}
		post, err := s.UpdatePost(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func DeletePost(s *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			respondError(c, fmt.Errorf("%w: invalid post ID", models.ErrValidation))
			return
		}
		if err := s.DeletePost(c.Request.Context(), id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
