package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/onyxlab/onyx/internal/domain/model"
	"github.com/onyxlab/onyx/internal/server/http/dto"
	"github.com/onyxlab/onyx/internal/server/http/middleware"
)

// CurrentUserID extracts authenticated user identifier from context.
func CurrentUserID(c *gin.Context) int64 {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return 0
	}
	id, _ := val.(int64)
	return id
}

// CurrentUserEmail extracts authenticated user email from context.
func CurrentUserEmail(c *gin.Context) string {
	val, ok := c.Get(middleware.UserEmailContextKey)
	if !ok {
		return ""
	}
	email, _ := val.(string)
	return email
}

func toMaterialResponse(material model.Material) dto.MaterialResponse {
	return dto.MaterialResponse{
		ID:        material.ID,
		PublicID:  material.PublicID,
		Title:     material.Title,
		Content:   material.Content,
		Tags:      material.Tags,
		CreatedAt: material.CreatedAt,
		UpdatedAt: material.UpdatedAt,
	}
}

func toPublicMaterialResponse(material model.Material) dto.PublicMaterialResponse {
	return dto.PublicMaterialResponse{
		ID:      material.ID,
		Title:   material.Title,
		Content: material.Content,
		Tags:    material.Tags,
	}
}
