package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/onyxlab/onyx/internal/domain/errors"
	"github.com/onyxlab/onyx/internal/server/http/dto"
	"github.com/onyxlab/onyx/internal/usecase"
)

// MaterialHandler manages material CRUD and the public read endpoint.
type MaterialHandler struct {
	facade MaterialFacade
	logger *slog.Logger
}

// NewMaterialHandler constructs MaterialHandler.
func NewMaterialHandler(facade MaterialFacade, logger *slog.Logger) *MaterialHandler {
	return &MaterialHandler{facade: facade, logger: logger}
}

// List handles GET /materials.
func (h *MaterialHandler) List(c *gin.Context) {
	userID := CurrentUserID(c)
	materials, err := h.facade.Materials(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list materials failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load materials"})
		return
	}

	response := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		response = append(response, toMaterialResponse(m))
	}
	c.JSON(http.StatusOK, response)
}

// Create handles POST /materials.
func (h *MaterialHandler) Create(c *gin.Context) {
	userID := CurrentUserID(c)

	var req dto.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	material, err := h.facade.CreateMaterial(c.Request.Context(), userID, usecase.MaterialInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title is required"})
		default:
			h.logger.Error("create material failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create material"})
		}
		return
	}

	c.JSON(http.StatusCreated, toMaterialResponse(*material))
}

// Update handles PUT /materials/:id.
func (h *MaterialHandler) Update(c *gin.Context) {
	userID := CurrentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid material id"})
		return
	}

	var req dto.MaterialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	material, err := h.facade.UpdateMaterial(c.Request.Context(), userID, id, usecase.MaterialInput{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "title is required"})
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "material not found"})
		default:
			h.logger.Error("update material failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to update material"})
		}
		return
	}

	c.JSON(http.StatusOK, toMaterialResponse(*material))
}

// Delete handles DELETE /materials/:id.
func (h *MaterialHandler) Delete(c *gin.Context) {
	userID := CurrentUserID(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid material id"})
		return
	}

	material, err := h.facade.DeleteMaterial(c.Request.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "material not found"})
		default:
			h.logger.Error("delete material failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to delete material"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.DeleteMaterialResponse{
		Message:  "deleted",
		Material: toMaterialResponse(*material),
	})
}

// Public handles GET /materials/public/:public_id without authentication.
func (h *MaterialHandler) Public(c *gin.Context) {
	publicID := c.Param("public_id")

	material, err := h.facade.PublicMaterial(c.Request.Context(), publicID)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "material not found"})
		default:
			h.logger.Error("public material lookup failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to load material"})
		}
		return
	}

	c.JSON(http.StatusOK, toPublicMaterialResponse(*material))
}
