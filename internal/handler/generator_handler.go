package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
	"github.com/quizforge/quizforge-backend/internal/validator"
)

// GeneratorHandler handles generator instance endpoints.
type GeneratorHandler struct {
	generatorService *service.GeneratorService
}

// NewGeneratorHandler creates a new GeneratorHandler.
func NewGeneratorHandler(generatorService *service.GeneratorService) *GeneratorHandler {
	return &GeneratorHandler{generatorService: generatorService}
}

// CreateGenerator godoc
// POST /api/v1/generators
func (h *GeneratorHandler) CreateGenerator(c *gin.Context) {
	var req model.CreateGeneratorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	gen, err := h.generatorService.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"generator": gen})
}

// GetGenerator godoc
// GET /api/v1/generators/:id
func (h *GeneratorHandler) GetGenerator(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	gen, err := h.generatorService.Get(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if gen == nil {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"generator": gen})
}

// ListGenerators godoc
// GET /api/v1/generators
func (h *GeneratorHandler) ListGenerators(c *gin.Context) {
	generators, err := h.generatorService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if generators == nil {
		generators = []model.Generator{}
	}

	response.Success(c, http.StatusOK, gin.H{"generators": generators})
}

// UpdateGenerator godoc
// PUT /api/v1/generators/:id
func (h *GeneratorHandler) UpdateGenerator(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateGeneratorRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	ok, err := h.generatorService.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "generator updated"})
}

// DeleteGenerator godoc
// DELETE /api/v1/generators/:id
func (h *GeneratorHandler) DeleteGenerator(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	ok, err := h.generatorService.Delete(c.Request.Context(), id)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	if !ok {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "generator deleted"})
}
