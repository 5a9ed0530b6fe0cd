package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/genapi"
	"github.com/quizforge/quizforge-backend/internal/middleware"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
	"github.com/quizforge/quizforge-backend/internal/validator"
)

// GenerationHandler handles the generate → review → commit workflow.
type GenerationHandler struct {
	generationService *service.GenerationService
	documentService   *service.DocumentService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService *service.GenerationService, documentService *service.DocumentService) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
		documentService:   documentService,
	}
}

// ListDocuments godoc
// GET /api/v1/courses/:course_id/documents
// Lists the course material the operator can pick as generation source.
func (h *GenerationHandler) ListDocuments(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	docs, err := h.documentService.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if docs == nil {
		docs = []model.CourseDocument{}
	}

	response.Success(c, http.StatusOK, gin.H{"documents": docs})
}

// Generate godoc
// POST /api/v1/generators/:id/generate
// Calls the generation service and returns the normalized draft batch.
// A generation failure is one operator-visible error; no drafts exist yet,
// so nothing is partially saved.
func (h *GenerationHandler) Generate(c *gin.Context) {
	generatorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.GenerateRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	batch, err := h.generationService.Generate(c.Request.Context(), generatorID, req)
	if err != nil {
		var te *genapi.TransportError
		switch {
		case errors.Is(err, service.ErrGeneratorNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		case errors.As(err, &te):
			response.FailWithDetail(c, http.StatusBadGateway, response.ErrGenerationFailed, te.Error())
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"batch_id": batch.ID,
		"drafts":   batch.Drafts,
	})
}

// GetBatch godoc
// GET /api/v1/batches/:batch_id
// Re-reads a pending draft batch for review.
func (h *GenerationHandler) GetBatch(c *gin.Context) {
	batch, err := h.generationService.GetBatch(c.Request.Context(), c.Param("batch_id"))
	if err != nil {
		if errors.Is(err, service.ErrBatchNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrBatchNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"batch": batch})
}

// CommitBatch godoc
// POST /api/v1/batches/:batch_id/commit
// Persists the selected drafts. Results are reported per draft so the
// operator can see exactly which candidates were saved.
func (h *GenerationHandler) CommitBatch(c *gin.Context) {
	var req model.CommitRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	actorID := middleware.OperatorID(c)
	results, err := h.generationService.Commit(c.Request.Context(), c.Param("batch_id"), actorID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBatchNotFound):
			response.Fail(c, http.StatusNotFound, response.ErrBatchNotFound)
		case errors.Is(err, service.ErrNoCategory):
			response.Fail(c, http.StatusUnprocessableEntity, response.ErrInvalidCategory)
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}
