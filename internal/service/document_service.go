package service

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// DocumentService exposes the course material the operator can pick as
// generation source.
type DocumentService struct {
	documentRepo *repository.DocumentRepository
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(documentRepo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// ListByCourse retrieves the candidate documents of a course.
func (s *DocumentService) ListByCourse(ctx context.Context, courseID int64) ([]model.CourseDocument, error) {
	return s.documentRepo.ListByCourse(ctx, courseID)
}
