package service

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
)

// QuestionService reads back stored questions. All writes go through the
// generation pipeline; this subsystem never updates or deletes question rows.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	categoryRepo *repository.CategoryRepository
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, categoryRepo *repository.CategoryRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, categoryRepo: categoryRepo}
}

// Get retrieves one question with its answer options.
func (s *QuestionService) Get(ctx context.Context, id int64) (*model.Question, []model.Answer, error) {
	q, err := s.questionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	answers, err := s.questionRepo.ListAnswers(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return q, answers, nil
}

// ListByCourse retrieves all questions in the course's category. Returns
// ErrNoCategory when the course has no bound category.
func (s *QuestionService) ListByCourse(ctx context.Context, courseID int64) ([]model.Question, error) {
	category, err := s.categoryRepo.ResolveByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNoCategory
	}
	return s.questionRepo.ListByCategory(ctx, category.ID)
}
