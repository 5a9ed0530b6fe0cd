package service

import (
	"context"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/sanitize"
)

// GeneratorService handles generator instance lifecycle.
type GeneratorService struct {
	generatorRepo *repository.GeneratorRepository
}

// NewGeneratorService creates a new GeneratorService.
func NewGeneratorService(generatorRepo *repository.GeneratorRepository) *GeneratorService {
	return &GeneratorService{generatorRepo: generatorRepo}
}

// Create creates a generator instance. The display name is sanitized and
// clipped to the column limit, same as question names.
func (s *GeneratorService) Create(ctx context.Context, req model.CreateGeneratorRequest) (*model.Generator, error) {
	g := &model.Generator{
		CourseID: req.CourseID,
		ModuleID: req.ModuleID,
		Name:     sanitize.QuestionName(req.Name),
		Intro:    req.Intro,
	}
	if err := s.generatorRepo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Get retrieves a generator instance, or nil when absent.
func (s *GeneratorService) Get(ctx context.Context, id int64) (*model.Generator, error) {
	return s.generatorRepo.GetByID(ctx, id)
}

// List retrieves all generator instances.
func (s *GeneratorService) List(ctx context.Context) ([]model.Generator, error) {
	return s.generatorRepo.List(ctx)
}

// Update modifies a generator instance. Returns false when it does not exist.
func (s *GeneratorService) Update(ctx context.Context, id int64, req model.UpdateGeneratorRequest) (bool, error) {
	g := &model.Generator{
		ID:    id,
		Name:  sanitize.QuestionName(req.Name),
		Intro: req.Intro,
	}
	return s.generatorRepo.Update(ctx, g)
}

// Delete removes a generator instance. Returns false when it does not exist.
func (s *GeneratorService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.generatorRepo.Delete(ctx, id)
}
