package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/quizforge/quizforge-backend/internal/genapi"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/repository"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/rs/zerolog"
)

// Orchestration failure classes surfaced to the handler layer.
var (
	ErrGeneratorNotFound = errors.New("generator not found")
	ErrBatchNotFound     = errors.New("draft batch not found or expired")
	ErrNoCategory        = errors.New("no question category bound to course")
)

// GenerationService orchestrates the pipeline: call the generation service,
// normalize its response into drafts, park the batch for review, and commit
// the operator's selection into the question store one draft at a time.
type GenerationService struct {
	client        *genapi.Client
	generatorRepo *repository.GeneratorRepository
	categoryRepo  *repository.CategoryRepository
	questionRepo  *repository.QuestionRepository
	draftRepo     *repository.DraftRepository
	threshold     float64
	limit         int
	log           zerolog.Logger
}

// NewGenerationService creates a new GenerationService.
func NewGenerationService(
	client *genapi.Client,
	generatorRepo *repository.GeneratorRepository,
	categoryRepo *repository.CategoryRepository,
	questionRepo *repository.QuestionRepository,
	draftRepo *repository.DraftRepository,
	threshold float64,
	limit int,
	log zerolog.Logger,
) *GenerationService {
	return &GenerationService{
		client:        client,
		generatorRepo: generatorRepo,
		categoryRepo:  categoryRepo,
		questionRepo:  questionRepo,
		draftRepo:     draftRepo,
		threshold:     threshold,
		limit:         limit,
		log:           log,
	}
}

// Generate invokes the generation service through a generator instance and
// returns the normalized draft batch. The batch is parked in Redis so the
// review step can commit by index later. A *genapi.TransportError passes
// through untouched for the handler to report.
func (s *GenerationService) Generate(ctx context.Context, generatorID int64, req model.GenerateRequest) (*model.DraftBatch, error) {
	gen, err := s.generatorRepo.GetByID(ctx, generatorID)
	if err != nil {
		return nil, err
	}
	if gen == nil {
		return nil, ErrGeneratorNotFound
	}

	genReq := genapi.NewGenerationRequest(
		gen.CourseID, gen.ModuleID, s.threshold, s.limit,
		req.Query, req.QuestionTypes, req.Count,
	)

	resp, err := s.client.Generate(ctx, genReq)
	if err != nil {
		return nil, err
	}

	drafts := genapi.Normalize(resp, s.log)

	batch := &model.DraftBatch{
		ID:          uuid.New().String(),
		GeneratorID: gen.ID,
		CourseID:    gen.CourseID,
		Drafts:      drafts,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.draftRepo.Save(ctx, batch); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("batch_id", batch.ID).
		Int64("generator_id", gen.ID).
		Int("drafts", len(drafts)).
		Msg("Draft batch created")

	return batch, nil
}

// GetBatch loads a pending draft batch for review.
func (s *GenerationService) GetBatch(ctx context.Context, batchID string) (*model.DraftBatch, error) {
	batch, err := s.draftRepo.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}
	return batch, nil
}

// Commit persists the selected drafts of a batch, attributed to actorID.
// Each draft is written in its own transaction; one failing draft is
// reported in its result and does not abort the rest of the selection.
// The batch is dropped only when every selection succeeded, so a partially
// failed commit stays retryable.
func (s *GenerationService) Commit(ctx context.Context, batchID string, actorID int64, req model.CommitRequest) ([]model.CommitResult, error) {
	batch, err := s.draftRepo.Get(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, ErrBatchNotFound
	}

	category, err := s.categoryRepo.ResolveByCourse(ctx, batch.CourseID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNoCategory
	}

	results := make([]model.CommitResult, 0, len(req.Selections))
	allOK := true

	for _, sel := range req.Selections {
		if sel.Index < 0 || sel.Index >= len(batch.Drafts) {
			results = append(results, model.CommitResult{
				Index: sel.Index,
				Error: string(response.ErrInvalidID),
			})
			allOK = false
			continue
		}

		draft := batch.Drafts[sel.Index]
		if sel.Title != nil {
			draft.Title = *sel.Title
		}
		if sel.Options != nil && draft.Kind == model.KindMultipleChoice {
			draft.Options = *sel.Options
		}

		questionID, err := s.questionRepo.CreateFromDraft(ctx, category.ID, actorID, draft)
		if err != nil {
			s.log.Error().Err(err).
				Str("batch_id", batchID).
				Int("index", sel.Index).
				Msg("Draft commit failed")
			results = append(results, model.CommitResult{
				Index: sel.Index,
				Error: string(writeErrCode(err)),
			})
			allOK = false
			continue
		}

		results = append(results, model.CommitResult{
			Index:      sel.Index,
			QuestionID: questionID,
		})
	}

	if allOK {
		if err := s.draftRepo.Delete(ctx, batchID); err != nil {
			s.log.Warn().Err(err).Str("batch_id", batchID).Msg("Failed to drop committed batch")
		}
	}

	return results, nil
}

// writeErrCode maps a writer failure onto the per-draft error code reported
// to the operator.
func writeErrCode(err error) response.ErrCode {
	switch {
	case errors.Is(err, repository.ErrInvalidCategory):
		return response.ErrInvalidCategory
	case errors.Is(err, repository.ErrQuestionInsert):
		return response.ErrQuestionInsert
	case errors.Is(err, repository.ErrEssayOptionsInsert):
		return response.ErrQuestionInsert
	case errors.Is(err, repository.ErrBankEntryInsert):
		return response.ErrBankEntryInsert
	case errors.Is(err, repository.ErrVersionInsert):
		return response.ErrVersionInsert
	case errors.Is(err, repository.ErrAnswerInsert):
		return response.ErrAnswerInsert
	default:
		return response.ErrInternal
	}
}
