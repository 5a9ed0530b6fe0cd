package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// CategoryRepository resolves question categories.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// ResolveByCourse returns the question category bound to a course context,
// or nil when the course has none. Every generated question of a course
// lands in this single category.
func (r *CategoryRepository) ResolveByCourse(ctx context.Context, courseID int64) (*model.QuestionCategory, error) {
	var cat model.QuestionCategory
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, name
		 FROM question_categories WHERE course_id = $1
		 ORDER BY id LIMIT 1`, courseID,
	).Scan(&cat.ID, &cat.CourseID, &cat.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}
