package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// GeneratorRepository handles generator instance data access.
type GeneratorRepository struct {
	pool *pgxpool.Pool
}

// NewGeneratorRepository creates a new GeneratorRepository.
func NewGeneratorRepository(pool *pgxpool.Pool) *GeneratorRepository {
	return &GeneratorRepository{pool: pool}
}

// Create inserts a new generator instance.
func (r *GeneratorRepository) Create(ctx context.Context, g *model.Generator) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO generators (course_id, module_id, name, intro)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		g.CourseID, g.ModuleID, g.Name, g.Intro,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

// GetByID retrieves a generator instance, or nil when absent.
func (r *GeneratorRepository) GetByID(ctx context.Context, id int64) (*model.Generator, error) {
	var g model.Generator
	err := r.pool.QueryRow(ctx,
		`SELECT id, course_id, module_id, name, intro, created_at, updated_at
		 FROM generators WHERE id = $1`, id,
	).Scan(&g.ID, &g.CourseID, &g.ModuleID, &g.Name, &g.Intro, &g.CreatedAt, &g.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// List retrieves all generator instances, newest first.
func (r *GeneratorRepository) List(ctx context.Context) ([]model.Generator, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, module_id, name, intro, created_at, updated_at
		 FROM generators ORDER BY id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var generators []model.Generator
	for rows.Next() {
		var g model.Generator
		if err := rows.Scan(&g.ID, &g.CourseID, &g.ModuleID, &g.Name, &g.Intro, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		generators = append(generators, g)
	}
	return generators, rows.Err()
}

// Update modifies a generator instance's name and intro. Returns false when
// no row matched.
func (r *GeneratorRepository) Update(ctx context.Context, g *model.Generator) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE generators SET name = $1, intro = $2, updated_at = NOW()
		 WHERE id = $3`,
		g.Name, g.Intro, g.ID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes a generator instance. Returns false when no row matched.
func (r *GeneratorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM generators WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
