package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
)

// DocumentRepository lists course material offered as generation source.
type DocumentRepository struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{pool: pool}
}

// ListByCourse retrieves the candidate documents of a course, newest first.
func (r *DocumentRepository) ListByCourse(ctx context.Context, courseID int64) ([]model.CourseDocument, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, course_id, label, url, created_at
		 FROM course_documents WHERE course_id = $1
		 ORDER BY created_at DESC`, courseID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.CourseDocument
	for rows.Next() {
		var d model.CourseDocument
		if err := rows.Scan(&d.ID, &d.CourseID, &d.Label, &d.URL, &d.CreatedAt); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}
