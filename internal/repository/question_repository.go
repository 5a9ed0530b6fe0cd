package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/quizforge/quizforge-backend/internal/sanitize"
)

// Writer failure classes. Each one identifies the insert that rejected the
// aggregate; the transaction guarantees the store is untouched either way.
var (
	ErrInvalidCategory    = errors.New("invalid question category")
	ErrQuestionInsert     = errors.New("question insert failed")
	ErrEssayOptionsInsert = errors.New("essay options insert failed")
	ErrBankEntryInsert    = errors.New("bank entry insert failed")
	ErrVersionInsert      = errors.New("question version insert failed")
	ErrAnswerInsert       = errors.New("answer insert failed")
)

// QuestionRepository persists question aggregates and reads them back.
type QuestionRepository struct {
	pool *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(pool *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{pool: pool}
}

// CreateFromDraft persists one draft as a complete question aggregate:
// question row, type-specific payload (essay options or answers), bank entry
// and version record. All writes run in a single transaction — a failure at
// any step rolls the whole aggregate back, so readers see either everything
// or nothing.
//
// The acting user is passed in explicitly and recorded as author and bank
// entry owner. Returns the new question's id.
func (r *QuestionRepository) CreateFromDraft(ctx context.Context, categoryID, actorID int64, draft model.QuestionDraft) (int64, error) {
	if categoryID <= 0 {
		return 0, ErrInvalidCategory
	}

	name := sanitize.QuestionName(draft.Title)
	text := sanitize.QuestionText(draft.Title)

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) // No-op after commit.

	var questionID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO questions
		   (category_id, name, question_text, qtype, default_mark, penalty,
		    created_by, modified_by, stamp, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $7, $8, 1)
		 RETURNING id`,
		categoryID, name, text, draft.Kind,
		model.DefaultMark, model.DefaultPenalty,
		actorID, model.NewStamp(),
	).Scan(&questionID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrQuestionInsert, err)
	}

	if draft.Kind == model.KindEssay {
		// Fixed configuration: editor response required, no attachments,
		// no word limits.
		_, err = tx.Exec(ctx,
			`INSERT INTO qtype_essay_options
			   (question_id, response_required, response_field_lines,
			    attachments, attachments_required, min_word_limit, max_word_limit)
			 VALUES ($1, TRUE, 15, 0, 0, NULL, NULL)`,
			questionID,
		)
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEssayOptionsInsert, err)
		}
	}

	var bankEntryID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO question_bank_entries (question_category_id, owner_id, stamp)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		categoryID, actorID, model.NewStamp(),
	).Scan(&bankEntryID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBankEntryInsert, err)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO question_versions (question_bank_entry_id, question_id, version, status)
		 VALUES ($1, $2, 1, $3)`,
		bankEntryID, questionID, model.VersionStatusReady,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrVersionInsert, err)
	}

	if draft.Kind == model.KindMultipleChoice {
		for _, opt := range draft.Options {
			fraction := 0.0
			if opt.IsCorrect {
				fraction = 1.0
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO question_answers (question_id, answer, fraction, feedback)
				 VALUES ($1, $2, $3, '')`,
				questionID, opt.Text, fraction,
			)
			if err != nil {
				return 0, fmt.Errorf("%w: %v", ErrAnswerInsert, err)
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return questionID, nil
}

// GetByID reads back a question identity record.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*model.Question, error) {
	var q model.Question
	err := r.pool.QueryRow(ctx,
		`SELECT id, category_id, name, question_text, qtype, default_mark, penalty,
		        created_by, modified_by, stamp, version, created_at, updated_at
		 FROM questions WHERE id = $1`, id,
	).Scan(&q.ID, &q.CategoryID, &q.Name, &q.QuestionText, &q.QType,
		&q.DefaultMark, &q.Penalty, &q.CreatedBy, &q.ModifiedBy,
		&q.Stamp, &q.Version, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// ListAnswers retrieves the stored answer options of a question in insert
// order.
func (r *QuestionRepository) ListAnswers(ctx context.Context, questionID int64) ([]model.Answer, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, question_id, answer, fraction, feedback
		 FROM question_answers WHERE question_id = $1
		 ORDER BY id`, questionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []model.Answer
	for rows.Next() {
		var a model.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Answer, &a.Fraction, &a.Feedback); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

// ListByCategory retrieves all questions in a category, newest first.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int64) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, category_id, name, question_text, qtype, default_mark, penalty,
		        created_by, modified_by, stamp, version, created_at, updated_at
		 FROM questions WHERE category_id = $1
		 ORDER BY id DESC`, categoryID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.CategoryID, &q.Name, &q.QuestionText, &q.QType,
			&q.DefaultMark, &q.Penalty, &q.CreatedBy, &q.ModifiedBy,
			&q.Stamp, &q.Version, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
