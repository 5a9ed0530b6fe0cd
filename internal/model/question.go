package model

import "time"

// Defaults applied to every question this pipeline creates. Generated
// candidates all carry the same weight; grading nuance is left to a later
// manual edit in the question bank UI.
const (
	DefaultMark = 1.0
	// DefaultPenalty is the fraction deducted per wrong try (one third).
	DefaultPenalty = 0.3333333
)

// Version lifecycle status values.
const VersionStatusReady = "ready"

// Question is the identity record of a stored question.
type Question struct {
	ID           int64        `json:"id"`
	CategoryID   int64        `json:"category_id"`
	Name         string       `json:"name"`
	QuestionText string       `json:"question_text"`
	QType        QuestionKind `json:"qtype"`
	DefaultMark  float64      `json:"default_mark"`
	Penalty      float64      `json:"penalty"`
	CreatedBy    int64        `json:"created_by"`
	ModifiedBy   int64        `json:"modified_by"`
	Stamp        string       `json:"stamp"`
	Version      int          `json:"version"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// EssayOptions is the fixed per-question configuration block for essay
// questions: free-text response required, no attachments, no word limits.
type EssayOptions struct {
	ID                 int64 `json:"id"`
	QuestionID         int64 `json:"question_id"`
	ResponseRequired   bool  `json:"response_required"`
	ResponseFieldLines int   `json:"response_field_lines"`
	Attachments        int   `json:"attachments"`
	AttachmentsReq     int   `json:"attachments_required"`
	MinWordLimit       *int  `json:"min_word_limit,omitempty"`
	MaxWordLimit       *int  `json:"max_word_limit,omitempty"`
}

// Answer is one stored answer option of a multiple-choice question.
// Fraction is exactly 1.0 (correct) or 0.0 (incorrect); partial credit is
// not modeled for generated questions.
type Answer struct {
	ID         int64   `json:"id"`
	QuestionID int64   `json:"question_id"`
	Answer     string  `json:"answer"`
	Fraction   float64 `json:"fraction"`
	Feedback   string  `json:"feedback"`
}

// BankEntry groups all historical versions of one logical question. This
// pipeline always creates exactly one version per entry, but the indirection
// is what lets the question bank grow history later.
type BankEntry struct {
	ID                 int64  `json:"id"`
	QuestionCategoryID int64  `json:"question_category_id"`
	OwnerID            int64  `json:"owner_id"`
	Stamp              string `json:"stamp"`
}

// QuestionVersion links a bank entry to one concrete question revision.
type QuestionVersion struct {
	ID                  int64  `json:"id"`
	QuestionBankEntryID int64  `json:"question_bank_entry_id"`
	QuestionID          int64  `json:"question_id"`
	Version             int    `json:"version"`
	Status              string `json:"status"`
}
