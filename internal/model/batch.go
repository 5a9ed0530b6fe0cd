package model

import "time"

// DraftBatch is one normalized generation result held in Redis between the
// generate call and the operator's commit. Drafts are referenced by their
// position, which stays stable for the life of the batch.
type DraftBatch struct {
	ID          string          `json:"id"`
	GeneratorID int64           `json:"generator_id"`
	CourseID    int64           `json:"course_id"`
	Drafts      []QuestionDraft `json:"drafts"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GenerateRequest is the payload for invoking the generation service through
// a generator instance.
type GenerateRequest struct {
	Query         string   `json:"query" binding:"required,min=1"`
	QuestionTypes []string `json:"question_types" binding:"omitempty,dive,min=1"`
	Count         int      `json:"count" binding:"min=0"`
	Document      string   `json:"document" binding:"omitempty"`
}

// DraftSelection picks one draft out of a batch for committing, optionally
// with operator edits applied on top of the normalized content.
type DraftSelection struct {
	Index   int            `json:"index" binding:"min=0"`
	Title   *string        `json:"title,omitempty"`
	Options *[]DraftOption `json:"options,omitempty"`
}

// CommitRequest is the payload for committing selected drafts of a batch.
type CommitRequest struct {
	Selections []DraftSelection `json:"selections" binding:"required,min=1,dive"`
}

// CommitResult reports the outcome of persisting one selected draft.
// Exactly one of QuestionID or Error is meaningful.
type CommitResult struct {
	Index      int    `json:"index"`
	QuestionID int64  `json:"question_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
