package model

import "strings"

// QuestionKind is the closed set of question variants this pipeline can
// persist. External type strings are mapped into it by ParseQuestionKind;
// nothing else constructs a kind from raw input.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multichoice"
	KindEssay          QuestionKind = "essay"
	// KindUnrecognized marks an external type string the pipeline does not
	// know. Drafts never carry it — the normalizer filters them out.
	KindUnrecognized QuestionKind = ""
)

// ParseQuestionKind maps an external type string onto the closed kind set.
// Matching is case-insensitive; the generation service has labelled
// multiple-choice items both "Multiple" and "Choice" across versions.
func ParseQuestionKind(raw string) QuestionKind {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "multiple", "choice":
		return KindMultipleChoice
	case "essay":
		return KindEssay
	default:
		return KindUnrecognized
	}
}

// DraftOption is one candidate answer option of a multiple-choice draft.
type DraftOption struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}

// QuestionDraft is an in-memory, not-yet-persisted question candidate produced
// by normalizing the generation service response. Options is only meaningful
// when Kind is KindMultipleChoice; an empty option list is a valid (if
// unanswerable) draft and is accepted as-is.
type QuestionDraft struct {
	Title   string        `json:"title"`
	Kind    QuestionKind  `json:"kind"`
	Options []DraftOption `json:"options,omitempty"`
}
