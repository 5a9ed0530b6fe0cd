package genapi

import (
	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/rs/zerolog"
)

// Normalize maps a generation response onto the strict draft shape the
// writer consumes. It is pure and order preserving: drafts come out in the
// order the service produced them, which is the index the review step keys on.
//
// The mapping is deliberately schema tolerant. A missing or malformed
// "parsed" collection yields zero drafts (generation producing nothing usable
// is an expected outcome, not a fault), items with an unknown type are
// dropped, and unknown extra fields are ignored.
func Normalize(resp GenerationResponse, log zerolog.Logger) []model.QuestionDraft {
	items, ok := resp["parsed"].([]any)
	if !ok {
		return nil
	}

	drafts := make([]model.QuestionDraft, 0, len(items))
	for i, raw := range items {
		item, ok := raw.(map[string]any)
		if !ok {
			log.Debug().Int("index", i).Msg("Skipping non-object generation item")
			continue
		}

		kind := model.ParseQuestionKind(stringField(item, "type"))
		if kind == model.KindUnrecognized {
			log.Debug().
				Int("index", i).
				Str("type", stringField(item, "type")).
				Msg("Skipping generation item with unrecognized type")
			continue
		}

		draft := model.QuestionDraft{
			Title: stringField(item, "title"),
			Kind:  kind,
		}
		if kind == model.KindMultipleChoice {
			draft.Options = normalizeOptions(item)
		}
		drafts = append(drafts, draft)
	}
	return drafts
}

// normalizeOptions builds the option list of a multiple-choice item. An
// option is correct iff its exact text appears in the item's answer list.
// No "choices" field yields an empty option list, not a dropped draft.
func normalizeOptions(item map[string]any) []model.DraftOption {
	choices, ok := item["choices"].([]any)
	if !ok {
		return nil
	}

	correct := make(map[string]bool)
	if answers, ok := item["answer"].([]any); ok {
		for _, a := range answers {
			if s, ok := a.(string); ok {
				correct[s] = true
			}
		}
	}

	options := make([]model.DraftOption, 0, len(choices))
	for _, c := range choices {
		text, ok := c.(string)
		if !ok {
			continue
		}
		options = append(options, model.DraftOption{
			Text:      text,
			IsCorrect: correct[text],
		})
	}
	return options
}

func stringField(item map[string]any, key string) string {
	s, _ := item[key].(string)
	return s
}
