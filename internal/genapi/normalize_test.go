package genapi

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/quizforge/quizforge-backend/internal/model"
	"github.com/rs/zerolog"
)

// decodeResponse builds a GenerationResponse the way the client does, so
// tests exercise the same loosely typed values (json numbers, []any).
func decodeResponse(t *testing.T, raw string) GenerationResponse {
	t.Helper()
	var resp GenerationResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return resp
}

func TestNormalize(t *testing.T) {
	log := zerolog.Nop()

	t.Run("MultipleChoiceCorrectnessMapping", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "Multiple", "title": "Pick B",
			 "choices": ["A", "B", "C"], "answer": ["B"]}
		]}`)

		drafts := Normalize(resp, log)
		if len(drafts) != 1 {
			t.Fatalf("got %d drafts, want 1", len(drafts))
		}
		d := drafts[0]
		if d.Kind != model.KindMultipleChoice {
			t.Errorf("kind = %q", d.Kind)
		}
		if len(d.Options) != 3 {
			t.Fatalf("got %d options, want 3", len(d.Options))
		}

		correct := 0
		for _, opt := range d.Options {
			if opt.IsCorrect {
				correct++
				if opt.Text != "B" {
					t.Errorf("correct option text = %q, want %q", opt.Text, "B")
				}
			}
		}
		if correct != 1 {
			t.Errorf("got %d correct options, want exactly 1", correct)
		}
	})

	t.Run("EssayHasNoOptions", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "Essay", "title": "Explain recursion"}
		]}`)

		drafts := Normalize(resp, log)
		if len(drafts) != 1 {
			t.Fatalf("got %d drafts, want 1", len(drafts))
		}
		if drafts[0].Kind != model.KindEssay {
			t.Errorf("kind = %q", drafts[0].Kind)
		}
		if drafts[0].Options != nil {
			t.Errorf("essay draft carries options: %v", drafts[0].Options)
		}
	})

	t.Run("UnrecognizedTypeDroppedOrderPreserved", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "Essay", "title": "first"},
			{"type": "TrueFalse", "title": "dropped"},
			{"type": "Choice", "title": "second", "choices": ["x"], "answer": ["x"]}
		]}`)

		drafts := Normalize(resp, log)
		if len(drafts) != 2 {
			t.Fatalf("got %d drafts, want 2", len(drafts))
		}
		if drafts[0].Title != "first" || drafts[1].Title != "second" {
			t.Errorf("order not preserved: %q, %q", drafts[0].Title, drafts[1].Title)
		}
	})

	t.Run("MissingParsedYieldsEmpty", func(t *testing.T) {
		if drafts := Normalize(decodeResponse(t, `{"status": "ok"}`), log); len(drafts) != 0 {
			t.Errorf("got %d drafts, want 0", len(drafts))
		}
	})

	t.Run("MalformedParsedYieldsEmpty", func(t *testing.T) {
		if drafts := Normalize(decodeResponse(t, `{"parsed": "oops"}`), log); len(drafts) != 0 {
			t.Errorf("got %d drafts, want 0", len(drafts))
		}
	})

	t.Run("ChoiceWithoutChoicesKept", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "Multiple", "title": "optionless"}
		]}`)

		drafts := Normalize(resp, log)
		if len(drafts) != 1 {
			t.Fatalf("got %d drafts, want 1 (empty options, not dropped)", len(drafts))
		}
		if len(drafts[0].Options) != 0 {
			t.Errorf("got %d options, want 0", len(drafts[0].Options))
		}
	})

	t.Run("CaseInsensitiveTypeMatch", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "essay", "title": "a"},
			{"type": "MULTIPLE", "title": "b", "choices": [], "answer": []}
		]}`)

		drafts := Normalize(resp, log)
		if len(drafts) != 2 {
			t.Fatalf("got %d drafts, want 2", len(drafts))
		}
	})

	t.Run("Pure", func(t *testing.T) {
		resp := decodeResponse(t, `{"parsed": [
			{"type": "Multiple", "title": "q1", "choices": ["A", "B"], "answer": ["A"]},
			{"type": "Essay", "title": "q2"}
		]}`)

		first := Normalize(resp, log)
		second := Normalize(resp, log)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("normalization is not idempotent:\n%v\n%v", first, second)
		}
	})
}
