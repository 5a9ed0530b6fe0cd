package model

import "testing"

func TestParseQuestionKind(t *testing.T) {
	cases := []struct {
		raw  string
		want QuestionKind
	}{
		{"Multiple", KindMultipleChoice},
		{"Choice", KindMultipleChoice},
		{"multiple", KindMultipleChoice},
		{"CHOICE", KindMultipleChoice},
		{"Essay", KindEssay},
		{"essay", KindEssay},
		{" Essay ", KindEssay},
		{"TrueFalse", KindUnrecognized},
		{"", KindUnrecognized},
		{"multiple_choice", KindUnrecognized},
	}

	for _, tc := range cases {
		if got := ParseQuestionKind(tc.raw); got != tc.want {
			t.Errorf("ParseQuestionKind(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestNewStamp(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		s := NewStamp()
		if s == "" {
			t.Fatal("empty stamp")
		}
		if seen[s] {
			t.Fatalf("duplicate stamp: %s", s)
		}
		seen[s] = true
	}
}
