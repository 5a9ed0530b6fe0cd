package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestClean(t *testing.T) {
	t.Run("StripsMarkup", func(t *testing.T) {
		got := Clean("<b>What is</b> <script>alert(1)</script>recursion?")
		if got != "What is recursion?" {
			t.Errorf("Clean() = %q, want %q", got, "What is recursion?")
		}
	})

	t.Run("DecodesEntities", func(t *testing.T) {
		got := Clean("Tom &amp; Jerry &lt;3")
		if got != "Tom & Jerry <3" {
			t.Errorf("Clean() = %q, want %q", got, "Tom & Jerry <3")
		}
	})

	t.Run("TrimsWhitespace", func(t *testing.T) {
		got := Clean("  padded title\n")
		if got != "padded title" {
			t.Errorf("Clean() = %q, want %q", got, "padded title")
		}
	})
}

func TestQuestionName(t *testing.T) {
	t.Run("LongTitleClippedTo255", func(t *testing.T) {
		raw := strings.Repeat("a", 300)
		got := QuestionName(raw)
		if len(got) != MaxNameLen {
			t.Fatalf("len = %d, want %d", len(got), MaxNameLen)
		}
		// Truncation keeps a byte-identical prefix, no ellipsis.
		if got != raw[:MaxNameLen] {
			t.Error("truncated name is not a prefix of the input")
		}
	})

	t.Run("ShortTitleUntouched", func(t *testing.T) {
		if got := QuestionName("short"); got != "short" {
			t.Errorf("QuestionName() = %q", got)
		}
	})
}

func TestQuestionText(t *testing.T) {
	raw := strings.Repeat("x", MaxTextLen+100)
	got := QuestionText(raw)
	if len(got) != MaxTextLen {
		t.Fatalf("len = %d, want %d", len(got), MaxTextLen)
	}
}

func TestTruncate(t *testing.T) {
	t.Run("RuneBoundary", func(t *testing.T) {
		// "é" is two bytes; clipping at one byte must back off, not split.
		got := Truncate("é", 1)
		if got != "" {
			t.Errorf("Truncate() = %q, want empty", got)
		}

		s := strings.Repeat("é", 200)
		clipped := Truncate(s, 255)
		if !utf8.ValidString(clipped) {
			t.Error("clipped string is not valid UTF-8")
		}
		if len(clipped) > 255 {
			t.Errorf("len = %d, want <= 255", len(clipped))
		}
	})

	t.Run("WithinLimit", func(t *testing.T) {
		if got := Truncate("abc", 255); got != "abc" {
			t.Errorf("Truncate() = %q", got)
		}
	})
}
