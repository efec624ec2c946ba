package study

import (
	"reflect"
	"strings"
	"testing"
)

func TestBullets(t *testing.T) {
	tests := []struct {
		name    string
		summary string
		max     int
		want    []string
	}{
		{
			name:    "trailing fragment discarded",
			summary: "A cat sat. A dog ran. ",
			max:     8,
			want:    []string{"A cat sat", "A dog ran"},
		},
		{
			name:    "leading dash and bullet trimmed",
			summary: "- First point. • Second point.",
			max:     8,
			want:    []string{"First point", "Second point"},
		},
		{
			name:    "max cap respected",
			summary: "One thing. Two thing. Three thing.",
			max:     2,
			want:    []string{"One thing", "Two thing"},
		},
		{
			name:    "empty summary",
			summary: "",
			max:     8,
			want:    nil,
		},
		{
			name:    "only periods",
			summary: "...",
			max:     8,
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Bullets(tt.summary, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Bullets() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestOpenQuestions(t *testing.T) {
	got := OpenQuestions("The sky is blue.", 6)
	want := []string{`Q1: Explain in your own words: "The sky is blue"`}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OpenQuestions() = %#v, want %#v", got, want)
	}
}

func TestOpenQuestionsNumbering(t *testing.T) {
	got := OpenQuestions("First fact. Second fact. Third fact.", 2)
	if len(got) != 2 {
		t.Fatalf("OpenQuestions() returned %d items, want 2", len(got))
	}
	if !strings.HasPrefix(got[0], "Q1: ") || !strings.HasPrefix(got[1], "Q2: ") {
		t.Errorf("OpenQuestions() ordinals wrong: %v", got)
	}
}

func TestOpenQuestionsEmpty(t *testing.T) {
	if got := OpenQuestions("", 6); got != nil {
		t.Errorf("OpenQuestions(empty) = %#v, want nil", got)
	}
}

func TestFillInBlanks(t *testing.T) {
	// 8 words, midpoint index 4 = "powerhouse"
	summary := "The mitochondria is the powerhouse of the cell."

	got := FillInBlanks(summary, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("FillInBlanks() returned %d items, want 1", len(got))
	}
	if got[0].Answer != "powerhouse" {
		t.Errorf("Answer = %q, want %q", got[0].Answer, "powerhouse")
	}
	wantQ := "Q1: The mitochondria is the ____ of the cell"
	if got[0].Question != wantQ {
		t.Errorf("Question = %q, want %q", got[0].Question, wantQ)
	}
}

func TestFillInBlanksShortSentenceSkipped(t *testing.T) {
	// 4 words or fewer never produce an item
	got := FillInBlanks("A dog ran fast.", DefaultOptions())
	if len(got) != 0 {
		t.Errorf("FillInBlanks(4-word sentence) = %#v, want none", got)
	}
}

func TestFillInBlanksShortAnswerSkipped(t *testing.T) {
	// 7 words, midpoint index 3 = "sat" (3 chars) -> skipped entirely
	got := FillInBlanks("A big cat sat on a mat.", DefaultOptions())
	if len(got) != 0 {
		t.Errorf("FillInBlanks(short midpoint word) = %#v, want none", got)
	}
}

func TestFillInBlanksSkipDoesNotConsumeQuota(t *testing.T) {
	// First sentence is skipped (short), second is blankable; with Max 1
	// the second sentence must still fill the quota and carry ordinal 1.
	summary := "A dog ran. The mitochondria is the powerhouse of the cell."

	opts := DefaultOptions()
	opts.Max = 1
	got := FillInBlanks(summary, opts)
	if len(got) != 1 {
		t.Fatalf("FillInBlanks() returned %d items, want 1", len(got))
	}
	if !strings.HasPrefix(got[0].Question, "Q1: ") {
		t.Errorf("Question = %q, want Q1 ordinal", got[0].Question)
	}
	if got[0].Answer != "powerhouse" {
		t.Errorf("Answer = %q, want %q", got[0].Answer, "powerhouse")
	}
}

func TestFillInBlanksPunctuationTrimmed(t *testing.T) {
	// 11 words, midpoint index 5 = "today," whose comma must be trimmed.
	summary := "Solar panels capture sunlight efficiently today, converting photons into electric current."

	got := FillInBlanks(summary, DefaultOptions())
	if len(got) != 1 {
		t.Fatalf("FillInBlanks() returned %d items, want 1", len(got))
	}
	if got[0].Answer != "today" {
		t.Errorf("Answer = %q, want %q", got[0].Answer, "today")
	}
}

func TestFillInBlanksIdempotent(t *testing.T) {
	summary := "The mitochondria is the powerhouse of the cell. Photosynthesis converts sunlight into chemical energy for plants."

	first := FillInBlanks(summary, DefaultOptions())
	second := FillInBlanks(summary, DefaultOptions())
	if !reflect.DeepEqual(first, second) {
		t.Errorf("FillInBlanks() not idempotent:\nfirst:  %#v\nsecond: %#v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("FillInBlanks() returned %d items, want 2", len(first))
	}
}

func TestFillInBlanksEmptySummary(t *testing.T) {
	if got := FillInBlanks("", DefaultOptions()); got != nil {
		t.Errorf("FillInBlanks(empty) = %#v, want nil", got)
	}
}
