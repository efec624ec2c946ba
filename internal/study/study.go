// Package study derives study material from a summary string: key bullet
// points, open-ended questions and fill-in-the-blank items. All functions
// are pure and deterministic; calling one twice on the same summary yields
// identical output. An empty summary yields no items.
package study

import (
	"fmt"
	"strings"
)

// Blank is one fill-in-the-blank item: the blanked sentence plus the word
// that was removed.
type Blank struct {
	Question string
	Answer   string
}

// Options tune the fill-in-the-blank heuristics. The midpoint word choice
// and these thresholds are deliberate heuristics with no deeper intent.
type Options struct {
	Max              int
	Marker           string
	MinSentenceWords int
	MinAnswerLen     int
}

// DefaultOptions returns the standard fill-in-the-blank settings.
func DefaultOptions() Options {
	return Options{
		Max:              6,
		Marker:           "____",
		MinSentenceWords: 5,
		MinAnswerLen:     4,
	}
}

// answerCutset is trimmed from a blanked word before it becomes an answer.
const answerCutset = ",."

// sentences splits a summary on sentence-terminating periods and drops
// empty pieces.
func sentences(summary string) []string {
	parts := strings.Split(summary, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Bullets extracts up to max key points from a summary, in original order.
// Each piece is trimmed of surrounding whitespace and leading bullet or
// dash characters.
func Bullets(summary string, max int) []string {
	var bullets []string
	for _, s := range sentences(summary) {
		if len(bullets) >= max {
			break
		}
		if b := strings.Trim(s, " •-"); b != "" {
			bullets = append(bullets, b)
		}
	}
	return bullets
}

// OpenQuestions renders the first max sentences as fixed-template
// explain-in-your-own-words prompts.
func OpenQuestions(summary string, max int) []string {
	var questions []string
	for i, s := range sentences(summary) {
		if i >= max {
			break
		}
		questions = append(questions, fmt.Sprintf("Q%d: Explain in your own words: \"%s\"", i+1, s))
	}
	return questions
}

// FillInBlanks walks the sentences in order and blanks the midpoint word
// of each one long enough to quiz. Sentences with fewer than
// MinSentenceWords words are skipped, as are those whose midpoint word is
// shorter than MinAnswerLen after trimming punctuation. Skipped sentences
// do not consume the quota.
func FillInBlanks(summary string, opts Options) []Blank {
	if opts.Max <= 0 {
		opts = DefaultOptions()
	}

	var blanks []Blank
	for _, s := range sentences(summary) {
		if len(blanks) >= opts.Max {
			break
		}

		words := strings.Fields(s)
		if len(words) < opts.MinSentenceWords {
			continue
		}

		mid := len(words) / 2
		answer := strings.Trim(words[mid], answerCutset)
		if len(answer) < opts.MinAnswerLen {
			continue
		}

		words[mid] = opts.Marker
		blanks = append(blanks, Blank{
			Question: fmt.Sprintf("Q%d: %s", len(blanks)+1, strings.Join(words, " ")),
			Answer:   answer,
		})
	}
	return blanks
}
