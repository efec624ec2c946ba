package summarizer

import "strings"

// Style selects the output-length bounds for a summary.
type Style string

const (
	StyleShort    Style = "short"
	StyleNormal   Style = "normal"
	StyleDetailed Style = "detailed"
)

// Bounds are the (max, min) output-length pair handed to the model, in
// tokens as defined by the model.
type Bounds struct {
	MaxLength int
	MinLength int
}

func defaultBounds() map[Style]Bounds {
	return map[Style]Bounds{
		StyleShort:    {MaxLength: 80, MinLength: 20},
		StyleNormal:   {MaxLength: 150, MinLength: 40},
		StyleDetailed: {MaxLength: 220, MinLength: 70},
	}
}

// ParseStyle normalizes a style name. Unknown or empty names resolve to
// the normal style.
func ParseStyle(s string) Style {
	switch Style(strings.ToLower(strings.TrimSpace(s))) {
	case StyleShort:
		return StyleShort
	case StyleDetailed:
		return StyleDetailed
	default:
		return StyleNormal
	}
}
