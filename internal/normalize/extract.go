package normalize

import "strings"

// ExtractArray locates the first top-level JSON array in free text.
//
// Matching rule: the span starts at the first '[' in the text; bracket
// depth is tracked from there, ignoring '[' and ']' inside JSON string
// literals (backslash escapes handled); the span ends where the depth
// returns to zero. If the depth never closes, the span falls back to the
// substring between the first '[' and the last ']' in the text. Returns
// false when no candidate span exists.
func ExtractArray(text string) (string, bool) {
	start := strings.IndexByte(text, '[')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	// Unbalanced brackets: best-effort first-'['/last-']' slice.
	end := strings.LastIndexByte(text, ']')
	if end > start {
		return text[start : end+1], true
	}
	return "", false
}
