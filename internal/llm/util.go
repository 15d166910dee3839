package llm

import "strings"

// CleanJSONBlock removes markdown code fences and any surrounding prose from
// a model response, returning the first JSON object or array found.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		// Skip a language identifier on the fence line
		if idx := strings.Index(text, "\n"); idx >= 0 {
			firstLine := text[:idx]
			if len(firstLine) < 20 && !strings.ContainsAny(firstLine, " {[") {
				text = text[idx+1:]
			}
		}
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") || strings.HasPrefix(text, "[") {
		if obj := ExtractJSONObject(text); obj != "" {
			return obj
		}
		return text
	}

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return text
	}
	if obj := ExtractJSONObject(text[start:]); obj != "" {
		return obj
	}
	return text
}

// ExtractJSONObject returns the balanced JSON object or array at the start of
// text, ignoring brackets inside string literals. It returns "" when text does
// not start with a bracket or the brackets never balance.
func ExtractJSONObject(text string) string {
	if text == "" || (text[0] != '{' && text[0] != '[') {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(text); i++ {
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
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth == 0 {
				return text[:i+1]
			}
		}
	}
	return ""
}
