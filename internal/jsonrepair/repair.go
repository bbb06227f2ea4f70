// Package jsonrepair cleans up the near-JSON that generative models tend
// to emit: Markdown code fences, commentary around the payload, full-line
// comments, and trailing commas. Every step is idempotent, so running the
// pipeline over its own output is a no-op.
package jsonrepair

import (
	"regexp"
	"strings"
)

var (
	// Matches lines whose only content is a // comment. Anchored to the
	// start of the line so "https://..." inside string values survives.
	lineCommentPattern = regexp.MustCompile(`(?m)^[ \t]*//.*$`)

	trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)
)

// Clean runs the full repair pipeline: strip fences, drop full-line
// comments, drop trailing commas, then slice to the outermost object.
func Clean(text string) string {
	cleaned := StripFences(text)
	cleaned = StripLineComments(cleaned)
	cleaned = StripTrailingCommas(cleaned)
	return SliceOuterObject(cleaned)
}

// Salvage is the second, more aggressive attempt: it goes back to the
// original unrepaired text, slices the outermost braces, and removes
// trailing commas. The bool reports whether an object span was found.
func Salvage(original string) (string, bool) {
	start := strings.Index(original, "{")
	end := strings.LastIndex(original, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return StripTrailingCommas(original[start : end+1]), true
}

// StripFences removes Markdown code-fence markers.
func StripFences(text string) string {
	cleaned := strings.ReplaceAll(text, "```json", "")
	return strings.ReplaceAll(cleaned, "```", "")
}

// StripLineComments removes lines that contain only a // comment.
func StripLineComments(text string) string {
	return lineCommentPattern.ReplaceAllString(text, "")
}

// StripTrailingCommas removes commas immediately preceding a closing
// brace or bracket.
func StripTrailingCommas(text string) string {
	return trailingCommaPattern.ReplaceAllString(text, "$1")
}

// SliceOuterObject trims any preamble or postamble prose around the
// outermost JSON object. If no object span is found the trimmed input is
// returned unchanged.
func SliceOuterObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return strings.TrimSpace(text)
}
