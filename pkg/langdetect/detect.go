// Package langdetect provides language identification for fenced code
// blocks. It uses go-enry to canonicalize fence info-string tags and to
// detect a language for fences that carry no info string at all.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

const langText = "text"

// Canonical normalizes a fence language tag to its lowercase canonical
// name, resolving aliases ("golang" -> "go", "js" -> "javascript").
// Unknown tags are returned unchanged apart from lowercasing.
func Canonical(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	if lang, ok := enry.GetLanguageByAlias(tag); ok {
		return normalize(lang)
	}

	return strings.ToLower(tag)
}

// Detect returns the detected language for code content.
// Returns "text" if detection fails or confidence is low.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// A shebang is the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Fall back to the classifier over common fence languages.
	candidates := []string{
		"Go", "Python", "Shell", "JavaScript", "TypeScript",
		"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
		"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
