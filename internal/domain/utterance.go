package domain

import "strings"

// PatternSeparator joins utterance words when building the exact-match
// pattern, mirroring the snake_case naming of artifact files.
const PatternSeparator = "_"

// minTokenLen filters filler words ("a", "to", "of") out of token matching.
const minTokenLen = 3

// NormalizeUtterance lower-cases and trims a raw transcription.
func NormalizeUtterance(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// UtterancePattern collapses whitespace runs into single separators,
// case-folded, e.g. "Move Forward please" -> "move_forward_please".
func UtterancePattern(utterance string) string {
	return strings.Join(strings.Fields(strings.ToLower(utterance)), PatternSeparator)
}

// SignificantTokens returns the case-folded words of the utterance longer
// than two characters, in order.
func SignificantTokens(utterance string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(utterance)) {
		if len(word) >= minTokenLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// NameTokens splits an artifact name into tokens, treating dots and
// separators as delimiters, e.g. "move_forward.sh" -> ["move" "forward" "sh"].
func NameTokens(name string) []string {
	replaced := strings.NewReplacer(".", " ", PatternSeparator, " ").Replace(strings.ToLower(name))
	return strings.Fields(replaced)
}
