package core

import "strings"

const titleMaxWords = 6

// SummarizeTitle derives a short session title from the first user message:
// the first 6 whitespace-delimited words, joined by single spaces, with an
// ellipsis appended when the message was longer.
func SummarizeTitle(message string) string {
	words := strings.Fields(message)
	if len(words) <= titleMaxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:titleMaxWords], " ") + "..."
}
