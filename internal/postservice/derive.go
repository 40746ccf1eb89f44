package postservice

import "strings"

const (
	// Average reading speed used for the read-time estimate.
	wordsPerMinute = 200

	excerptLength = 150
)

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// calculateReadTime returns the estimated reading time in whole minutes,
// rounded up and never below one.
func calculateReadTime(content string) int {
	minutes := (wordCount(content) + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}

	return minutes
}

// makeExcerpt truncates content to the first 150 characters and appends an
// ellipsis.
func makeExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) > excerptLength {
		runes = runes[:excerptLength]
	}

	return string(runes) + "..."
}
