package postservice

import "regexp"

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

func sanitizeContent(content string) string {
	return scriptTagPattern.ReplaceAllString(content, "")
}
