package search

import (
	"fmt"
	"strings"
)

// Summarize flattens results into the Title/Content block that gets pasted
// into prompts. contentLimit > 0 truncates each result's content to that
// many runes (model context is the scarce resource here).
func Summarize(results []Result, contentLimit int) string {
	var b strings.Builder
	for i, r := range results {
		if i > 0 {
			b.WriteString("\n")
		}
		content := r.Content
		if contentLimit > 0 {
			if runes := []rune(content); len(runes) > contentLimit {
				content = string(runes[:contentLimit])
			}
		}
		fmt.Fprintf(&b, "Title: %s\nContent: %s", r.Title, content)
	}
	return b.String()
}
