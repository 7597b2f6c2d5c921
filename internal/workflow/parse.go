package workflow

import (
	"regexp"
	"strings"
)

// The tagged output format is a wire contract shared with the prompt
// templates: a completion must carry a [NAME] line followed by a
// [DESCRIPTION] block. Neither pattern may change independently of the
// prompts that demand the format.
var (
	nameRe = regexp.MustCompile(`(?s)\[NAME\](.+?)\n`)
	descRe = regexp.MustCompile(`(?s)\[DESCRIPTION\](.+)`)
)

// ParseTagged extracts the title and description from a completion.
// ok is false when either tag is missing; callers decide the degraded
// fallback so the sentinel wording can differ per service.
func ParseTagged(content string) (Output, bool) {
	nameMatch := nameRe.FindStringSubmatch(content)
	descMatch := descRe.FindStringSubmatch(content)
	if nameMatch == nil || descMatch == nil {
		return Output{}, false
	}
	return Output{
		Title:       strings.TrimSpace(nameMatch[1]),
		Description: strings.TrimSpace(descMatch[1]),
	}, true
}
