package matcher

import (
	"regexp"
)

// segmentPatterns follow the episode number, tried in order.
var segmentPatterns = []string{
	`([a-zA-Z])$`,
	`([上中下])$`,
	`[\[(]([a-zA-Z上中下])[\])]`,
}

// ResolveSegment looks for a single segment marker right after episode in stem:
// a trailing Latin letter, a trailing 上/中/下, or either of those in brackets.
// It returns an empty string when nothing matches.
func ResolveSegment(episode, stem string) string {
	ep := regexp.QuoteMeta(episode)
	for _, p := range segmentPatterns {
		re, err := regexp.Compile(ep + p)
		if err != nil {
			continue
		}
		if m := re.FindStringSubmatch(stem); m != nil {
			return m[1]
		}
	}
	return ""
}
