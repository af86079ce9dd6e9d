// Package tagger cuts candidate tags out of filename stems.
package tagger

import (
	"regexp"

	"github.com/mydehq/tagrename/internal/types"
	"golang.org/x/text/unicode/norm"
)

var (
	squareRe    = regexp.MustCompile(`\[(.*?)\]`)
	roundRe     = regexp.MustCompile(`\((.*?)\)`)
	fullWidthRe = regexp.MustCompile(`【(.*?)】`)
	dotRe       = regexp.MustCompile(`\.(.*?)\.`)
	digitRunRe  = regexp.MustCompile(`\d+`)
)

// minDigitRun is the shortest bare digit run treated as a tag.
const minDigitRun = 2

// Extract returns the tags of stem under convention c, in order of appearance.
// Duplicates are preserved. An empty result means no tags were found.
func Extract(stem string, c types.Convention) []string {
	stem = norm.NFC.String(stem)

	switch c {
	case types.SquareBracket:
		return submatches(squareRe, stem)
	case types.RoundBracket:
		return submatches(roundRe, stem)
	case types.FullWidthBracket:
		return submatches(fullWidthRe, stem)
	case types.DotDelimited:
		return submatches(dotRe, stem)
	case types.NoDelimiter:
		return digitRuns(stem)
	}
	return nil
}

func submatches(re *regexp.Regexp, s string) []string {
	var tags []string
	for _, m := range re.FindAllStringSubmatch(s, -1) {
		tags = append(tags, m[1])
	}
	return tags
}

// digitRuns returns every whole digit run of at least minDigitRun digits.
// \d+ is greedy, so a match is always bounded by non-digits and never a sub-run.
func digitRuns(s string) []string {
	var tags []string
	for _, run := range digitRunRe.FindAllString(s, -1) {
		if len(run) >= minDigitRun {
			tags = append(tags, run)
		}
	}
	return tags
}
