// Package matcher infers season, episode and segment markers from tags.
package matcher

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mydehq/tagrename/internal/types"
)

var (
	seasonEpisodeRe = regexp.MustCompile(`(?i)^s(\d+)e(\d+)(\D*)$`)
	digitSuffixRe   = regexp.MustCompile(`^(\d+)(\D.*)$`)
	pureDigitRe     = regexp.MustCompile(`^\d+$`)
	trailingRe      = regexp.MustCompile(`(\d+)(\D+)$`)
)

// resolutions are frame heights that commonly appear as bare numbers next to the
// real episode number. They only lose to another pure-digit candidate.
var resolutions = map[int]bool{
	480: true, 576: true, 720: true, 1080: true, 1440: true, 2160: true, 4320: true,
}

// Analyze infers an episode record from the tags of stem.
//
// Rules are tried in order and the first that yields an episode wins:
// an SxxEyy tag, a digits+suffix tag, the largest pure-digit tag, and for
// NoDelimiter a trailing digits+suffix run on the raw stem.
func Analyze(stem string, tags []string, c types.Convention) types.EpisodeRecord {
	rec := types.EpisodeRecord{Raw: stem}

	for _, tag := range tags {
		if m := seasonEpisodeRe.FindStringSubmatch(tag); m != nil {
			rec.Season = atoi(m[1])
			rec.Episode = atoi(m[2])
			rec.Segment = strings.ToLower(strings.TrimSpace(m[3]))
			return rec
		}
	}

	for _, tag := range tags {
		if m := digitSuffixRe.FindStringSubmatch(tag); m != nil {
			rec.Episode = atoi(m[1])
			rec.Segment = strings.TrimSpace(m[2])
			return rec
		}
	}

	if ep, ok := maxEpisode(tags); ok {
		rec.Episode = types.IntPtr(ep)
		return rec
	}

	if c == types.NoDelimiter {
		if m := trailingRe.FindStringSubmatch(stem); m != nil {
			rec.Episode = atoi(m[1])
			rec.Segment = strings.TrimSpace(m[2])
		}
	}

	return rec
}

// maxEpisode picks the largest pure-digit tag. Resolution-like values are set
// aside while any other candidate exists. Years and large frame counts still
// win; this is a heuristic.
func maxEpisode(tags []string) (int, bool) {
	var candidates, noise []int
	for _, tag := range tags {
		if !pureDigitRe.MatchString(tag) {
			continue
		}
		n, err := strconv.Atoi(tag)
		if err != nil {
			continue
		}
		if resolutions[n] {
			noise = append(noise, n)
		} else {
			candidates = append(candidates, n)
		}
	}
	if len(candidates) == 0 {
		candidates = noise
	}
	if len(candidates) == 0 {
		return 0, false
	}

	best := candidates[0]
	for _, n := range candidates[1:] {
		if n > best {
			best = n
		}
	}
	return best, true
}

func atoi(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
