// Package renamer turns analysed episode records into a conflict-free rename
// plan and applies it.
package renamer

import (
	"strconv"
	"strings"

	"github.com/mydehq/tagrename/internal/types"
)

// illegalChars may not appear in a series name or season label.
const illegalChars = `\/:*?"<>|`

// BuildName builds the target filename for rec.
//
// Clauses are joined with "_": series, 第N季 (or label when no season was
// detected), 第N集, then the segment. When the record has no segment and its
// episode occurs more than once in the batch (count > 1), a letter derived
// from rank (1 → a) is used instead.
func BuildName(series string, rec types.EpisodeRecord, ext string, count, rank int, label string) string {
	parts := []string{series}

	if rec.Season != nil {
		parts = append(parts, "第"+strconv.Itoa(*rec.Season)+"季")
	} else if label != "" {
		parts = append(parts, label)
	}

	if rec.Episode != nil {
		parts = append(parts, "第"+strconv.Itoa(*rec.Episode)+"集")
	}

	if rec.Segment != "" {
		parts = append(parts, rec.Segment)
	} else if count > 1 && rank > 0 {
		parts = append(parts, letter(rank))
	}

	base := strings.Join(parts, "_")
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// letter maps a 1-indexed rank to a, b, c. Ranks past z continue in code
// point order.
func letter(rank int) string {
	return string(rune('a' + rank - 1))
}

// ValidateName checks that value can be embedded in a filename.
func ValidateName(field, value string) error {
	if strings.ContainsAny(value, illegalChars) {
		return types.ErrInvalidName{Field: field, Value: value}
	}
	return nil
}

// ValidateSeasonLabel checks a manual season label. Empty means no label.
func ValidateSeasonLabel(label string) error {
	return ValidateName("season label", label)
}
