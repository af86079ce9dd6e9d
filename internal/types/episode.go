package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Convention selects how tags are cut out of a filename stem.
// Values match the numbered options of the interactive menu.
type Convention int

const (
	SquareBracket    Convention = iota + 1 // [tag]
	RoundBracket                           // (tag)
	FullWidthBracket                       // 【tag】
	DotDelimited                           // .tag.
	NoDelimiter                            // bare digit runs
)

// Conventions lists every supported convention in menu order.
var Conventions = []Convention{SquareBracket, RoundBracket, FullWidthBracket, DotDelimited, NoDelimiter}

func (c Convention) String() string {
	switch c {
	case SquareBracket:
		return "square"
	case RoundBracket:
		return "round"
	case FullWidthBracket:
		return "fullwidth"
	case DotDelimited:
		return "dot"
	case NoDelimiter:
		return "none"
	default:
		return fmt.Sprintf("convention(%d)", int(c))
	}
}

// Label returns the menu label shown to the user.
func (c Convention) Label() string {
	switch c {
	case SquareBracket:
		return "半角方括号 []"
	case RoundBracket:
		return "半角括号 ()"
	case FullWidthBracket:
		return "全角方括号 【】"
	case DotDelimited:
		return "点分符号 .tag."
	case NoDelimiter:
		return "无特殊符号"
	default:
		return c.String()
	}
}

// Valid reports whether c is one of the supported conventions.
func (c Convention) Valid() bool {
	return c >= SquareBracket && c <= NoDelimiter
}

// ParseConvention accepts a menu number ("1".."5") or a convention name.
func ParseConvention(s string) (Convention, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		c := Convention(n)
		if c.Valid() {
			return c, nil
		}
		return 0, ErrInvalidConvention{Value: s}
	}
	for _, c := range Conventions {
		if c.String() == s {
			return c, nil
		}
	}
	return 0, ErrInvalidConvention{Value: s}
}

// EpisodeRecord is the structured result of analysing one filename.
type EpisodeRecord struct {
	Season  *int
	Episode *int   // nil means the file could not be classified
	Segment string // Sub-part marker ("a", "上", "v2"), empty when absent
	Raw     string // Original filename stem
}

// Recognized reports whether an episode number was inferred.
func (r EpisodeRecord) Recognized() bool {
	return r.Episode != nil
}

// FileEntry is a regular file in the target directory.
type FileEntry struct {
	Name string // Full filename
	Stem string // Name without extension
	Ext  string // Extension without the leading dot, may be empty
	Path string // Absolute path
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}
