package renamer

import (
	"testing"

	"github.com/mydehq/tagrename/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestBuildName(t *testing.T) {
	tests := []struct {
		name  string
		rec   types.EpisodeRecord
		ext   string
		count int
		rank  int
		label string
		want  string
	}{
		{
			name:  "Episode only",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(3)},
			ext:   "mkv",
			count: 1,
			want:  "小明_第3集.mkv",
		},
		{
			name:  "Detected season",
			rec:   types.EpisodeRecord{Season: types.IntPtr(2), Episode: types.IntPtr(5)},
			ext:   "mp4",
			count: 1,
			want:  "小明_第2季_第5集.mp4",
		},
		{
			name:  "Detected season wins over label",
			rec:   types.EpisodeRecord{Season: types.IntPtr(2), Episode: types.IntPtr(5)},
			ext:   "mp4",
			count: 1,
			label: "第一季",
			want:  "小明_第2季_第5集.mp4",
		},
		{
			name:  "Manual label verbatim",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(5)},
			ext:   "mp4",
			count: 1,
			label: "第一季",
			want:  "小明_第一季_第5集.mp4",
		},
		{
			name:  "Segment verbatim",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(12), Segment: "上"},
			ext:   "mkv",
			count: 2,
			want:  "小明_第12集_上.mkv",
		},
		{
			name:  "Segment suppresses letter",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(12), Segment: "v2"},
			ext:   "mkv",
			count: 3,
			rank:  2,
			want:  "小明_第12集_v2.mkv",
		},
		{
			name:  "Letter from rank",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(5)},
			ext:   "mkv",
			count: 3,
			rank:  3,
			want:  "小明_第5集_c.mkv",
		},
		{
			name:  "Unique episode gets no letter",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(5)},
			ext:   "mkv",
			count: 1,
			rank:  1,
			want:  "小明_第5集.mkv",
		},
		{
			name:  "No extension",
			rec:   types.EpisodeRecord{Episode: types.IntPtr(1)},
			count: 1,
			want:  "小明_第1集",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildName("小明", tt.rec, tt.ext, tt.count, tt.rank, tt.label)
			assert.Equal(t, tt.want, got)
			// Pure: same inputs, same output.
			assert.Equal(t, got, BuildName("小明", tt.rec, tt.ext, tt.count, tt.rank, tt.label))
		})
	}
}

func TestValidateSeasonLabel(t *testing.T) {
	assert.NoError(t, ValidateSeasonLabel(""))
	assert.NoError(t, ValidateSeasonLabel("第一季"))
	for _, bad := range []string{"S1/2", `a\b`, "a:b", "a*", "a?", `"a"`, "<a>", "a|b"} {
		var nameErr types.ErrInvalidName
		assert.ErrorAs(t, ValidateSeasonLabel(bad), &nameErr, "label %q", bad)
	}
}
