package renamer

import (
	"testing"

	"github.com/mydehq/tagrename/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func entries(names ...string) []types.FileEntry {
	files := make([]types.FileEntry, 0, len(names))
	for _, n := range names {
		stem, ext := n, ""
		for i := len(n) - 1; i > 0; i-- {
			if n[i] == '.' {
				stem, ext = n[:i], n[i+1:]
				break
			}
		}
		files = append(files, types.FileEntry{Name: n, Stem: stem, Ext: ext, Path: "/media/" + n})
	}
	return files
}

func targets(es []Entry) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.Target)
	}
	return out
}

func TestPlan_DuplicateEpisodesGetLetters(t *testing.T) {
	files := entries("[S][05][x].mkv", "[S][05][y].mkv", "[S][05][z].mkv", "[S][06].mkv")
	existing := []string{"[S][05][x].mkv", "[S][05][y].mkv", "[S][05][z].mkv", "[S][06].mkv"}

	b := Analyze(files, existing, types.SquareBracket)
	require.Equal(t, 3, b.Counter[5])

	p := b.Plan("Show", "")
	assert.Equal(t, []string{
		"Show_第5集_a.mkv",
		"Show_第5集_b.mkv",
		"Show_第5集_c.mkv",
		"Show_第6集.mkv",
	}, targets(p.Valid))
	assert.Empty(t, p.Conflicts)

	again := Analyze(files, existing, types.SquareBracket).Plan("Show", "")
	assert.Equal(t, targets(p.Valid), targets(again.Valid), "planning must be deterministic")
}

func TestPlan_SegmentRecoveredForDuplicates(t *testing.T) {
	files := entries("Show 05(b).mp4", "Show 05.mp4")
	b := Analyze(files, nil, types.NoDelimiter)
	require.Len(t, b.Items, 2)
	assert.Equal(t, "b", b.Items[0].Record.Segment)
	assert.Equal(t, 0, b.Items[0].Rank)
	assert.Equal(t, 1, b.Items[1].Rank)

	p := b.Plan("Show", "")
	assert.Equal(t, []string{"Show_第5集_b.mp4", "Show_第5集_a.mp4"}, targets(p.Valid))
}

func TestPlan_ExplicitSegmentMixedWithDuplicates(t *testing.T) {
	files := entries("[小明][01].mp4", "[小明][02].mp4", "[小明][01v2].mp4")
	b := Analyze(files, nil, types.SquareBracket)

	require.Equal(t, 2, b.Counter[1])
	p := b.Plan("小明", "")
	assert.Equal(t, []string{
		"小明_第1集_a.mp4",
		"小明_第2集.mp4",
		"小明_第1集_v2.mp4",
	}, targets(p.Valid))
}

func TestPlan_Unrecognized(t *testing.T) {
	files := entries("[Group][Series].mkv", "[Group][03].mkv")
	p := Analyze(files, nil, types.SquareBracket).Plan("Series", "")

	require.Len(t, p.Unrecognized, 1)
	assert.Equal(t, "[Group][Series].mkv", p.Unrecognized[0].Name)
	assert.Equal(t, []string{"Series_第3集.mkv"}, targets(p.Valid))
}

func TestPlan_ConflictWithExistingFile(t *testing.T) {
	files := entries("[Group][03].mkv")
	existing := []string{"[Group][03].mkv", "Series_第3集.mkv"}

	p := Analyze(files, existing, types.SquareBracket).Plan("Series", "")
	assert.Empty(t, p.Valid)
	require.Len(t, p.Conflicts, 1)
	assert.Equal(t, "Series_第3集.mkv", p.Conflicts[0].Target)
	assert.True(t, p.Empty())
}

func TestPlan_ConflictBetweenGeneratedNames(t *testing.T) {
	// Segments are lower-cased, so both files plan to the same name.
	files := entries("[S01E02A].mkv", "[s01e02a].mkv")
	p := Analyze(files, nil, types.SquareBracket).Plan("Show", "")

	assert.Equal(t, []string{"Show_第1季_第2集_a.mkv"}, targets(p.Valid))
	require.Len(t, p.Conflicts, 1)
	assert.Equal(t, "[s01e02a].mkv", p.Conflicts[0].Source.Name)
}

func TestPlan_SecondPassWithSeasonLabel(t *testing.T) {
	files := entries("[A][01].mkv", "[A][02].mkv")
	existing := []string{"[A][01].mkv", "[A][02].mkv", "A_第2集.mkv"}
	b := Analyze(files, existing, types.SquareBracket)
	require.False(t, b.HasAutoSeason)

	first := b.Plan("A", "")
	assert.Equal(t, []string{"A_第1集.mkv"}, targets(first.Valid))
	assert.Equal(t, []string{"A_第2集.mkv"}, targets(first.Conflicts))

	second := b.Plan("A", "第一季")
	assert.Equal(t, []string{"A_第一季_第1集.mkv", "A_第一季_第2集.mkv"}, targets(second.Valid))
	assert.Empty(t, second.Conflicts, "conflict sets are rebuilt for the second pass")
	assert.Equal(t, "第一季", second.SeasonLabel)

	// The first plan is untouched by the second pass.
	assert.Equal(t, []string{"A_第1集.mkv"}, targets(first.Valid))
}

func TestAnalyze_HasAutoSeason(t *testing.T) {
	b := Analyze(entries("[S02E01].mkv", "[03].mkv"), nil, types.SquareBracket)
	assert.True(t, b.HasAutoSeason)
}

func TestPlan_MarshalYAML(t *testing.T) {
	files := entries("[A][01].mkv", "[A][x].mkv")
	p := Analyze(files, nil, types.SquareBracket).Plan("A", "")

	out, err := yaml.Marshal(p)
	require.NoError(t, err)

	var doc struct {
		Series       string              `yaml:"series"`
		Valid        []map[string]string `yaml:"valid"`
		Unrecognized []string            `yaml:"unrecognized"`
		Conflicts    []map[string]string `yaml:"conflicts"`
	}
	require.NoError(t, yaml.Unmarshal(out, &doc))
	assert.Equal(t, "A", doc.Series)
	assert.Equal(t, []map[string]string{{"from": "[A][01].mkv", "to": "A_第1集.mkv"}}, doc.Valid)
	assert.Equal(t, []string{"[A][x].mkv"}, doc.Unrecognized)
	assert.Empty(t, doc.Conflicts)
}
