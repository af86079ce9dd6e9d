package renamer

import (
	"strconv"

	"github.com/mydehq/tagrename/internal/matcher"
	"github.com/mydehq/tagrename/internal/tagger"
	"github.com/mydehq/tagrename/internal/types"
)

// Item is a classified file with its rank among same-episode files that need
// a letter suffix. Rank is 0 when no letter applies.
type Item struct {
	File   types.FileEntry
	Record types.EpisodeRecord
	Rank   int
}

// Batch holds the analysis of one directory listing. It is built once and can
// be planned any number of times.
type Batch struct {
	Items         []Item
	Unrecognized  []types.FileEntry
	Counter       map[int]int // episode number → occurrences among Items
	Existing      map[string]bool
	HasAutoSeason bool
}

// Entry pairs a source file with its proposed name.
type Entry struct {
	Source types.FileEntry
	Target string
	Record types.EpisodeRecord
}

// Plan is the outcome of one planning pass.
type Plan struct {
	Valid         []Entry
	Conflicts     []Entry
	Unrecognized  []types.FileEntry
	Series        string
	SeasonLabel   string
	HasAutoSeason bool
}

// Analyze extracts and classifies every file under convention c, counts
// episodes, recovers segments for repeated episodes and assigns letter ranks.
// existing is every name already present in the directory, files or not.
// Files are processed in the given order, which fixes the ranks.
func Analyze(files []types.FileEntry, existing []string, c types.Convention) *Batch {
	b := &Batch{
		Counter:  make(map[int]int),
		Existing: make(map[string]bool, len(existing)),
	}
	for _, name := range existing {
		b.Existing[name] = true
	}

	for _, f := range files {
		tags := tagger.Extract(f.Stem, c)
		rec := matcher.Analyze(f.Stem, tags, c)
		if rec.Season != nil {
			b.HasAutoSeason = true
		}
		if !rec.Recognized() {
			b.Unrecognized = append(b.Unrecognized, f)
			continue
		}
		b.Items = append(b.Items, Item{File: f, Record: rec})
		b.Counter[*rec.Episode]++
	}

	ranks := make(map[int]int)
	for i := range b.Items {
		it := &b.Items[i]
		ep := *it.Record.Episode
		if b.Counter[ep] <= 1 || it.Record.Segment != "" {
			continue
		}
		it.Record.Segment = matcher.ResolveSegment(strconv.Itoa(ep), it.Record.Raw)
		if it.Record.Segment == "" {
			ranks[ep]++
			it.Rank = ranks[ep]
		}
	}

	return b
}

// Plan generates target names for every item. Conflict tracking starts fresh
// on every call, so a second pass with a season label replaces the first.
func (b *Batch) Plan(series, label string) *Plan {
	p := &Plan{
		Unrecognized:  b.Unrecognized,
		Series:        series,
		SeasonLabel:   label,
		HasAutoSeason: b.HasAutoSeason,
	}
	generated := make(map[string]bool, len(b.Items))

	for _, it := range b.Items {
		target := BuildName(series, it.Record, it.File.Ext, b.Counter[*it.Record.Episode], it.Rank, label)
		e := Entry{Source: it.File, Target: target, Record: it.Record}

		if b.Existing[target] || generated[target] {
			p.Conflicts = append(p.Conflicts, e)
			continue
		}
		generated[target] = true
		p.Valid = append(p.Valid, e)
	}
	return p
}

// Empty reports whether there is nothing to rename.
func (p *Plan) Empty() bool {
	return len(p.Valid) == 0
}

type planDocument struct {
	Series       string      `yaml:"series"`
	SeasonLabel  string      `yaml:"season_label,omitempty"`
	Valid        []entryPair `yaml:"valid"`
	Unrecognized []string    `yaml:"unrecognized"`
	Conflicts    []entryPair `yaml:"conflicts"`
}

type entryPair struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// MarshalYAML renders the plan as filename pairs.
func (p *Plan) MarshalYAML() (interface{}, error) {
	doc := planDocument{
		Series:       p.Series,
		SeasonLabel:  p.SeasonLabel,
		Valid:        pairs(p.Valid),
		Unrecognized: make([]string, 0, len(p.Unrecognized)),
		Conflicts:    pairs(p.Conflicts),
	}
	for _, f := range p.Unrecognized {
		doc.Unrecognized = append(doc.Unrecognized, f.Name)
	}
	return doc, nil
}

func pairs(entries []Entry) []entryPair {
	out := make([]entryPair, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryPair{From: e.Source.Name, To: e.Target})
	}
	return out
}
