package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mydehq/tagrename/internal/renamer"
	"github.com/mydehq/tagrename/internal/types"
)

func TestRenderReport(t *testing.T) {
	p := &renamer.Plan{
		Valid: []renamer.Entry{
			{Source: types.FileEntry{Name: "[A][01].mkv"}, Target: "A_第1集.mkv"},
		},
		Unrecognized: []types.FileEntry{{Name: "notes.txt"}},
		Conflicts: []renamer.Entry{
			{Source: types.FileEntry{Name: "[A][02].mkv"}, Target: "A_第2集.mkv"},
		},
	}

	var buf bytes.Buffer
	RenderReport(&buf, p, "最终修改方案")
	out := buf.String()

	for _, want := range []string{
		"最终修改方案",
		"[可修改文件]",
		"[A][01].mkv → A_第1集.mkv",
		"[未识别文件]",
		"notes.txt",
		"[命名冲突文件]",
		"[A][02].mkv → A_第2集.mkv",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderReport() missing %q\nGot:\n%s", want, out)
		}
	}
}

func TestRenderReport_OmitsEmptyCategories(t *testing.T) {
	p := &renamer.Plan{
		Valid: []renamer.Entry{
			{Source: types.FileEntry{Name: "[A][01].mkv"}, Target: "A_第1集.mkv"},
		},
	}

	var buf bytes.Buffer
	RenderReport(&buf, p, "")
	out := buf.String()

	if strings.Contains(out, "[未识别文件]") || strings.Contains(out, "[命名冲突文件]") {
		t.Errorf("RenderReport() printed empty categories:\n%s", out)
	}
	if strings.Contains(out, "[ ") {
		t.Errorf("RenderReport() printed a title without one:\n%s", out)
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	RenderSummary(&buf, 2, 3)
	if !strings.Contains(buf.String(), "2/3") {
		t.Errorf("RenderSummary() = %q; want it to contain 2/3", buf.String())
	}
}

func TestColorizeEvent(t *testing.T) {
	tests := []struct {
		event renamer.Event
		want  []string
	}{
		{
			event: renamer.Event{Type: renamer.EventSuccess, Message: "Renamed: a.mkv → b.mkv"},
			want:  []string{"Renamed:", "a.mkv", "→", "b.mkv"},
		},
		{
			event: renamer.Event{Type: renamer.EventError, Message: "Failed: a.mkv → b.mkv (target already exists)"},
			want:  []string{"Failed:", "a.mkv", "b.mkv (target already exists)"},
		},
		{
			event: renamer.Event{Type: renamer.EventInfo, Message: "plain message"},
			want:  []string{"plain message"},
		},
	}

	for _, tt := range tests {
		got := ColorizeEvent(tt.event)
		for _, w := range tt.want {
			if !strings.Contains(got, w) {
				t.Errorf("ColorizeEvent(%q) = %q; missing %q", tt.event.Message, got, w)
			}
		}
	}
}

func TestValidateSeries(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"小明", false},
		{"  Show  ", false},
		{"", true},
		{"   ", true},
		{"A/B", true},
	}
	for _, tt := range tests {
		if err := ValidateSeries(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("ValidateSeries(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if got := ParseLevel("debug").String(); got != "debug" {
		t.Errorf("ParseLevel(debug) = %s", got)
	}
	if got := ParseLevel("bogus").String(); got != "info" {
		t.Errorf("ParseLevel(bogus) = %s; want info", got)
	}
}
