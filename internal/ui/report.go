package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/mydehq/tagrename/internal/renamer"
)

const ruleWidth = 60

// RenderReport writes the three plan categories as line lists. Empty
// categories are omitted. title is printed above the lists when set.
func RenderReport(w io.Writer, p *renamer.Plan, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, StyleDim.Render(strings.Repeat("=", ruleWidth)))
	if title != "" {
		fmt.Fprintln(w, StyleCommand.Render("[ "+title+" ]"))
	}

	if len(p.Valid) > 0 {
		fmt.Fprintf(w, "\n%s\n", StyleHeader.Render("[可修改文件]"))
		for _, e := range p.Valid {
			fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(e.Source.Name), StyleDim.Render("→"), StyleCommand.Render(e.Target))
		}
	}

	if len(p.Unrecognized) > 0 {
		fmt.Fprintf(w, "\n%s\n", StyleWarn.Render("[未识别文件]"))
		for _, f := range p.Unrecognized {
			fmt.Fprintf(w, "  %s\n", StylePath.Render(f.Name))
		}
	}

	if len(p.Conflicts) > 0 {
		fmt.Fprintf(w, "\n%s\n", StyleError.Render("[命名冲突文件]"))
		for _, e := range p.Conflicts {
			fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(e.Source.Name), StyleDim.Render("→"), StyleError.Render(e.Target))
		}
	}
}

// RenderSummary writes the final "renamed N/M" line.
func RenderSummary(w io.Writer, success, attempted int) {
	line := fmt.Sprintf("操作完成，成功重命名 %d/%d 个文件", success, attempted)
	if success == attempted {
		line = StyleHeader.Render(line)
	} else {
		line = StyleWarn.Render(line)
	}
	fmt.Fprintf(w, "\n%s\n", line)
}

// ColorizeEvent adds CLI styling to rename event messages such as
// "Renamed: old.mkv → new.mkv" or "Failed: old.mkv → new.mkv (reason)".
func ColorizeEvent(e renamer.Event) string {
	msg := e.Message
	labelStyle := StyleHeader
	switch e.Type {
	case renamer.EventError:
		labelStyle = StyleError
	case renamer.EventWarning:
		labelStyle = StyleWarn
	}

	parts := strings.SplitN(msg, " → ", 2)
	if len(parts) != 2 {
		return msg
	}
	left, right := parts[0], parts[1]

	var label, oldName string
	if idx := strings.Index(left, ": "); idx >= 0 {
		label = labelStyle.Render(left[:idx+1]) + " "
		oldName = left[idx+2:]
	} else {
		oldName = left
	}

	return fmt.Sprintf("%s%s %s %s",
		label,
		StyleDim.Render(oldName),
		StyleDim.Render("→"),
		StyleCommand.Render(right),
	)
}
