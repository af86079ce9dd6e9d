// Package tui is a full-screen bubbletea front end for the rename flow.
package tui

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/renamer"
	"github.com/mydehq/tagrename/internal/types"
	"github.com/mydehq/tagrename/internal/ui"
)

type state int

const (
	stateConvention state = iota
	stateSeriesInput
	stateScanning
	stateConfirmation
	stateSeasonInput
	stateRenaming
	stateFinished
)

var (
	titleStyle    = ui.StyleCommand
	subTitleStyle = ui.StyleDim

	infoStyle    = ui.StyleCommand
	successStyle = ui.StyleHeader
	warningStyle = ui.StyleWarn
	errorStyle   = ui.StyleError

	actionBarMsgStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Background(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Padding(0, 1)

	actionBarKeyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "57", Dark: "57"}).
				Background(lipgloss.AdaptiveColor{Light: "229", Dark: "229"}).
				Padding(0, 1).
				Bold(true)
)

type scanDoneMsg struct {
	batch *renamer.Batch
	err   error
}

type eventMsg renamer.Event

type renameDoneMsg struct {
	ops []renamer.RenameOperation
	err error
}

type Model struct {
	state      state
	path       string
	formats    []string
	convention types.Convention
	series     string
	label      string
	err        error
	quitting   bool

	// Content
	table table.Model
	input textinput.Model
	batch *renamer.Batch
	plan  *renamer.Plan
	ops   []renamer.RenameOperation

	// Logs
	events []string

	width     int
	height    int
	eventChan chan renamer.Event
}

// NewModel returns a model for the directory at path. formats restricts the
// scanned extensions; empty means every regular file.
func NewModel(path string, formats []string) Model {
	absPath, _ := filepath.Abs(path)

	columns := []table.Column{
		{Title: "Source File", Width: 40},
		{Title: "Target Name", Width: 40},
		{Title: "Status", Width: 12},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10), // dynamically updated
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true).
		Foreground(lipgloss.Color("86"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 50

	return Model{
		state:   stateConvention,
		path:    absPath,
		formats: formats,
		table:   t,
		input:   ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "q":
			if m.state == stateConvention || m.state == stateConfirmation || m.state == stateFinished {
				m.quitting = true
				return m, tea.Quit
			}

		case "1", "2", "3", "4", "5":
			if m.state == stateConvention {
				m.convention, _ = types.ParseConvention(msg.String())
				m.state = stateSeriesInput
				m.err = nil
				m.input.Placeholder = "Series name"
				m.input.SetValue(m.series)
				m.input.Focus()
				return m, textinput.Blink
			}

		case "s":
			if m.state == stateConfirmation && m.plan != nil && !m.plan.HasAutoSeason && len(m.batch.Items) > 0 {
				m.state = stateSeasonInput
				m.err = nil
				m.input.Placeholder = "第一季"
				m.input.SetValue(m.label)
				m.input.Focus()
				return m, textinput.Blink
			}

		case "esc":
			switch m.state {
			case stateSeriesInput:
				m.state = stateConvention
				return m, nil
			case stateSeasonInput:
				m.state = stateConfirmation
				m.err = nil
				return m, nil
			}

		case "backspace":
			if m.state == stateConfirmation || m.state == stateFinished {
				m.state = stateConvention
				m.label = ""
				return m, nil
			}

		case "enter":
			switch m.state {
			case stateSeriesInput:
				series := strings.TrimSpace(m.input.Value())
				if err := ui.ValidateSeries(series); err != nil {
					m.err = err
					return m, nil
				}
				m.series = series
				m.err = nil
				m.label = ""
				m.state = stateScanning
				return m, m.scanDir()

			case stateSeasonInput:
				label := strings.TrimSpace(m.input.Value())
				if err := renamer.ValidateSeasonLabel(label); err != nil {
					m.err = err
					return m, nil
				}
				m.label = label
				m.err = nil
				m.plan = m.batch.Plan(m.series, m.label)
				m.state = stateConfirmation
				m.updateTable()
				return m, nil

			case stateConfirmation:
				if m.plan != nil && !m.plan.Empty() {
					m.state = stateRenaming
					m.err = nil
					m.events = nil
					m.eventChan = make(chan renamer.Event)
					m.resizeTable()
					return m, tea.Batch(m.runRename(), m.listenForEvents())
				}

			case stateFinished:
				m.state = stateScanning
				m.err = nil
				m.ops = nil
				return m, m.scanDir()
			}
		}

	case scanDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateConvention
			return m, nil
		}
		m.batch = msg.batch
		m.plan = m.batch.Plan(m.series, m.label)
		m.ops = nil
		m.state = stateConfirmation
		m.updateTable()

	case eventMsg:
		var styledMsg string
		switch msg.Type {
		case renamer.EventSuccess:
			styledMsg = successStyle.Render(msg.Message)
		case renamer.EventWarning:
			styledMsg = warningStyle.Render(msg.Message)
		case renamer.EventError:
			styledMsg = errorStyle.Render(msg.Message)
		default:
			styledMsg = infoStyle.Render(msg.Message)
		}

		m.events = append(m.events, fmt.Sprintf("[%s] %s", msg.Type, styledMsg))
		if len(m.events) > 100 {
			m.events = m.events[len(m.events)-100:]
		}
		return m, m.listenForEvents()

	case renameDoneMsg:
		m.ops = msg.ops
		m.err = msg.err
		m.state = stateFinished
		m.resizeTable()
		m.updateTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeTable()

	case error:
		m.err = msg
		return m, nil
	}

	switch m.state {
	case stateConfirmation, stateFinished, stateRenaming:
		m.table, cmd = m.table.Update(msg)
		cmds = append(cmds, cmd)
	case stateSeriesInput, stateSeasonInput:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// updateTable lists valid entries first, then conflicts and unrecognized files.
// Once a rename ran, valid rows show the operation outcome.
func (m *Model) updateTable() {
	if m.plan == nil {
		m.table.SetRows(nil)
		return
	}

	rows := make([]table.Row, 0, len(m.plan.Valid)+len(m.plan.Conflicts)+len(m.plan.Unrecognized))
	for i, e := range m.plan.Valid {
		status := "Pending"
		if i < len(m.ops) {
			switch m.ops[i].Status {
			case renamer.StatusSuccess:
				status = successStyle.Render("Success")
			case renamer.StatusFailed:
				status = errorStyle.Render("Failed")
			case renamer.StatusSkipped:
				status = warningStyle.Render("Skipped")
			}
		}
		rows = append(rows, table.Row{e.Source.Name, e.Target, status})
	}
	for _, e := range m.plan.Conflicts {
		rows = append(rows, table.Row{e.Source.Name, e.Target, errorStyle.Render("Conflict")})
	}
	for _, f := range m.plan.Unrecognized {
		rows = append(rows, table.Row{f.Name, "-", warningStyle.Render("Unrecognized")})
	}
	m.table.SetRows(rows)
}

func (m *Model) resizeTable() {
	if m.width <= 0 || m.height <= 0 {
		return
	}

	totalW := m.width - 4
	statusW := 14
	flexW := (totalW - statusW) / 2
	if flexW < 10 {
		flexW = 10
	}

	m.table.SetColumns([]table.Column{
		{Title: "Source File", Width: flexW},
		{Title: "Target File", Width: flexW},
		{Title: "Status", Width: statusW},
	})

	headerH := 4 // Title + Path + padding
	footerH := 2 // Action bar
	contentH := m.height - headerH - footerH

	if m.state == stateRenaming {
		// Split space between table and logs
		contentH = contentH / 2
	}
	if contentH < 5 {
		contentH = 5
	}

	m.table.SetHeight(contentH - 2)
}

func (m Model) scanDir() tea.Cmd {
	path, formats, conv := m.path, m.formats, m.convention
	return func() tea.Msg {
		scan, err := config.Scan(path, formats)
		if err != nil {
			return scanDoneMsg{err: err}
		}
		return scanDoneMsg{batch: renamer.Analyze(scan.Files, scan.Existing, conv)}
	}
}

// listenForEvents waits for the next rename event. A closed channel ends the stream.
func (m Model) listenForEvents() tea.Cmd {
	ch := m.eventChan
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return eventMsg(e)
	}
}

func (m Model) runRename() tea.Cmd {
	ch, entries := m.eventChan, m.plan.Valid
	return func() tea.Msg {
		defer close(ch)
		r := renamer.New().WithEvents(func(e renamer.Event) {
			ch <- e
		})
		ops, err := r.Execute(context.Background(), entries)
		return renameDoneMsg{ops: ops, err: err}
	}
}

func (m Model) renderActionBar(actions []string) string {
	var rendered []string
	for _, a := range actions {
		parts := strings.SplitN(a, " ", 2)
		if len(parts) == 2 {
			rendered = append(rendered, actionBarKeyStyle.Render(parts[0])+actionBarMsgStyle.Render(parts[1]))
		}
	}
	bar := strings.Join(rendered, lipgloss.NewStyle().Background(lipgloss.Color("57")).Render("  "))

	padW := m.width - lipgloss.Width(bar)
	if padW < 0 {
		padW = 0
	}
	padding := lipgloss.NewStyle().Background(lipgloss.Color("57")).Render(strings.Repeat(" ", padW))

	return bar + padding
}

func (m Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height-6, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) inputBox(prompt string) string {
	body := lipgloss.NewStyle().Bold(true).Render(prompt) + "\n\n" + m.input.View()
	if m.err != nil {
		body += "\n\n" + errorStyle.Render(m.err.Error())
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86")).
		Padding(1, 2).
		Render(body)
}

func (m Model) View() string {
	if m.quitting {
		return "Bye!\n"
	}

	if m.width <= 0 || m.height <= 0 {
		return "Starting..."
	}

	var s strings.Builder

	header := fmt.Sprintf("%s  %s", titleStyle.Render("TAGRENAME"), subTitleStyle.Render("DIR: "+m.path))
	s.WriteString(lipgloss.NewStyle().Padding(1, 2).Render(header))
	s.WriteString("\n")

	var contentView string
	var actionBarView string

	switch m.state {
	case stateConvention:
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Bold(true).Render("请选择标签符号类型"))
		b.WriteString("\n\n")
		for _, c := range types.Conventions {
			fmt.Fprintf(&b, "%s %s\n", actionBarKeyStyle.Render(fmt.Sprint(int(c))), c.Label())
		}
		if m.err != nil {
			b.WriteString("\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		contentView = m.centered(b.String())
		actionBarView = m.renderActionBar([]string{"1-5 Select", "q Quit"})

	case stateSeriesInput:
		contentView = m.centered(m.inputBox("请输入剧集名称"))
		actionBarView = m.renderActionBar([]string{"Enter Scan", "Esc Back"})

	case stateSeasonInput:
		contentView = m.centered(m.inputBox("请输入完整季数文本（如：第一季），留空则不添加"))
		actionBarView = m.renderActionBar([]string{"Enter Apply", "Esc Back"})

	case stateScanning:
		contentView = m.centered(infoStyle.Render("Scanning directory and matching episodes..."))
		actionBarView = m.renderActionBar([]string{"ctrl+c Abort"})

	case stateConfirmation:
		if m.plan == nil || (m.plan.Empty() && len(m.plan.Conflicts) == 0 && len(m.plan.Unrecognized) == 0) {
			contentView = m.centered("No files found.")
			actionBarView = m.renderActionBar([]string{"Backspace Back", "q Quit"})
			break
		}

		stat := fmt.Sprintf("%d to rename, %d conflicts, %d unrecognized.",
			len(m.plan.Valid), len(m.plan.Conflicts), len(m.plan.Unrecognized))
		if m.label != "" {
			stat += "  Season: " + m.label
		}
		contentView = lipgloss.NewStyle().Padding(0, 2).Render(subTitleStyle.Render(stat) + "\n\n" + m.table.View())

		actions := []string{}
		if !m.plan.Empty() {
			actions = append(actions, "Enter Execute Rename")
		}
		if !m.plan.HasAutoSeason && len(m.batch.Items) > 0 {
			actions = append(actions, "s Season")
		}
		actions = append(actions, "Backspace Back", "↑/↓ Scroll", "q Quit")
		actionBarView = m.renderActionBar(actions)

	case stateRenaming:
		statStr := infoStyle.Render("Renaming in progress...")
		tableView := lipgloss.NewStyle().Padding(0, 2).Render(statStr + "\n\n" + m.table.View())

		logH := (m.height - 6) / 2
		if logH < 5 {
			logH = 5
		}
		maxLogs := logH - 2

		startIdx := 0
		if len(m.events) > maxLogs {
			startIdx = len(m.events) - maxLogs
		}
		logText := subTitleStyle.Render("Waiting for events...")
		if logLines := m.events[startIdx:]; len(logLines) > 0 {
			logText = strings.Join(logLines, "\n")
		}

		logBox := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(m.width - 6).
			Height(maxLogs + 1).
			Render(titleStyle.Render("Event Logs") + "\n" + logText)

		contentView = lipgloss.JoinVertical(lipgloss.Left, tableView, lipgloss.NewStyle().Padding(1, 2).Render(logBox))
		actionBarView = m.renderActionBar([]string{"ctrl+c Quit"})

	case stateFinished:
		success, attempted := renamer.Summary(m.ops)
		title := successStyle.Bold(true).Render("COMPLETED")
		if success != attempted || m.err != nil {
			title = warningStyle.Bold(true).Render("COMPLETED WITH ERRORS")
		}
		body := fmt.Sprintf("%s\n操作完成，成功重命名 %d/%d 个文件", title, success, attempted)
		if m.err != nil {
			body += "\n" + errorStyle.Render(m.err.Error())
		}

		summary := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2).BorderForeground(lipgloss.Color("34")).Render(body)
		contentView = lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Padding(0, 2).Render(summary),
			lipgloss.NewStyle().Padding(1, 2).Render(m.table.View()),
		)
		actionBarView = m.renderActionBar([]string{"Enter Rescan", "Backspace Back", "q Quit"})
	}

	s.WriteString(contentView)

	// Force the action bar to the absolute bottom via newlines
	currentLines := strings.Count(s.String(), "\n")
	neededNewLines := (m.height - 2) - currentLines
	if neededNewLines > 0 {
		s.WriteString(strings.Repeat("\n", neededNewLines))
	} else {
		s.WriteString("\n")
	}
	s.WriteString(actionBarView)

	return s.String()
}
