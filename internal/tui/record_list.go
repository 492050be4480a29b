// Package tui implements the interactive record browser shown by
// "domain info" when stdout is a terminal.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/wjwat/porkpy/internal/porkbun"
	"github.com/wjwat/porkpy/internal/tui/components"
	"github.com/wjwat/porkpy/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Messages ---

type recordsLoadedMsg struct {
	records []porkbun.Record
}

type recordsErrorMsg struct {
	err error
}

// --- Record list model ---

type recordListModel struct {
	client *porkbun.Client
	domain string

	records   []porkbun.Record
	filtered  []porkbun.Record
	cursor    int
	listStart int // for scrolling

	typeFilter  string // e.g. "A", "CNAME", "" for all
	filterCycle []string

	width  int
	height int

	loading       bool
	spinner       spinner.Model
	err           error
	status        string
	statusIsError bool
}

func newRecordListModel(client *porkbun.Client, domainName string) recordListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Pink)

	return recordListModel{
		client:      client,
		domain:      domainName,
		filterCycle: []string{"", "A", "AAAA", "CNAME", "MX", "TXT", "NS"},
		typeFilter:  "",
		loading:     true,
		spinner:     s,
	}
}

// RunRecordList starts the interactive record browser for a domain.
func RunRecordList(client *porkbun.Client, domainName string) error {
	m := newRecordListModel(client, domainName)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run record browser: %w", err)
	}
	return nil
}

func (m recordListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadRecordsCmd())
}

func (m recordListModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		raw, err := m.client.Retrieve(context.Background(), m.domain, porkbun.RetrieveOpts{})
		if err != nil {
			return recordsErrorMsg{err}
		}
		records, err := porkbun.ParseRecords(raw)
		if err != nil {
			return recordsErrorMsg{err}
		}
		return recordsLoadedMsg{records}
	}
}

// filterRecords returns the records matching the type filter; an empty
// filter matches everything.
func filterRecords(records []porkbun.Record, typeFilter string) []porkbun.Record {
	filtered := make([]porkbun.Record, 0, len(records))
	for _, r := range records {
		if typeFilter == "" || strings.EqualFold(r.Type, typeFilter) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func (m *recordListModel) applyFilter() {
	m.filtered = filterRecords(m.records, m.typeFilter)
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	if m.listStart >= len(m.filtered) {
		m.listStart = 0
	}
}

func (m recordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
		case "f":
			// Cycle type filter
			idx := 0
			for i, t := range m.filterCycle {
				if t == m.typeFilter {
					idx = i
					break
				}
			}
			idx = (idx + 1) % len(m.filterCycle)
			m.typeFilter = m.filterCycle[idx]
			m.applyFilter()
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.loadRecordsCmd())
		}

	case recordsLoadedMsg:
		m.loading = false
		m.records = msg.records
		m.applyFilter()
		m.status = fmt.Sprintf("Loaded %d records.", len(m.records))
		m.statusIsError = false

	case recordsErrorMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.err.Error()
		m.statusIsError = true

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m recordListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	header := components.Header(m.width, m.domain, "Porkbun")

	bindings := []components.KeyBinding{
		{Key: "j/k", Desc: "nav"},
		{Key: "f", Desc: "filter"},
		{Key: "r", Desc: "refresh"},
		{Key: "q", Desc: "quit"},
	}
	footer := components.Footer(m.width, bindings)
	statusBar := components.StatusBar(m.width, m.status, m.statusIsError)

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := m.height - headerH - footerH - statusH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.loading:
		content = fmt.Sprintf("\n  %s Loading records...", m.spinner.View())
	case m.err != nil:
		content = fmt.Sprintf("\n  %s", styles.ErrorText.Render(m.err.Error()))
	case len(m.records) == 0:
		content = "\n  No records found for this domain."
	default:
		content = m.renderFilterBar() + "\n" + m.renderTable(contentH-2)
	}

	lines := lipgloss.Height(content)
	if lines < contentH {
		content += lipgloss.NewStyle().Height(contentH - lines).Render("")
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar, footer)
}

func (m recordListModel) renderFilterBar() string {
	var parts []string
	parts = append(parts, "  Filter: ")

	for _, t := range m.filterCycle {
		label := t
		if t == "" {
			label = "All"
		}

		if t == m.typeFilter {
			parts = append(parts, fmt.Sprintf("[%s]", styles.AccentText.Render(label)))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", styles.MutedText.Render(label)))
		}
	}

	return strings.Join(parts, "")
}

func (m recordListModel) renderTable(height int) string {
	if len(m.filtered) == 0 {
		return "\n  No records match current filter."
	}

	cols := []int{10, 30, 6, 34, 6}

	header := styles.TableHeader.Render(
		fmt.Sprintf("  %-*s %-*s %-*s %-*s %-*s",
			cols[0], "ID",
			cols[1], "NAME",
			cols[2], "TYPE",
			cols[3], "CONTENT",
			cols[4], "TTL",
		),
	)

	var rows []string
	rows = append(rows, header)

	if m.cursor < m.listStart {
		m.listStart = m.cursor
	} else if m.cursor >= m.listStart+(height-1) {
		m.listStart = m.cursor - (height - 2)
	}

	end := m.listStart + height - 1
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.listStart; i < end; i++ {
		r := m.filtered[i]

		cursor := " "
		rowStyle := styles.TableCell
		if i == m.cursor {
			cursor = styles.AccentText.Render(">")
			rowStyle = styles.TableSelectedRow
		}

		content := ansi.Truncate(r.Content, cols[3], "…")

		row := fmt.Sprintf("%s %-*s %-*s %-*s %-*s %-*s",
			cursor,
			cols[0], r.ID,
			cols[1], ansi.Truncate(r.Name, cols[1], "…"),
			cols[2], styles.RecordTypeStyle(r.Type).Render(r.Type),
			cols[3], content,
			cols[4], r.TTL,
		)
		rows = append(rows, rowStyle.Render(row))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
