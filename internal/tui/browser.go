// Interactive browser for scan results
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"alertsift/internal/scan"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	detailStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	passStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model is the bubbletea model browsing one scan's passing alerts.
type Model struct {
	table   table.Model
	rows    []scan.ResultRow
	summary scan.Summary
	width   int
}

// NewModel builds the browser for a finished scan.
func NewModel(sum scan.Summary, rows []scan.ResultRow) Model {
	columns := []table.Column{
		{Title: "Object", Width: 14},
		{Title: "rb", Width: 6},
		{Title: "fwhm", Width: 6},
		{Title: "magpsf", Width: 7},
		{Title: "hist d", Width: 7},
		{Title: "File", Width: 36},
	}
	trows := make([]table.Row, len(rows))
	for i, r := range rows {
		trows[i] = table.Row{
			r.ObjectID,
			cell(r.RB, "%.2f"),
			cell(r.FWHM, "%.2f"),
			cell(r.MagPSF, "%.2f"),
			cell(r.HistoryDays, "%.1f"),
			r.File,
		}
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(trows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	return Model{table: t, rows: rows, summary: sum, width: 80}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(max(4, msg.Height-10))
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("alertsift (%s filter)", m.summary.Filter))
	stats := statStyle.Render(fmt.Sprintf("files %d  decoded %d  passed %s  rejected %d  errors %d",
		m.summary.Files, m.summary.Decoded,
		passStyle.Render(fmt.Sprintf("%d", m.summary.Passed)),
		m.summary.Rejected, m.summary.Errors))
	return header + "\n" + stats + "\n\n" + m.table.View() + "\n" + m.detail() + "\n" +
		statStyle.Render("up/down: select  q: quit")
}

// detail renders the selected row's full record and how each cut of
// the filter evaluated for it.
func (m Model) detail() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.rows) {
		return detailStyle.Render("no passing alerts")
	}
	r := m.rows[idx]
	width := max(20, m.width-4)

	var b strings.Builder
	b.WriteString(wordwrap.String(fmt.Sprintf("%s  candid=%d  isdiffpos=%s  rb=%s  fwhm=%s  magpsf=%s  history=%s d  %s",
		r.ObjectID, r.Candid, strCell(r.IsDiffPos),
		cell(r.RB, "%.3f"), cell(r.FWHM, "%.3f"), cell(r.MagPSF, "%.3f"),
		cell(r.HistoryDays, "%.2f"), r.File), width))
	for _, cr := range r.Criteria {
		mark := passStyle.Render("pass")
		if !cr.Pass {
			mark = failStyle.Render("FAIL")
		}
		b.WriteString("\n" + mark + " " + cr.Name + "  " +
			statStyle.Render(wordwrap.String(cr.Actual, width)))
	}
	return detailStyle.Render(b.String())
}

// Run launches the browser and blocks until the user quits.
func Run(sum scan.Summary, rows []scan.ResultRow) error {
	p := tea.NewProgram(NewModel(sum, rows), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func cell(p *float64, format string) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf(format, *p)
}

func strCell(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}
