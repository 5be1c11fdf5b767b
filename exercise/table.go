package exercise

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode selects the table output format.
type Mode int

const (
	ASCII    Mode = iota // fixed-width terminal table
	Markdown             // GitHub-flavoured Markdown table
)

// RenderTable renders the solution of s as a table with a totals footer.
func RenderTable(s *Sheet, m Mode) string {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
	}
	w.SetTitle("%s @ %s", s.Topology, s.Regime)
	w.AppendHeader(table.Row{"Component", "Resistance (Ω)", "Voltage (V)", "Current (A)"})
	for _, rd := range s.Readings {
		w.AppendRow(table.Row{rd.ID, FormatNumber(rd.Impedance), FormatNumber(rd.Voltage), FormatNumber(rd.Current)})
	}
	w.AppendFooter(table.Row{"Total", FormatNumber(s.Resistance), FormatNumber(s.Voltage), FormatNumber(s.Current)})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	if m == Markdown {
		return w.RenderMarkdown()
	}
	return w.Render()
}
