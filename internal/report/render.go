package report

import (
	"fmt"
	"strings"
	"time"
)

// Format selects the report output representation.
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// ParseFormat maps a URL format suffix to a Format. Anything other than
// "json" renders as text, matching the route contract.
func ParseFormat(s string) Format {
	if s == "json" {
		return FormatJSON
	}
	return FormatText
}

// wrapWidth is the column at which entry messages are word-wrapped in the
// text rendering.
const wrapWidth = 80

var headings = [3]string{"Date", "Hours", "Description"}

// FormatMinutes renders a minute count as "{h}h {m}m".
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// Amount renders the dollar value of a minute total at the fixed rate.
func Amount(minutes int) string {
	return fmt.Sprintf("$%.2f", float64(minutes)*RatePerMinute)
}

// Text renders the report as one bordered table per worker. Each table is
// titled "{user_name} ({window label})" and holds one row per entry, a
// separator, and a totals row carrying the summed hours and dollar amount.
// Tables are concatenated, each followed by a blank line.
func (r *Report) Text() string {
	var b strings.Builder
	for _, g := range r.Groups {
		writeTable(&b, &g, r.Window.Label)
		b.WriteByte('\n')
	}
	return b.String()
}

// tableRow is one logical row; the description may span several lines
// after word-wrapping.
type tableRow struct {
	date  string
	hours string
	desc  []string
}

func writeTable(b *strings.Builder, g *Group, label string) {
	title := fmt.Sprintf("%s (%s)", g.Worker.UserName, label)

	rows := make([]tableRow, 0, len(g.Entries))
	for _, e := range g.Entries {
		rows = append(rows, tableRow{
			date:  e.Date.Format(time.DateOnly),
			hours: FormatMinutes(e.Minutes),
			desc:  wrap(e.Message, wrapWidth),
		})
	}
	totals := tableRow{
		hours: FormatMinutes(g.Minutes),
		desc:  []string{Amount(g.Minutes)},
	}

	widths := [3]int{len(headings[0]), len(headings[1]), len(headings[2])}
	for _, row := range append(rows, totals) {
		widths[0] = max(widths[0], len(row.date))
		widths[1] = max(widths[1], len(row.hours))
		for _, line := range row.desc {
			widths[2] = max(widths[2], len(line))
		}
	}

	// A long title widens the description column so the title box never
	// outgrows the table.
	inner := widths[0] + widths[1] + widths[2] + 8
	if diff := len(title) - inner; diff > 0 {
		widths[2] += diff
		inner = len(title)
	}

	border := "+" + strings.Repeat("-", widths[0]+2) +
		"+" + strings.Repeat("-", widths[1]+2) +
		"+" + strings.Repeat("-", widths[2]+2) + "+\n"

	// Title box spans the full table width.
	b.WriteString("+" + strings.Repeat("-", inner) + "+\n")
	pad := inner - len(title)
	b.WriteString("|" + strings.Repeat(" ", pad/2) + title + strings.Repeat(" ", pad-pad/2) + "|\n")

	b.WriteString(border)
	writeCells(b, widths, headings[0], headings[1], headings[2])
	b.WriteString(border)
	for _, row := range rows {
		writeRow(b, widths, row)
	}
	b.WriteString(border)
	writeRow(b, widths, totals)
	b.WriteString(border)
}

// writeRow emits one logical row; wrapped description lines continue with
// empty date and hours cells.
func writeRow(b *strings.Builder, widths [3]int, row tableRow) {
	desc := row.desc
	if len(desc) == 0 {
		desc = []string{""}
	}
	writeCells(b, widths, row.date, row.hours, desc[0])
	for _, line := range desc[1:] {
		writeCells(b, widths, "", "", line)
	}
}

func writeCells(b *strings.Builder, widths [3]int, date, hours, desc string) {
	fmt.Fprintf(b, "| %-*s | %-*s | %-*s |\n", widths[0], date, widths[1], hours, widths[2], desc)
}

// wrap breaks text into lines at most width characters long, breaking at
// the last whitespace at or before the limit, or exactly at the limit when
// a line has no whitespace to break at. Line edges are trimmed. Existing
// newlines are kept as breaks. Widths count runes so multi-byte text is
// never split mid-character.
func wrap(text string, width int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		runes := []rune(strings.TrimSpace(line))
		for len(runes) > width {
			cut := lastSpace(runes[:width+1])
			if cut <= 0 {
				cut = width
			}
			out = append(out, strings.TrimRight(string(runes[:cut]), " \t"))
			runes = []rune(strings.TrimLeft(string(runes[cut:]), " \t"))
		}
		out = append(out, string(runes))
	}
	return out
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' || runes[i] == '\t' {
			return i
		}
	}
	return -1
}
