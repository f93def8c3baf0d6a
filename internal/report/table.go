// Package report renders cover solutions as terminal or Markdown tables.
package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Mode controls the output format.
type Mode int

const (
	ASCII    Mode = iota // Fixed-width terminal tables
	Markdown             // GitHub-flavoured Markdown tables
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ASCII:
		return "ascii"
	case Markdown:
		return "markdown"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "ascii" or "markdown" to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "ascii", "":
		return ASCII, nil
	case "markdown":
		return Markdown, nil
	default:
		return ASCII, fmt.Errorf("report: unknown format %q", name)
	}
}

// tableWriter wraps a go-pretty writer bound to one Mode.
type tableWriter struct {
	writer table.Writer
	mode   Mode
}

func newTable(m Mode, title string) *tableWriter {
	w := table.NewWriter()
	if m == ASCII {
		w.SetStyle(table.StyleLight)
		w.SetTitle(title)
	}

	return &tableWriter{writer: w, mode: m}
}

func (t *tableWriter) header(cols ...any) { t.writer.AppendHeader(table.Row(cols)) }

func (t *tableWriter) row(vals ...any) { t.writer.AppendRow(table.Row(vals)) }

func (t *tableWriter) footer(vals ...any) { t.writer.AppendFooter(table.Row(vals)) }

// alignRight right-aligns the given 1-based columns.
func (t *tableWriter) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight, AlignFooter: text.AlignRight}
	}
	t.writer.SetColumnConfigs(cfgs)
}

func (t *tableWriter) String() string {
	if t.mode == Markdown {
		return t.writer.RenderMarkdown()
	}

	return t.writer.Render()
}
