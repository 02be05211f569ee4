package render

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

const panelMaxWidth = 100

// Renderer prints summaries and errors as titled panels. Colors are applied
// only when the writer is an interactive terminal.
type Renderer struct {
	w       io.Writer
	colored bool
}

func New(w io.Writer) *Renderer {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return &Renderer{w: w, colored: colored}
}

// Summary prints a successful (or inline-failed) summarize result.
func (r *Renderer) Summary(title, body string) {
	r.panel(title, body, text.Colors{text.FgCyan, text.Bold}, text.Colors{})
}

// Skip prints a notice that a provider was not invoked.
func (r *Renderer) Skip(title, body string) {
	r.panel(title, body, text.Colors{text.FgYellow, text.Bold}, text.Colors{text.FgYellow})
}

// Error prints a failure that aborted the run for a provider.
func (r *Renderer) Error(title, body string) {
	r.panel(title, body, text.Colors{text.FgRed, text.Bold}, text.Colors{text.FgRed})
}

func (r *Renderer) panel(title, body string, titleColors, bodyColors text.Colors) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(title)

	if r.colored {
		tw.Style().Title.Colors = titleColors
		tw.Style().Color.Row = bodyColors
	}

	tw.SetColumnConfigs([]table.ColumnConfig{{
		Number:   1,
		WidthMax: panelMaxWidth,
	}})
	tw.AppendRow(table.Row{body})

	fmt.Fprintln(r.w, tw.Render())
	fmt.Fprintln(r.w)
}
