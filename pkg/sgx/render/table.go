package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

var tableColumns = []string{"ticker", "name", "price", "p/e", "p/b", "div", "roe", "cash", "total"}

// TableRenderer prints one row per watchlist entry with the five sub-score
// columns and the total, in the style of the score breakdown table.
type TableRenderer struct{}

func NewTableRenderer() *TableRenderer { return &TableRenderer{} }

func (r *TableRenderer) Render(w io.Writer, rows []types.Row, opts Options) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleColoredDark)
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateRows = false
	tw.Style().Options.SeparateColumns = false

	hdr := make(table.Row, len(tableColumns))
	for i, c := range tableColumns {
		hdr[i] = strings.ToUpper(c)
	}
	tw.AppendHeader(hdr)

	maxWidth := opts.MaxColWidth
	if maxWidth <= 0 {
		maxWidth = 40
	}
	cfgs := make([]table.ColumnConfig, 0, len(tableColumns))
	for i, c := range tableColumns {
		cfg := table.ColumnConfig{Number: i + 1, WidthMax: maxWidth}
		switch c {
		case "price", "p/e", "p/b", "div", "roe", "cash", "total":
			cfg.Align = text.AlignRight
			cfg.AlignHeader = text.AlignRight
		}
		cfgs = append(cfgs, cfg)
	}
	tw.SetColumnConfigs(cfgs)

	for _, row := range rows {
		b := row.Score
		tw.AppendRow(table.Row{
			row.Entry.Ticker,
			row.Entry.Name,
			fmt.Sprintf("%.2f", row.Quote.Price),
			points(b.Earnings, opts.Color),
			points(b.Book, opts.Color),
			points(b.Yield, opts.Color),
			points(b.Profit, opts.Color),
			points(b.BalanceSheet, opts.Color),
			total(b.Total, opts.Color),
		})
	}

	tw.Render()
	fmt.Fprintln(w, "points: 2 = pass, 0 = fail | max score: 10")
	return nil
}

func points(pts int, color bool) string {
	s := fmt.Sprintf("%d", pts)
	if !color {
		return s
	}
	if pts > 0 {
		return text.Colors{text.FgGreen}.Sprint(s)
	}
	return text.Colors{text.Faint}.Sprint(s)
}

func total(sum int, color bool) string {
	s := fmt.Sprintf("%d/10", sum)
	if !color {
		return s
	}
	switch {
	case sum >= 8:
		return text.Colors{text.FgGreen}.Sprint(s)
	case sum <= 2:
		return text.Colors{text.FgRed}.Sprint(s)
	default:
		return s
	}
}
