// Package pipeline wires the fetch, normalize, and score stages over a
// watchlist and hands the resulting rows to a renderer.
package pipeline

import (
	"context"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/komsit37/sgx/pkg/sgx/filter"
	"github.com/komsit37/sgx/pkg/sgx/quote"
	"github.com/komsit37/sgx/pkg/sgx/render"
	"github.com/komsit37/sgx/pkg/sgx/score"
	"github.com/komsit37/sgx/pkg/sgx/types"
	"github.com/komsit37/sgx/pkg/sgx/watchlist"
)

type Runner struct {
	Fetcher  quote.Fetcher
	Store    *watchlist.Store
	Renderer render.Renderer
	Writer   io.Writer
}

type ExecuteOptions struct {
	Filter      filter.Filter
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}

// Lookup fetches and scores a single ticker. ok=false means the ticker had no
// resolvable price or the upstream was unreachable; the two are deliberately
// indistinguishable here.
func (r *Runner) Lookup(ctx context.Context, ticker string) (types.Row, bool) {
	sym := quote.CanonicalSymbol(ticker)
	raw, err := r.Fetcher.Fetch(ctx, sym)
	if err != nil {
		log.Debug().Err(err).Str("symbol", sym).Msg("fetch failed")
		return types.Row{}, false
	}
	q, ok := quote.Normalize(raw, ticker)
	if !ok {
		return types.Row{}, false
	}
	return types.Row{
		Entry: types.Entry{Ticker: q.Symbol, Name: q.Name},
		Quote: q,
		Score: score.Score(q),
	}, true
}

// AddTicker inserts ticker into the watchlist unless it is already tracked.
// The membership check comes first so a duplicate add never contacts the
// upstream; only a genuinely new entry with no supplied name triggers the
// best-effort display-name fetch. An entry is added even when the upstream has
// no data for it.
func (r *Runner) AddTicker(ctx context.Context, ticker, name string) bool {
	if r.Store.Contains(ticker) {
		return false
	}
	if name == "" {
		if row, ok := r.Lookup(ctx, ticker); ok {
			name = row.Entry.Name
		}
	}
	return r.Store.Add(ticker, name)
}

// Refresh re-scores every watchlist entry sequentially. Entries whose fetch or
// normalize step yields nothing are omitted from the rows but stay in the
// persisted watchlist.
func (r *Runner) Refresh(ctx context.Context) []types.Row {
	entries := r.Store.Entries()
	rows := make([]types.Row, 0, len(entries))
	for _, e := range entries {
		row, ok := r.Lookup(ctx, e.Ticker)
		if !ok {
			log.Warn().Str("ticker", e.Ticker).Msg("no data, skipping row")
			continue
		}
		// Keep the stored display name; the fetched one is only a fallback.
		if e.Name != "" {
			row.Entry.Name = e.Name
		}
		rows = append(rows, row)
	}
	return rows
}

// Execute refreshes the watchlist, applies the row filter, and renders.
func (r *Runner) Execute(ctx context.Context, opts ExecuteOptions) error {
	rows := r.Refresh(ctx)

	var filt filter.Filter = filter.Always(true)
	if opts.Filter != nil {
		filt = opts.Filter
	}
	filtered := make([]types.Row, 0, len(rows))
	for _, row := range rows {
		if filt.Match(row.Entry.Ticker) || filt.Match(row.Entry.Name) {
			filtered = append(filtered, row)
		}
	}

	return r.Renderer.Render(r.Writer, filtered, render.Options{
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
	})
}
