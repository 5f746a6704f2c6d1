package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/komsit37/sgx/pkg/sgx/quote"
	"github.com/komsit37/sgx/pkg/sgx/types"
)

// symsRenderer prints all tickers in a single comma-separated line, suffix
// stripped, for piping into other tools.
type symsRenderer struct{}

func NewSymsRenderer() Renderer {
	return symsRenderer{}
}

func (symsRenderer) Render(w io.Writer, rows []types.Row, _ Options) error {
	symbols := make([]string, 0, len(rows))
	for _, row := range rows {
		sym := strings.TrimSpace(row.Entry.Ticker)
		if sym == "" {
			continue
		}
		symbols = append(symbols, strings.TrimSuffix(sym, quote.MarketSuffix))
	}
	_, err := fmt.Fprintln(w, strings.Join(symbols, ","))
	return err
}
