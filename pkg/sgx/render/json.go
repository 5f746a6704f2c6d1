package render

import (
	"encoding/json"
	"io"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// jsonModel is the output shape for JSONRenderer. Values are raw numerics;
// formatting belongs to whoever consumes the JSON.
type jsonModel struct {
	Ticker           string   `json:"ticker"`
	Name             string   `json:"name"`
	Price            float64  `json:"price"`
	TrailingPE       *float64 `json:"trailing_pe"`
	PriceToBook      float64  `json:"price_to_book"`
	DividendYieldPct float64  `json:"dividend_yield_pct"`
	ReturnOnEquity   float64  `json:"return_on_equity_pct"`
	NetCash          float64  `json:"net_cash"`
	Scores           scores   `json:"scores"`
}

type scores struct {
	Earnings     int `json:"earnings"`
	Book         int `json:"book"`
	Yield        int `json:"yield"`
	Profit       int `json:"profit"`
	BalanceSheet int `json:"balance_sheet"`
	Total        int `json:"total"`
}

type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, rows []types.Row, opts Options) error {
	out := make([]jsonModel, 0, len(rows))
	for _, row := range rows {
		b := row.Score
		out = append(out, jsonModel{
			Ticker:           row.Entry.Ticker,
			Name:             row.Entry.Name,
			Price:            row.Quote.Price,
			TrailingPE:       row.Quote.TrailingPE,
			PriceToBook:      b.PriceToBook,
			DividendYieldPct: b.DividendYieldPct,
			ReturnOnEquity:   row.Quote.ReturnOnEquity,
			NetCash:          b.NetCash,
			Scores: scores{
				Earnings:     b.Earnings,
				Book:         b.Book,
				Yield:        b.Yield,
				Profit:       b.Profit,
				BalanceSheet: b.BalanceSheet,
				Total:        b.Total,
			},
		})
	}
	enc := json.NewEncoder(w)
	if opts.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
