// Package score evaluates a canonical quote against five value-investing
// heuristics. Each heuristic is a strict binary gate worth 2 points, so the
// total is always an even number in [0, 10].
package score

import "github.com/komsit37/sgx/pkg/sgx/types"

// Points awarded per passing sub-score.
const Points = 2

// Thresholds, strict comparisons; boundary values fail.
const (
	maxPE       = 15.0
	maxPB       = 1.0
	minYieldPct = 4.5
	minROEPct   = 10.0
)

// Score computes the breakdown for q. Pure and total: the same quote always
// yields the same breakdown and no input panics.
func Score(q types.Quote) types.Breakdown {
	bv := q.BookValue
	if bv == 0 {
		// The normalizer guarantees a non-zero book value; re-guard so a
		// hand-built quote cannot divide by zero.
		bv = 1
	}

	var b types.Breakdown
	b.PriceToBook = q.Price / bv
	if q.Price > 0 {
		b.DividendYieldPct = q.DividendRate / q.Price * 100
	}
	b.NetCash = q.Cash - q.Debt

	// Yahoo reports trailingPE = 0 for "unknown"; exclude it rather than
	// treat it as an infinitely cheap earnings multiple.
	if q.TrailingPE != nil && *q.TrailingPE != 0 && *q.TrailingPE < maxPE {
		b.Earnings = Points
	}
	if b.PriceToBook < maxPB {
		b.Book = Points
	}
	if b.DividendYieldPct > minYieldPct {
		b.Yield = Points
	}
	if q.ReturnOnEquity > minROEPct {
		b.Profit = Points
	}
	if b.NetCash > 0 {
		b.BalanceSheet = Points
	}
	b.Total = b.Earnings + b.Book + b.Yield + b.Profit + b.BalanceSheet
	return b
}
