package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

func pe(v float64) *float64 { return &v }

func TestScore_SpecimenQuote(t *testing.T) {
	q := types.Quote{
		Symbol:         "D05.SI",
		Price:          10,
		BookValue:      5,
		DividendRate:   1,
		ReturnOnEquity: 15,
		Cash:           100,
		Debt:           0,
		TrailingPE:     pe(10),
	}
	b := Score(q)

	assert.Equal(t, 2, b.Earnings)
	assert.Equal(t, 0, b.Book, "price-to-book of 2.0 fails")
	assert.Equal(t, 2, b.Yield, "yield is 10%")
	assert.Equal(t, 2, b.Profit)
	assert.Equal(t, 2, b.BalanceSheet)
	assert.Equal(t, 8, b.Total)

	assert.Equal(t, 2.0, b.PriceToBook)
	assert.Equal(t, 10.0, b.DividendYieldPct)
	assert.Equal(t, 100.0, b.NetCash)
}

func TestScore_AllDefaultsScoreZero(t *testing.T) {
	b := Score(types.Quote{BookValue: 1})
	assert.Zero(t, b.Total)
}

func TestScore_BoundaryValuesFail(t *testing.T) {
	q := types.Quote{
		Price:          1,
		BookValue:      1,     // P/B exactly 1.0
		DividendRate:   0.045, // yield exactly 4.5%
		ReturnOnEquity: 10,    // exactly 10
		Cash:           50,
		Debt:           50, // net cash exactly 0
		TrailingPE:     pe(15),
	}
	b := Score(q)
	assert.Zero(t, b.Total, "strict comparisons: boundaries fail")
}

func TestScore_TrailingPE(t *testing.T) {
	base := types.Quote{Price: 100, BookValue: 10}

	tests := []struct {
		name string
		pe   *float64
		want int
	}{
		{"missing", nil, 0},
		{"zero sentinel excluded", pe(0), 0},
		{"low passes", pe(14.9), 2},
		{"boundary fails", pe(15), 0},
		{"high fails", pe(40), 0},
		{"negative passes", pe(-5), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := base
			q.TrailingPE = tt.pe
			assert.Equal(t, tt.want, Score(q).Earnings)
		})
	}
}

func TestScore_AlwaysEvenAndBounded(t *testing.T) {
	quotes := []types.Quote{
		{},
		{Price: 1, BookValue: 1},
		{Price: 0.5, BookValue: 1, DividendRate: 1, ReturnOnEquity: 50, Cash: 10, TrailingPE: pe(3)},
		{Price: 1e9, BookValue: 1, Debt: 1e12},
	}
	for _, q := range quotes {
		b := Score(q)
		assert.GreaterOrEqual(t, b.Total, 0)
		assert.LessOrEqual(t, b.Total, 10)
		assert.Zero(t, b.Total%2, "total is always even")
	}
}

func TestScore_ZeroBookValueStaysFinite(t *testing.T) {
	// Normalizer guarantees a non-zero book value, but a hand-built quote must
	// not produce Inf either.
	b := Score(types.Quote{Price: 10})
	assert.Equal(t, 10.0, b.PriceToBook)
}

func TestScore_Idempotent(t *testing.T) {
	q := types.Quote{Price: 3.3, BookValue: 4.1, DividendRate: 0.2, ReturnOnEquity: 12, Cash: 7, Debt: 2, TrailingPE: pe(9)}
	assert.Equal(t, Score(q), Score(q))
}

func TestScore_PerfectTen(t *testing.T) {
	q := types.Quote{
		Price:          1,
		BookValue:      2,
		DividendRate:   0.1,
		ReturnOnEquity: 20,
		Cash:           10,
		Debt:           1,
		TrailingPE:     pe(5),
	}
	assert.Equal(t, 10, Score(q).Total)
}
