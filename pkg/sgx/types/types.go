package types

// RawPayload is the untyped field map returned by the upstream quote source.
// Fields may be absent, null, or wrong-typed; consumers must coerce defensively.
type RawPayload map[string]any

// Quote is the canonical record for a single successful fetch. A Quote is only
// constructed when a usable price exists; every other field carries a documented
// default when the upstream omits or mangles it.
type Quote struct {
	Symbol string
	Name   string
	Price  float64
	// TrailingPE is nil when the upstream reported no numeric value. A numeric
	// value is preserved as-is, including 0, which Yahoo uses as an "unknown"
	// sentinel; interpretation is the scoring engine's job.
	TrailingPE     *float64
	DividendRate   float64
	BookValue      float64 // never 0; see quote.DefaultBookValue
	ReturnOnEquity float64 // percent scale, e.g. 12.3 for 12.3%
	Cash           float64
	Debt           float64
}

// Breakdown holds the five binary sub-scores (2 points each, 0 on fail), their
// sum, and the derived ratios they were judged on. Recomputed on every
// evaluation, never persisted.
type Breakdown struct {
	Earnings     int
	Book         int
	Yield        int
	Profit       int
	BalanceSheet int
	Total        int

	PriceToBook      float64
	DividendYieldPct float64
	NetCash          float64
}

// Entry is one tracked symbol in the watchlist.
type Entry struct {
	Ticker string `yaml:"ticker"`
	Name   string `yaml:"name"`
}

// Row pairs a watchlist entry with its latest quote and score for display.
type Row struct {
	Entry Entry
	Quote Quote
	Score Breakdown
}
