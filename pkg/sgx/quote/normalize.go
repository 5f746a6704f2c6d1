package quote

import (
	"encoding/json"
	"strings"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// MarketSuffix is the fixed exchange suffix appended to every ticker.
const MarketSuffix = ".SI"

// DefaultBookValue substitutes a missing or zero book value so price-to-book
// never divides by zero. Documented constant, not silent data corruption.
const DefaultBookValue = 1

// CanonicalSymbol trims and uppercases a free-form ticker and appends the
// market suffix exactly once.
func CanonicalSymbol(ticker string) string {
	sym := strings.ToUpper(strings.TrimSpace(ticker))
	if sym == "" {
		return ""
	}
	if !strings.HasSuffix(sym, MarketSuffix) {
		sym += MarketSuffix
	}
	return sym
}

// Normalize converts a raw payload into a canonical Quote. It returns ok=false
// when the payload is empty or no usable price exists; price is resolved from
// currentPrice, then regularMarketPrice, then the most recent entry of
// recentCloses. Every non-price field is defaulted independently so one
// malformed field never sinks an otherwise good payload.
func Normalize(raw types.RawPayload, requestedTicker string) (types.Quote, bool) {
	if len(raw) == 0 {
		return types.Quote{}, false
	}
	sym := CanonicalSymbol(requestedTicker)

	price, ok := resolvePrice(raw)
	if !ok {
		return types.Quote{}, false
	}

	q := types.Quote{
		Symbol:    sym,
		Name:      stringField(raw, "longName", sym),
		Price:     price,
		BookValue: floatField(raw, "bookValue", DefaultBookValue),
	}
	if pe, ok := asFloat(raw["trailingPE"]); ok {
		q.TrailingPE = &pe
	}
	q.DividendRate = floatField(raw, "dividendRate", 0)
	q.ReturnOnEquity = floatField(raw, "returnOnEquity", 0) * 100
	q.Cash = floatField(raw, "totalCash", 0)
	q.Debt = floatField(raw, "totalDebt", 0)

	if q.BookValue == 0 {
		q.BookValue = DefaultBookValue
	}
	return q, true
}

// resolvePrice picks the first price source yielding a usable value.
func resolvePrice(raw types.RawPayload) (float64, bool) {
	if v, ok := asPrice(raw["currentPrice"]); ok {
		return v, true
	}
	if v, ok := asPrice(raw["regularMarketPrice"]); ok {
		return v, true
	}
	if closes, ok := raw["recentCloses"].([]float64); ok {
		for i := len(closes) - 1; i >= 0; i-- {
			if closes[i] >= 0 {
				return closes[i], true
			}
		}
	}
	// recentCloses may arrive as []any when decoded straight from JSON.
	if closes, ok := raw["recentCloses"].([]any); ok {
		for i := len(closes) - 1; i >= 0; i-- {
			if v, ok := asPrice(closes[i]); ok {
				return v, true
			}
		}
	}
	return 0, false
}

// asPrice coerces a usable price: numeric and non-negative. A negative value
// counts as null like any other malformed field, so resolution falls through
// to the next source.
func asPrice(v any) (float64, bool) {
	f, ok := asFloat(v)
	if !ok || f < 0 {
		return 0, false
	}
	return f, true
}

func stringField(raw types.RawPayload, key, fallback string) string {
	if s, ok := raw[key].(string); ok && strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}

func floatField(raw types.RawPayload, key string, fallback float64) float64 {
	if v, ok := asFloat(raw[key]); ok {
		return v
	}
	return fallback
}

// asFloat coerces the numeric shapes a JSON payload can carry. Strings,
// including the upstream's "N/A" marker, count as null.
func asFloat(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
