package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// Fetcher retrieves the raw field map for a canonical symbol. Implementations
// return an error for any transport or decoding failure; callers collapse
// errors and empty payloads into the same "no data" outcome.
type Fetcher interface {
	Fetch(ctx context.Context, symbol string) (types.RawPayload, error)
}

const (
	defaultBaseURL = "https://query1.finance.yahoo.com"
	userAgent      = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
)

// YahooFetcher pulls quoteSummary fundamentals and, when neither price field is
// populated, a short daily-close lookback from the chart endpoint.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

func NewYahooFetcher(timeout time.Duration) *YahooFetcher {
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		ForceAttemptHTTP2:   true,
		IdleConnTimeout:     90 * time.Second,
	}
	return &YahooFetcher{
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: timeout, Transport: transport},
	}
}

// summaryModules are the quoteSummary modules holding every field the
// normalizer reads.
var summaryModules = []string{"price", "financialData", "summaryDetail", "defaultKeyStatistics"}

// flatFields maps payload keys to their dotted module paths, tried in order.
var flatFields = map[string][]string{
	"currentPrice":       {"financialData.currentPrice.raw"},
	"regularMarketPrice": {"price.regularMarketPrice.raw"},
	"longName":           {"price.longName", "price.shortName"},
	"trailingPE":         {"summaryDetail.trailingPE.raw", "defaultKeyStatistics.trailingPE.raw"},
	"dividendRate":       {"summaryDetail.dividendRate.raw"},
	"bookValue":          {"defaultKeyStatistics.bookValue.raw"},
	"returnOnEquity":     {"financialData.returnOnEquity.raw"},
	"totalCash":          {"financialData.totalCash.raw"},
	"totalDebt":          {"financialData.totalDebt.raw"},
}

func (f *YahooFetcher) Fetch(ctx context.Context, symbol string) (types.RawPayload, error) {
	if symbol == "" {
		return nil, fmt.Errorf("empty symbol")
	}
	mods, err := f.quoteSummary(ctx, symbol)
	if err != nil {
		return nil, err
	}

	payload := types.RawPayload{}
	for key, paths := range flatFields {
		for _, p := range paths {
			if v, ok := extract(mods, p); ok {
				payload[key] = v
				break
			}
		}
	}

	// Last-resort price source: recent daily closes.
	if _, ok := payload["currentPrice"]; !ok {
		if _, ok := payload["regularMarketPrice"]; !ok {
			if closes, err := f.recentCloses(ctx, symbol); err == nil && len(closes) > 0 {
				payload["recentCloses"] = closes
			}
		}
	}
	return payload, nil
}

func (f *YahooFetcher) quoteSummary(ctx context.Context, symbol string) (map[string]any, error) {
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(symbol), strings.Join(summaryModules, ","))

	var body struct {
		QuoteSummary struct {
			Result []map[string]any `json:"result"`
			Error  any              `json:"error"`
		} `json:"quoteSummary"`
	}
	if err := f.getJSON(ctx, addr, &body); err != nil {
		return nil, err
	}
	if len(body.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("no quoteSummary result for %s", symbol)
	}
	return body.QuoteSummary.Result[0], nil
}

// chartResponse mirrors the chart endpoint's envelope, closes only.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

func (f *YahooFetcher) recentCloses(ctx context.Context, symbol string) ([]float64, error) {
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?range=5d&interval=1d", f.BaseURL, url.PathEscape(symbol))
	var body chartResponse
	if err := f.getJSON(ctx, addr, &body); err != nil {
		return nil, err
	}
	if len(body.Chart.Result) == 0 || len(body.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no chart result for %s", symbol)
	}
	var closes []float64
	for _, c := range body.Chart.Result[0].Indicators.Quote[0].Close {
		if c != nil {
			closes = append(closes, *c)
		}
	}
	return closes, nil
}

func (f *YahooFetcher) getJSON(ctx context.Context, addr string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", addr, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("fetch %s: %s", addr, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", addr, err)
	}
	return nil
}

// extract walks a dotted path through nested string-keyed maps.
func extract(m map[string]any, path string) (any, bool) {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		mm, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		cur, ok = mm[part]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}
