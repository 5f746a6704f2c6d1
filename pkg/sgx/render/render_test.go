package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/komsit37/sgx/pkg/sgx/score"
	"github.com/komsit37/sgx/pkg/sgx/types"
)

func sampleRows() []types.Row {
	pe := 10.0
	q := types.Quote{
		Symbol:         "D05.SI",
		Name:           "DBS Group Holdings Ltd",
		Price:          10,
		BookValue:      5,
		DividendRate:   1,
		ReturnOnEquity: 15,
		Cash:           100,
		TrailingPE:     &pe,
	}
	return []types.Row{{
		Entry: types.Entry{Ticker: q.Symbol, Name: q.Name},
		Quote: q,
		Score: score.Score(q),
	}}
}

func TestJSONRenderer_EmitsRawNumerics(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONRenderer().Render(&buf, sampleRows(), Options{}))

	var out []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)

	assert.Equal(t, "D05.SI", out[0]["ticker"])
	assert.Equal(t, 10.0, out[0]["price"])
	assert.Equal(t, 2.0, out[0]["price_to_book"])
	assert.Equal(t, 10.0, out[0]["dividend_yield_pct"])

	scores, ok := out[0]["scores"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 8.0, scores["total"])
}

func TestTableRenderer_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableRenderer().Render(&buf, sampleRows(), Options{}))

	out := buf.String()
	assert.Contains(t, out, "D05.SI")
	assert.Contains(t, out, "8/10")
	assert.Contains(t, out, "TICKER")
}

func TestSymsRenderer_StripsSuffix(t *testing.T) {
	rows := sampleRows()
	rows = append(rows, types.Row{Entry: types.Entry{Ticker: "Z74.SI"}})

	var buf bytes.Buffer
	require.NoError(t, NewSymsRenderer().Render(&buf, rows, Options{}))
	assert.Equal(t, "D05,Z74\n", buf.String())
}
