package render

import (
	"io"

	"github.com/komsit37/sgx/pkg/sgx/types"
)

// Renderer renders scored watchlist rows to an output writer.
type Renderer interface {
	Render(w io.Writer, rows []types.Row, opts Options) error
}

type Options struct {
	Color       bool
	PrettyJSON  bool
	MaxColWidth int
}
