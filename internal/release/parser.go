package release

import (
	"log/slog"
	"strings"
	"sync"

	"relname/internal/catalog"
	"relname/internal/logging"
)

// Options controls one parse.
type Options struct {
	// Standardise maps raw captured text to canonical labels.
	Standardise bool
	// CoherentTypes wraps every field except title and episodeName in a list.
	CoherentTypes bool
}

// DefaultOptions returns standardised, naturally typed output.
func DefaultOptions() Options {
	return Options{Standardise: true}
}

// Parser extracts release metadata using one catalogue. A Parser holds no
// per-call state and is safe for concurrent use.
type Parser struct {
	cat    *catalog.Catalog
	logger *slog.Logger
}

// NewParser returns a parser over cat. A nil catalogue selects the built-in
// one and a nil logger discards output.
func NewParser(cat *catalog.Catalog, logger *slog.Logger) *Parser {
	if cat == nil {
		cat = catalog.Default()
	}
	return &Parser{
		cat:    cat,
		logger: logging.NewComponentLogger(logger, "release"),
	}
}

// Catalog returns the catalogue the parser matches against.
func (p *Parser) Catalog() *catalog.Catalog { return p.cat }

var defaultParser = sync.OnceValue(func() *Parser {
	return NewParser(nil, nil)
})

// Parse parses name with the built-in catalogue.
func Parse(name string, opts Options) *Result {
	return defaultParser().Parse(name, opts)
}

// Parse extracts every recognised field from name. It never fails; fields
// that could not be detected are simply absent.
func (p *Parser) Parse(name string, opts Options) *Result {
	st := newState(p, strings.TrimSpace(name), opts)
	st.match()
	st.extractTitle()
	st.fixExceptions()
	st.beforeExcess()
	st.buildExcess()
	st.afterExcess()
	if opts.CoherentTypes {
		st.coerceLists()
	}
	return st.res
}
