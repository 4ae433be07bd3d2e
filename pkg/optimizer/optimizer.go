// Package optimizer rewrites the leading block of ES-module import declarations of a source
// text into a canonical form.
//
// Only single-line `import ... from '...'` statements are understood. The block ends at the
// first line that is neither blank nor an import; everything from there on is left untouched.
package optimizer

import (
	"io"

	"github.com/charmbracelet/log"
)

// Optimizer handles import block rewriting
type Optimizer struct {
	rules  Rules
	logger *log.Logger
}

// Option configures an Optimizer
type Option func(*Optimizer)

// WithLogger traces parsing and merging decisions to logger at debug level
func WithLogger(logger *log.Logger) Option {
	return func(o *Optimizer) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithRules sets the initial rules
func WithRules(rules Rules) Option {
	return func(o *Optimizer) {
		o.rules = rules
	}
}

// New creates an Optimizer with all rules disabled
func New(opts ...Option) *Optimizer {
	o := &Optimizer{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Configure sets the three core rules. KeepMalformed is left as is.
func (o *Optimizer) Configure(sortImports, removeDuplicates, mergeImports bool) {
	o.rules.SortImports = sortImports
	o.rules.RemoveDuplicates = removeDuplicates
	o.rules.MergeImports = mergeImports
}

// SetRules replaces all rules
func (o *Optimizer) SetRules(rules Rules) {
	o.rules = rules
}

// Rules returns the current rules
func (o *Optimizer) Rules() Rules {
	return o.rules
}

// Optimize rewrites the import block of src according to the configured rules. When no import
// line can be parsed the input is returned unchanged.
func (o *Optimizer) Optimize(src string) string {
	b := classify(src)
	if len(b.candidates) == 0 {
		return src
	}

	var (
		decls     []Declaration
		malformed []string
	)
	for _, c := range b.candidates {
		decl, ok := o.parseLine(c.text, c.index)
		if !ok {
			malformed = append(malformed, c.text)
			continue
		}
		decls = append(decls, decl)
	}
	if len(decls) == 0 {
		return src
	}

	var groups []Group
	if o.rules.MergeImports {
		groups = o.merge(decls, o.rules.SortImports)
	} else {
		groups = o.dedupe(decls, o.rules.RemoveDuplicates, o.rules.SortImports)
	}

	lines := formatGroups(groups)
	if len(malformed) > 0 {
		if o.rules.KeepMalformed {
			lines = append(lines, malformed...)
		} else {
			o.logger.Debug("dropping malformed import lines", "count", len(malformed))
		}
	}

	return assemble(lines, b.body)
}
