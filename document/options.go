// SPDX-License-Identifier: MIT

package document

import (
	"log/slog"

	"github.com/katalvlaran/lineq/parser"
)

// DefaultMaxLineLength is the longest accepted input line in bytes.
const DefaultMaxLineLength = 1024

const panicMaxLineLengthInvalid = "document: WithMaxLineLength: n must be > 0"

// Options configures Load.
type Options struct {
	MaxLineLength int
	Parser        []parser.Option
	Logger        *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the 1024-byte line limit and a discarding logger.
func DefaultOptions() Options {
	return Options{
		MaxLineLength: DefaultMaxLineLength,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithMaxLineLength sets the line limit; n must be positive.
func WithMaxLineLength(n int) Option {
	if n <= 0 {
		panic(panicMaxLineLengthInvalid)
	}
	return func(o *Options) { o.MaxLineLength = n }
}

// WithParserOptions forwards options to the underlying parser.
func WithParserOptions(opts ...parser.Option) Option {
	return func(o *Options) { o.Parser = append(o.Parser, opts...) }
}

// WithLogger sets the debug logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
