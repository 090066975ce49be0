// SPDX-License-Identifier: MIT

package parser

// DefaultMaxDigits bounds each digit run of a numeric literal (integer part,
// fraction and exponent). 32 digits already exceeds float64 precision by a
// wide margin, so the limit only rejects garbage input.
const DefaultMaxDigits = 32

const panicMaxDigitsInvalid = "parser: WithMaxDigits: n must be > 0"

// Options holds parser tunables. Fields are set through Option values.
type Options struct {
	maxDigits int
}

// Option mutates Options. Constructors panic only on nonsensical values
// (programmer error).
type Option func(*Options)

// WithMaxDigits sets the per-run digit limit of numeric literals.
func WithMaxDigits(n int) Option {
	if n <= 0 {
		panic(panicMaxDigitsInvalid)
	}
	return func(o *Options) { o.maxDigits = n }
}

func gatherOptions(opts ...Option) Options {
	o := Options{maxDigits: DefaultMaxDigits}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
