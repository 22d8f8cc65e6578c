package nnf

import "github.com/hashicorp/go-hclog"

// Logger is the logging interface this package accepts for optional trace
// diagnostics. It is an alias of hclog.Logger, the logging library used
// elsewhere in this stack.
type Logger = hclog.Logger

// NullLogger returns a Logger that discards everything, the default for
// every option below, this package never logs unless a caller opts in.
func NullLogger() Logger {
	return hclog.NewNullLogger()
}

// Options bundles the optional, cross-cutting settings accepted by the
// model engine (Models, ModelCount). The dimacs and dsharp loaders take
// no options.
type Options struct {
	Log Logger
}

// Option configures an Options value.
type Option func(*Options)

// WithLogger injects a Logger for trace-level diagnostics (which
// model-engine flags were set, how many variables a sentence has). Library
// behavior and results never depend on whether a logger is supplied.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		o.Log = l
	}
}

func resolveOptions(opts ...Option) Options {
	o := Options{Log: NullLogger()}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
