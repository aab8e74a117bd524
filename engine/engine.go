package engine

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"polyiter/diagnostic"
	"polyiter/kind"
	"polyiter/options"
	"polyiter/shape"
)

// Engine runs traversals. The zero value is not usable, create one with New
// or FromConfig. An Engine holds no per-call state.
type Engine struct {
	reporter diagnostic.Reporter
	defaults options.Options
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithReporter sets where usage diagnostics go. nil means diagnostic.Discard.
func WithReporter(r diagnostic.Reporter) EngineOption {
	return func(e *Engine) {
		if r == nil {
			r = diagnostic.Discard
		}
		e.reporter = r
	}
}

// WithDefaults sets the options every call starts from.
func WithDefaults(o options.Options) EngineOption {
	return func(e *Engine) {
		e.defaults = o
	}
}

// New creates an engine reporting to the logrus standard logger.
func New(opts ...EngineOption) *Engine {
	e := &Engine{reporter: diagnostic.NewLogReporter(nil)}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// FromConfig creates an engine with its own logrus logger set up from cfg.
func FromConfig(cfg options.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid engine config")
	}

	if cfg.Diagnostics.Level == "off" {
		return New(WithReporter(diagnostic.Discard), WithDefaults(cfg.Options)), nil
	}

	level, err := logrus.ParseLevel(cfg.Diagnostics.Level)
	if err != nil {
		return nil, errors.Wrap(err, "invalid diagnostics level")
	}

	logger := logrus.New()
	logger.SetLevel(level)
	if cfg.Diagnostics.Format == options.FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return New(WithReporter(diagnostic.NewLogReporter(logger)), WithDefaults(cfg.Options)), nil
}

func (e *Engine) run(op string, mode ModeEnum, input, sentinel any, fn Func, out sink, opts []options.Option) (any, error) {
	o := options.Apply(e.defaults, opts...)

	return e.traverse(shape.Normalize(input, o.Inherit), request{
		op:       op,
		mode:     mode,
		fn:       fn,
		sentinel: sentinel,
		out:      out,
	})
}

// Map calls fn for every element of input and collects the results in order.
func (e *Engine) Map(input any, fn Func, opts ...options.Option) ([]any, error) {
	if err := e.checkFunc("Map", 2, fn); err != nil {
		return nil, err
	}

	res, err := e.run("Map", ModeMap, input, nil, fn, nil, opts)
	if err != nil {
		return nil, err
	}

	return res.([]any), nil
}

// FilterMap is Map dropping every result that is Same as sentinel.
func (e *Engine) FilterMap(input, sentinel any, fn Func, opts ...options.Option) ([]any, error) {
	if err := e.checkFunc("FilterMap", 3, fn); err != nil {
		return nil, err
	}

	res, err := e.run("FilterMap", ModeFilterMap, input, sentinel, fn, nil, opts)
	if err != nil {
		return nil, err
	}

	return res.([]any), nil
}

// BuildMapping collects the key/value pairs returned by fn into a new map.
// A nil result skips the element.
func (e *Engine) BuildMapping(input any, fn Func, opts ...options.Option) (map[any]any, error) {
	if err := e.checkFunc("BuildMapping", 2, fn); err != nil {
		return nil, err
	}

	out := anyMapSink{}
	if _, err := e.run("BuildMapping", ModeBuildMapping, input, nil, fn, out, opts); err != nil {
		return nil, err
	}

	return out, nil
}

// BuildMappingInto is BuildMapping writing into base, which must be a non-nil
// Go map or *object.Object. base is mutated and returned. On failure the
// pairs stored before the offending element remain in base.
func (e *Engine) BuildMappingInto(input, base any, fn Func, opts ...options.Option) (any, error) {
	const op = "BuildMappingInto"

	out, ok := newSink(base)
	if !ok {
		tag := kind.Classify(base)
		msg := fmt.Sprintf("argument #2 must be a mapping but instead is %s", tag)
		if tag == kind.TagObject {
			msg = fmt.Sprintf("argument #2 must be a map or an ordered object but instead is %s", reflect.TypeOf(base))
		}

		return nil, e.fail(ErrBadBase, diagnostic.Diagnostic{
			Code:     diagnostic.CodeBadBase,
			Message:  msg,
			Op:       op,
			Argument: 2,
			Type:     tag.String(),
			Value:    diagnostic.Describe(base),
		})
	}

	if err := e.checkFunc(op, 3, fn); err != nil {
		return nil, err
	}

	return e.run(op, ModeBuildMapping, input, nil, fn, out, opts)
}

// BuildInto is BuildMappingInto for a typed map. A nil engine means Default,
// a nil base is allocated.
func BuildInto[K comparable, V any](e *Engine, input any, base map[K]V, fn Func, opts ...options.Option) (map[K]V, error) {
	if e == nil {
		e = Default()
	}
	if base == nil {
		base = make(map[K]V)
	}

	if _, err := e.BuildMappingInto(input, base, fn, opts...); err != nil {
		return nil, err
	}

	return base, nil
}

// StopOnMatch returns the first result of fn that is Same as sentinel without
// visiting further elements, or the last result if none matches. An empty
// input yields nil.
func (e *Engine) StopOnMatch(input, sentinel any, fn Func, opts ...options.Option) (any, error) {
	if err := e.checkFunc("StopOnMatch", 3, fn); err != nil {
		return nil, err
	}

	return e.run("StopOnMatch", ModeStopOnMatch, input, sentinel, fn, nil, opts)
}

// StopOnMismatch returns the first result of fn that is not Same as sentinel,
// or the last result if all of them are. An empty input yields nil.
func (e *Engine) StopOnMismatch(input, sentinel any, fn Func, opts ...options.Option) (any, error) {
	if err := e.checkFunc("StopOnMismatch", 3, fn); err != nil {
		return nil, err
	}

	return e.run("StopOnMismatch", ModeStopOnMismatch, input, sentinel, fn, nil, opts)
}

// KeysOf lists the keys input is traversed by: indices for sequences and
// singletons, keys for mappings.
func (e *Engine) KeysOf(input any, opts ...options.Option) ([]any, error) {
	return e.Map(input, func(_, key any) any { return key }, opts...)
}
