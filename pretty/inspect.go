package pretty

import (
	"reflect"
	"regexp"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/pretty-debug/internal/termsize"
)

// Option configures a single Inspect call.
type Option func(*options)

type options struct {
	breakLength    int
	hasBreakLength bool
}

// WithBreakLength sets the preferred maximum line width. Values below the
// width of a single item degrade to one item per line.
func WithBreakLength(n int) Option {
	return func(o *options) {
		o.breakLength = n
		o.hasBreakLength = true
	}
}

// Inspect renders v as debug text. Without WithBreakLength the width is the
// terminal's column count when stdout is a terminal, 80 otherwise.
func Inspect(v any, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if !o.hasBreakLength {
		o.breakLength = termsize.BreakLength()
	}

	p := newPrinter()
	return p.inspect(reflect.ValueOf(v), renderContext{maxWidth: o.breakLength})
}

// InspectList renders items as a list, [a, b, c].
func InspectList(items []any, opts ...Option) string {
	if items == nil {
		items = []any{}
	}
	return Inspect(items, opts...)
}

// renderContext is passed by value; children get a narrower copy.
type renderContext struct {
	maxWidth int
}

func (c renderContext) child() renderContext {
	return renderContext{maxWidth: c.maxWidth - 2}
}

// visit identifies a reference on the current rendering path.
type visit struct {
	typ reflect.Type
	ptr uintptr
	n   int
}

// printer holds the state of one Inspect call: the references currently
// being rendered, used to cut cycles.
type printer struct {
	active map[visit]struct{}
}

func newPrinter() *printer {
	return &printer{active: make(map[visit]struct{})}
}

func (p *printer) enter(key visit) bool {
	if _, ok := p.active[key]; ok {
		return false
	}
	p.active[key] = struct{}{}
	return true
}

func (p *printer) leave(key visit) {
	delete(p.active, key)
}

func (p *printer) cycle(v reflect.Value) string {
	Logger().Debug("cycle detected", zap.Stringer("type", v.Type()))
	return cycleText
}

func (p *printer) inspect(v reflect.Value, ctx renderContext) string {
	for v.IsValid() {
		if v.Kind() == reflect.Interface && !v.IsNil() {
			v = v.Elem()
			continue
		}
		if v.Kind() == reflect.Pointer && !v.IsNil() && !keepsPointer(v) {
			key := visit{typ: v.Type(), ptr: v.Pointer()}
			if !p.enter(key) {
				return p.cycle(v)
			}
			defer p.leave(key)
			v = v.Elem()
			continue
		}
		break
	}
	if v.Kind() == reflect.Pointer && !v.IsNil() {
		key := visit{typ: v.Type(), ptr: v.Pointer()}
		if !p.enter(key) {
			return p.cycle(v)
		}
		defer p.leave(key)
	}

	switch kind := classify(v); kind {
	case KindBoolean:
		return inspectBool(v.Bool())
	case KindHostNull:
		return hostNullText
	case KindAbsent:
		return "Nil"
	case KindString:
		return InspectString(v.String())
	case KindInteger:
		return inspectInteger(v)
	case KindFloat:
		return inspectFloat(v)
	case KindTuple:
		return p.inspectTuple(v, ctx)
	case KindList:
		return p.inspectList(v, ctx)
	case KindCodepoint:
		return InspectCodepoint(rune(v.Field(0).Int()))
	case KindBitArray:
		return InspectBitArray(v.Bytes())
	case KindRecord:
		r := v.Interface().(Variant)
		if out, ok := guard(func() string { return p.inspectRecord(r, ctx) }); ok {
			return out
		}
		return p.fallback(v, kind)
	case KindMap:
		if v.Type() == dictType {
			return p.inspectDict(v, ctx)
		}
		return p.inspectMap(v, ctx)
	case KindSet:
		return p.inspectSet(v, ctx)
	case KindRegexp:
		if !v.CanInterface() {
			return inspectOpaque(v)
		}
		return inspectRegexp(v.Interface().(*regexp.Regexp).String())
	case KindTime:
		if !v.CanInterface() {
			return inspectOpaque(v)
		}
		return inspectTime(v.Interface().(time.Time))
	case KindFunction:
		return inspectFunction(v.Type().NumIn())
	case KindError:
		err := v.Interface().(error)
		if out, ok := guard(func() string { return inspectError(err.Error()) }); ok {
			return out
		}
		return p.fallback(v, kind)
	case KindObject:
		return p.inspectObject(v, ctx)
	default:
		return p.fallback(v, kind)
	}
}

// fallback renders values that could not be handled by their kind.
func (p *printer) fallback(v reflect.Value, kind Kind) string {
	if v.IsValid() {
		Logger().Debug("rendering opaque value",
			zap.Stringer("type", v.Type()),
			zap.Stringer("kind", kind))
	}
	return inspectOpaque(v)
}

// guard runs a render step that calls into user methods, reporting false
// if it panicked.
func guard(fn func() string) (out string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("render step panicked", zap.Any("panic", r))
			ok = false
		}
	}()
	return fn(), true
}
