package pretty

import (
	"reflect"
	"sort"
	"strings"
)

func (p *printer) inspectSequence(v reflect.Value, ctx renderContext, prefix, suffix string) string {
	if v.Kind() == reflect.Slice && v.Len() > 0 {
		key := visit{typ: v.Type(), ptr: v.Pointer(), n: v.Len()}
		if !p.enter(key) {
			return p.cycle(v)
		}
		defer p.leave(key)
	}

	child := ctx.child()
	items := make([]string, v.Len())
	for i := range items {
		items[i] = p.inspect(v.Index(i), child)
	}
	return layout(shape{prefix: prefix, suffix: suffix, items: items}, ctx.maxWidth)
}

func (p *printer) inspectTuple(v reflect.Value, ctx renderContext) string {
	return p.inspectSequence(v, ctx, "#(", ")")
}

func (p *printer) inspectList(v reflect.Value, ctx renderContext) string {
	return p.inspectSequence(v, ctx, "[", "]")
}

// inspectPair renders a key/value entry as a two element tuple.
func (p *printer) inspectPair(k, v reflect.Value, ctx renderContext) string {
	child := ctx.child()
	items := []string{p.inspect(k, child), p.inspect(v, child)}
	return layout(shape{prefix: "#(", suffix: ")", items: items}, ctx.maxWidth)
}

// inspectDict renders a Dict in insertion order. It reads the pairs through
// reflection so dicts held in unexported fields render too.
func (p *printer) inspectDict(v reflect.Value, ctx renderContext) string {
	pairs := v.Field(0)
	if pairs.Len() > 0 {
		key := visit{typ: pairs.Type(), ptr: pairs.Pointer(), n: pairs.Len()}
		if !p.enter(key) {
			return p.cycle(v)
		}
		defer p.leave(key)
	}

	child := ctx.child()
	items := make([]string, pairs.Len())
	for i := range items {
		pair := pairs.Index(i)
		items[i] = p.inspectPair(pair.Field(0), pair.Field(1), child)
	}
	return layout(shape{prefix: "dict.from_list([", suffix: "])", items: items}, ctx.maxWidth)
}

type mapEntry struct {
	key      string
	rendered string
}

// inspectMap renders a Go map. Entries are ordered by the rendered key, then
// by the whole rendered entry, so output does not depend on map iteration
// order even when distinct keys print the same.
func (p *printer) inspectMap(v reflect.Value, ctx renderContext) string {
	if v.Len() > 0 {
		key := visit{typ: v.Type(), ptr: v.Pointer()}
		if !p.enter(key) {
			return p.cycle(v)
		}
		defer p.leave(key)
	}

	child := ctx.child()
	keyCtx := child.child()
	entries := make([]mapEntry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{
			key:      p.inspect(iter.Key(), keyCtx),
			rendered: p.inspectPair(iter.Key(), iter.Value(), child),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].key != entries[j].key {
			return entries[i].key < entries[j].key
		}
		return entries[i].rendered < entries[j].rendered
	})

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = e.rendered
	}
	return layout(shape{prefix: "dict.from_list([", suffix: "])", items: items}, ctx.maxWidth)
}

// inspectSet renders map[K]struct{} values on one line with sorted elements.
func (p *printer) inspectSet(v reflect.Value, ctx renderContext) string {
	if v.Len() > 0 {
		key := visit{typ: v.Type(), ptr: v.Pointer()}
		if !p.enter(key) {
			return p.cycle(v)
		}
		defer p.leave(key)
	}

	elems := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		elems = append(elems, p.inspect(iter.Key(), ctx))
	}
	sort.Strings(elems)
	return foreignOpen + "Set(" + strings.Join(elems, separator) + ")" + foreignClose
}

// inspectRecord renders a tagged value. Without fields only the tag is
// printed; labeled fields render as "label: value", positional ones bare.
func (p *printer) inspectRecord(r Variant, ctx renderContext) string {
	tag := r.Tag()
	fields := r.Fields()
	if len(fields) == 0 {
		return tag
	}

	backing := reflect.ValueOf(fields)
	key := visit{typ: backing.Type(), ptr: backing.Pointer(), n: len(fields)}
	if !p.enter(key) {
		return p.cycle(backing)
	}
	defer p.leave(key)

	child := ctx.child()
	items := make([]string, len(fields))
	for i, f := range fields {
		value := p.inspect(reflect.ValueOf(f.Value), child)
		if isPositional(f.Label) {
			items[i] = value
		} else {
			items[i] = f.Label + ": " + value
		}
	}
	return layout(shape{prefix: tag + "(", suffix: ")", items: items}, ctx.maxWidth)
}

// isPositional reports whether a field label is empty or starts with a
// number, optionally signed and preceded by whitespace.
func isPositional(label string) bool {
	s := strings.TrimLeft(label, " \t\n\r")
	if s == "" {
		return true
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// inspectObject renders a host struct with the foreign marker, its type name
// when it has one, and "key": value entries.
func (p *printer) inspectObject(v reflect.Value, ctx renderContext) string {
	t := v.Type()
	prefix := foreignOpen
	if name := t.Name(); name != "" {
		prefix += name + " "
	}
	prefix += "{"

	child := ctx.child()
	items := make([]string, t.NumField())
	for i := range items {
		items[i] = InspectString(t.Field(i).Name) + ": " + p.inspect(v.Field(i), child)
	}
	return layout(shape{prefix: prefix, suffix: "}" + foreignClose, items: items, padded: true}, ctx.maxWidth)
}
