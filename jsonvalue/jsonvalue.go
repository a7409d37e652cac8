// Package jsonvalue decodes JSON documents into values the pretty printer
// renders natively. Object member order is preserved.
//
// Mapping:
//
//	object          pretty.Dict with string keys
//	object + "$tag" pretty.Record named by the tag, other members as fields
//	array           []any
//	integer         int64, or *big.Int when it does not fit
//	other number    float64
//	string, bool    string, bool
//	null            pretty.Nil
package jsonvalue

import (
	"bytes"
	stderrors "errors"
	"math/big"
	"strconv"

	"github.com/buger/jsonparser"

	"github.com/wippyai/pretty-debug/errors"
	"github.com/wippyai/pretty-debug/pretty"
)

// TagKey marks an object as a tagged record.
const TagKey = "$tag"

// Decode decodes a single JSON document.
func Decode(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.InvalidInput(errors.PhaseDecode, "empty document")
	}

	raw, typ, end, err := jsonparser.Get(trimmed)
	if err != nil {
		return nil, errors.ParseFailed("json", err)
	}
	if rest := bytes.TrimSpace(trimmed[end:]); len(rest) > 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, nil, "unexpected data after document: "+truncate(rest))
	}
	return decodeValue(raw, typ, nil)
}

// DecodeLines decodes one document per non-blank line.
func DecodeLines(data []byte) ([]any, error) {
	var out []any
	for i, line := range bytes.Split(data, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		v, err := Decode(line)
		if err != nil {
			var e *errors.Error
			if stderrors.As(err, &e) {
				e.Path = append([]string{"line " + strconv.Itoa(i+1)}, e.Path...)
			}
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeValue(raw []byte, typ jsonparser.ValueType, path []string) (any, error) {
	switch typ {
	case jsonparser.Null:
		return pretty.Nil{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, invalid(path, err)
		}
		return b, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, invalid(path, err)
		}
		return s, nil
	case jsonparser.Number:
		return decodeNumber(raw, path)
	case jsonparser.Array:
		return decodeArray(raw, path)
	case jsonparser.Object:
		return decodeObject(raw, path)
	default:
		return nil, errors.InvalidData(errors.PhaseDecode, path, "unknown value "+truncate(raw))
	}
}

func decodeNumber(raw []byte, path []string) (any, error) {
	if !bytes.ContainsAny(raw, ".eE") {
		n, err := jsonparser.ParseInt(raw)
		if err == nil {
			return n, nil
		}
		if !stderrors.Is(err, jsonparser.OverflowIntegerError) {
			return nil, invalid(path, err)
		}
		if n, ok := new(big.Int).SetString(string(raw), 10); ok {
			return n, nil
		}
		return nil, errors.InvalidData(errors.PhaseDecode, path, "bad integer "+truncate(raw))
	}

	f, err := jsonparser.ParseFloat(raw)
	if err != nil {
		return nil, invalid(path, err)
	}
	return f, nil
}

func decodeArray(raw []byte, path []string) (any, error) {
	items := []any{}
	var firstErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}
		if err != nil {
			firstErr = invalid(path, err)
			return
		}
		v, err := decodeValue(value, typ, appendPath(path, strconv.Itoa(len(items))))
		if err != nil {
			firstErr = err
			return
		}
		items = append(items, v)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	if err != nil {
		return nil, invalid(path, err)
	}
	return items, nil
}

func decodeObject(raw []byte, path []string) (any, error) {
	var (
		dict   pretty.Dict
		tag    string
		tagged bool
	)
	err := jsonparser.ObjectEach(raw, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		// keys arrive unescaped
		name := string(key)
		if name == TagKey && typ == jsonparser.String && !tagged {
			var err error
			tag, err = jsonparser.ParseString(value)
			if err != nil {
				return invalid(appendPath(path, name), err)
			}
			tagged = true
			return nil
		}
		v, err := decodeValue(value, typ, appendPath(path, name))
		if err != nil {
			return err
		}
		dict.Set(name, v)
		return nil
	})
	if err != nil {
		var e *errors.Error
		if stderrors.As(err, &e) {
			return nil, e
		}
		return nil, invalid(path, err)
	}

	if !tagged {
		return dict, nil
	}
	fields := make([]pretty.Field, len(dict.Pairs))
	for i, p := range dict.Pairs {
		fields[i] = pretty.Labeled(p.Key.(string), p.Value)
	}
	return pretty.NewRecord(tag, fields...), nil
}

func invalid(path []string, cause error) *errors.Error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Path(path...).
		Cause(cause).
		Build()
}

func appendPath(path []string, elem string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, elem)
}

func truncate(b []byte) string {
	const limit = 32
	if len(b) > limit {
		return string(b[:limit]) + "..."
	}
	return string(b)
}
