package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/ion/syntax"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts Go values bound as tap globals.
// Tokens and their parts become dicts keyed by lower case field names.
func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {
	case nil:
		return starlark.None
	case starlark.Value:
		return v
	case []byte:
		return starlark.Bytes(v)
	case syntax.Kind:
		return starlark.String(v.String())
	case syntax.Value:
		return payloadToStarlark(v)
	case syntax.Location:
		return dict(
			"file", starlark.String(v.File),
			"position", starlark.MakeInt(v.Position),
			"line", starlark.MakeInt(v.Line),
			"column", starlark.MakeInt(v.Column),
		)
	case syntax.Span:
		return dict(
			"start", toStarlarkValue(v.Start),
			"end", toStarlarkValue(v.End),
		)
	case syntax.Token:
		return dict(
			"kind", starlark.String(v.Kind.String()),
			"text", starlark.String(v.Text),
			"start", toStarlarkValue(v.Span.Start),
			"end", toStarlarkValue(v.Span.End),
			"value", payloadToStarlark(v.Value),
		)
	}
	return reflectToStarlark(reflect.ValueOf(v))
}

func reflectToStarlark(value reflect.Value) starlark.Value {
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(typ.NumField())
		for i := range typ.NumField() {
			if field := typ.Field(i); field.IsExported() {
				d.SetKey(
					starlark.String(field.Name),
					toStarlarkValue(value.Field(i).Interface()),
				)
			}
		}
		return d

	case reflect.Pointer, reflect.Interface:
		if value.IsNil() {
			return starlark.None
		}
		return toStarlarkValue(value.Elem().Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %v", value.Type()))
}

func dict(kvs ...any) *starlark.Dict {
	d := starlark.NewDict(len(kvs) / 2)
	for i := 0; i < len(kvs); i += 2 {
		d.SetKey(starlark.String(kvs[i].(string)), kvs[i+1].(starlark.Value))
	}
	return d
}

func payloadToStarlark(v syntax.Value) starlark.Value {
	if n, ok := v.Number(); ok {
		return starlark.Float(n)
	}
	if b, ok := v.Boolean(); ok {
		return starlark.Bool(b)
	}
	if t, ok := v.Text(); ok {
		return starlark.String(t)
	}
	return starlark.None
}
