package debugs

import (
	"testing"

	"github.com/reusee/ion/syntax"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type position struct {
		Line   int
		Column uint16
		hidden bool
	}
	pos := &position{Line: 3, Column: 4}

	posDict := func() starlark.Value {
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("Line"), starlark.MakeInt(3))
		d.SetKey(starlark.String("Column"), starlark.MakeInt(4))
		return d
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("let"), starlark.Bytes("let")},
		{"string", "fn", starlark.String("fn")},
		{"int", 42, starlark.MakeInt(42)},
		{"int8", int8(-3), starlark.MakeInt(-3)},
		{"uint64", uint64(7), starlark.MakeInt(7)},
		{"float32", float32(1.5), starlark.Float(1.5)},
		{"float64", 0.25, starlark.Float(0.25)},
		{"starlark value", starlark.String("x"), starlark.String("x")},
		{"kind", syntax.GTE, starlark.String("GTE")},
		{"text payload", syntax.TextValue("s"), starlark.String("s")},
		{"absent payload", syntax.Value{}, starlark.None},
		{"strings", []string{"let", "fn"}, starlark.NewList([]starlark.Value{starlark.String("let"), starlark.String("fn")})},
		{"array", [2]int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"map", map[string]int{"let": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("let"), starlark.MakeInt(1))
			return d
		}()},
		{"struct", *pos, posDict()},
		{"pointer", pos, posDict()},
		{"pointer to pointer", &pos, posDict()},
		{"nil pointer", (*position)(nil), starlark.None},
		{"nested", map[string]any{"kinds": []syntax.Kind{syntax.Plus, syntax.Minus}}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("kinds"), starlark.NewList([]starlark.Value{starlark.String("Plus"), starlark.String("Minus")}))
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("should panic")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}

func TestTokenToStarlarkValue(t *testing.T) {
	token := syntax.Token{
		Kind: syntax.BoolLiteral,
		Text: "true",
		Span: syntax.Span{
			Start: syntax.Location{File: "a.ion", Position: 2, Line: 1, Column: 2},
			End:   syntax.Location{File: "a.ion", Position: 6, Line: 1, Column: 6},
		},
		Value: syntax.BoolValue(true),
	}
	d, ok := toStarlarkValue(token).(*starlark.Dict)
	if !ok {
		t.Fatalf("got %T", toStarlarkValue(token))
	}
	for key, expected := range map[string]starlark.Value{
		"kind":  starlark.String("BoolLiteral"),
		"text":  starlark.String("true"),
		"value": starlark.True,
	} {
		got, found, err := d.Get(starlark.String(key))
		if err != nil || !found {
			t.Fatalf("%s: %v %v", key, found, err)
		}
		if got != expected {
			t.Fatalf("%s: got %v", key, got)
		}
	}

	start, found, err := d.Get(starlark.String("start"))
	if err != nil || !found {
		t.Fatalf("start: %v %v", found, err)
	}
	column, _, _ := start.(*starlark.Dict).Get(starlark.String("column"))
	if equal, _ := starlark.Equal(column, starlark.MakeInt(2)); !equal {
		t.Fatalf("got %v", column)
	}

	span, ok := toStarlarkValue(token.Span).(*starlark.Dict)
	if !ok || span.Len() != 2 {
		t.Fatalf("got %v", span)
	}

	if got := toStarlarkValue(syntax.IntegerValue(3)); got != starlark.Float(3) {
		t.Fatalf("got %v", got)
	}
}
