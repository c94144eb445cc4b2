package configs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var testSchema = `
str?: string
list?: [...int]
quotes?: string
`

func TestLoaderDecode(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var str string
	if err := loader.Decode("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "bar" {
		t.Fatalf("got %q", str)
	}

	var list []int
	if err := loader.Decode("list", &list); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", list); str != "[1 2 3]" {
		t.Fatalf("got %s", str)
	}

	if err := loader.Decode("not", &list); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	var n int
	err := loader.Decode("str", &n)
	if err == nil || !strings.Contains(err.Error(), "test.cue") {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderPrecedence(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)
	var str string
	if err := loader.Decode("str", &str); err != nil {
		t.Fatal(err)
	}
	if str != "foo" {
		t.Fatalf("got %q", str)
	}

	// only test.cue sets list
	var list []int
	if err := loader.Decode("list", &list); err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 {
		t.Fatalf("got %v", list)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.Decode("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	if !strings.Contains(err.Error(), "bad.cue") {
		t.Fatalf("got %v", err)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"no-such-file.cue"}, testSchema)
	var str string
	if err := loader.Decode("str", &str); err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

type testQuotes string

func (testQuotes) ConfigPath() string {
	return "quotes"
}

type testJobs int

func (testJobs) ConfigPath() string {
	return "jobs"
}

func TestLookup(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)

	quotes, file, ok := LookupFrom[testQuotes](loader)
	if !ok {
		t.Fatal("should be found")
	}
	if quotes != "matching" {
		t.Fatalf("got %v", quotes)
	}
	if file != "test.cue" {
		t.Fatalf("got %v", file)
	}

	jobs, ok := Lookup[testJobs](loader)
	if ok {
		t.Fatalf("got %v", jobs)
	}
}
