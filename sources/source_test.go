package sources

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLines(t *testing.T) {
	s := New("a.ion", "let x\n\nfn")
	lines := s.Lines()
	if len(lines) != 3 || lines[0] != "let x" || lines[2] != "fn" {
		t.Fatalf("got %q", lines)
	}

	literal := &Source{Name: "b.ion", Content: "1\n2"}
	if got := literal.Lines(); len(got) != 2 {
		t.Fatalf("got %q", got)
	}
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "src")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "main.ion")
	if err := os.WriteFile(path, []byte("let x = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path, root)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != filepath.Join("src", "main.ion") {
		t.Fatalf("got %s", s.Name)
	}
	if s.Path != path || s.Content != "let x = 1" {
		t.Fatalf("got %#v", s)
	}

	outside, err := Load(path, filepath.Join(root, "other"))
	if err != nil {
		t.Fatal(err)
	}
	if outside.Name != path {
		t.Fatalf("got %s", outside.Name)
	}

	if _, err := Load(filepath.Join(root, "missing.ion"), root); err == nil {
		t.Fatal("should error")
	}
}

func TestSnippet(t *testing.T) {
	cases := []struct {
		content  string
		line     int
		column   int
		expected string
	}{
		{"let x = `", 1, 8, "let x = `\n        ^\n"},
		{"a\n\tb $", 2, 3, "\tb $\n\t  ^\n"},
		{"名前 $", 1, 3, "名前 $\n     ^\n"},
		{"a\r\nb", 1, 0, "a\n^\n"},
		{"a", 2, 0, ""},
		{"a", 0, 0, ""},
	}
	for _, c := range cases {
		got := New("x.ion", c.content).Snippet(c.line, c.column)
		if got != c.expected {
			t.Fatalf("%q %d:%d: got %q", c.content, c.line, c.column, got)
		}
	}
}
