package cmds

import "testing"

func TestVarAndCollect(t *testing.T) {
	root := Var[string]("-test-root", "root")
	jobs := Var[int]("-test-jobs", "jobs")
	files := Collect[string]("test-lex", "files")

	if err := Execute([]string{
		"-test-root", "/src",
		"-test-jobs", "3",
		"test-lex", "a.ion",
		"test-lex", "b.ion",
	}); err != nil {
		t.Fatal(err)
	}
	if *root != "/src" || *jobs != 3 {
		t.Fatalf("got %v %v", *root, *jobs)
	}
	if len(*files) != 2 || (*files)[1] != "b.ion" {
		t.Fatalf("got %v", *files)
	}

	if err := Execute([]string{"-test-root."}); err != nil {
		t.Fatal(err)
	}
	if *root != "" {
		t.Fatalf("got %v", *root)
	}

	if err := Execute([]string{"-test-jobs", "x"}); err == nil {
		t.Fatal("should error")
	}
}
