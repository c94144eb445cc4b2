package configs

import (
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads a list of cue files, validated against a closed schema.
// Earlier files take precedence over later ones.
type Loader struct {
	roots func() ([]root, error)
}

type root struct {
	value cue.Value
	path  string
}

func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		roots: sync.OnceValues(func() ([]root, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) (ret []root, err error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, fmt.Errorf("compile schema: %w", err)
		}
	}

	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		value := ctx.CompileBytes(content, cue.Filename(filePath))
		if err := value.Err(); err != nil {
			return nil, fmt.Errorf("compile %s: %w", filePath, err)
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, fmt.Errorf("validate %s: %w", filePath, err)
			}
		}
		ret = append(ret, root{
			value: value,
			path:  filePath,
		})
	}

	return
}

// Decode decodes the first value found at path into target.
// It returns ErrValueNotFound if no file sets the path.
func (l Loader) Decode(path string, target any) error {
	_, err := l.decode(path, target)
	return err
}

func (l Loader) decode(path string, target any) (filePath string, err error) {
	roots, err := l.roots()
	if err != nil {
		return "", err
	}
	cuePath := cue.ParsePath(path)
	for _, r := range roots {
		value := r.value.LookupPath(cuePath)
		if value.Err() != nil || !value.Exists() {
			continue
		}
		if err := value.Decode(target); err != nil {
			return "", fmt.Errorf("decode %s in %s: %w", path, r.path, err)
		}
		return r.path, nil
	}
	return "", ErrValueNotFound
}
