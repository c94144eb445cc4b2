package configs

import "errors"

// Configurable is a setting type that knows its path in the config files.
type Configurable interface {
	ConfigPath() string
}

// Lookup decodes the first value at the path of T. It reports false if no file sets it.
// Invalid config files panic.
func Lookup[T Configurable](loader Loader) (T, bool) {
	value, _, ok := LookupFrom[T](loader)
	return value, ok
}

// LookupFrom is Lookup that also returns the file the value came from.
func LookupFrom[T Configurable](loader Loader) (value T, file string, ok bool) {
	var zero T
	file, err := loader.decode(zero.ConfigPath(), &value)
	if err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return zero, "", false
		}
		panic(err)
	}
	return value, file, true
}
