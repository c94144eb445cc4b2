package cmds

// Var defines name <value> to set the returned variable and name. to reset it.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name))

	return &value
}

// Collect defines name <value>, which may be repeated, appending to the returned slice.
func Collect[T any](name string, desc string) *[]T {
	var values []T
	Define(name, Func(func(v T) {
		values = append(values, v)
	}).Desc(desc))
	return &values
}
