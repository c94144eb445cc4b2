package cmds

var global = NewExecutor()

// Define registers a command on the process-wide executor.
// Packages call it from init or package-level vars.
func Define(name string, command *Command) {
	global.Define(name, command)
}

func Execute(args []string) error {
	return global.Execute(args)
}

func PrintUsage() {
	global.PrintUsage()
}
