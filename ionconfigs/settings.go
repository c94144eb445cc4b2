package ionconfigs

import (
	"os"

	"github.com/reusee/ion/cmds"
	"github.com/reusee/ion/configs"
	"github.com/reusee/ion/logs"
	"github.com/reusee/ion/vars"
)

// Quotes names the string literal quote mode, "double" or "matching".
type Quotes string

var _ configs.Configurable = Quotes("")

func (Quotes) ConfigPath() string {
	return "quotes"
}

var quotesFlag = cmds.Var[string]("-quotes", "string literal quotes: double or matching")

func (Module) Quotes(
	loader configs.Loader,
	logger logs.Logger,
) Quotes {
	config := lookup[Quotes](loader, logger)
	return Quotes(vars.FirstNonZero(
		*quotesFlag,
		string(config),
		"double",
	))
}

// Jobs bounds how many files are tokenized concurrently.
type Jobs int

var _ configs.Configurable = Jobs(0)

func (Jobs) ConfigPath() string {
	return "jobs"
}

var jobsFlag = cmds.Var[int]("-jobs", "number of files tokenized concurrently")

func (Module) Jobs(
	loader configs.Loader,
	logger logs.Logger,
) Jobs {
	config := lookup[Jobs](loader, logger)
	return Jobs(vars.FirstNonZero(
		*jobsFlag,
		int(config),
		4,
	))
}

// SourceRoot is the directory source names are relative to.
type SourceRoot string

var _ configs.Configurable = SourceRoot("")

func (SourceRoot) ConfigPath() string {
	return "source_root"
}

var sourceRootFlag = cmds.Var[string]("-root", "directory source names are relative to")

func (Module) SourceRoot(
	loader configs.Loader,
	logger logs.Logger,
) SourceRoot {
	config := lookup[SourceRoot](loader, logger)
	root := vars.FirstNonZero(
		*sourceRootFlag,
		string(config),
	)
	if root == "" {
		if wd, err := os.Getwd(); err == nil {
			root = wd
		}
	}
	return SourceRoot(root)
}

func lookup[T configs.Configurable](loader configs.Loader, logger logs.Logger) T {
	value, file, ok := configs.LookupFrom[T](loader)
	if ok {
		logger.Debug("config value",
			"path", value.ConfigPath(),
			"value", value,
			"file", file,
		)
	}
	return value
}
