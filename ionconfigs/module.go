package ionconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/ion/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
