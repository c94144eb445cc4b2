package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking positional arguments, a set of sub commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

// Func wraps fn as a command. fn may return nothing or a single error.
func Func(fn any) *Command {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	switch t := v.Type(); {
	case t.NumOut() > 1:
		panic(fmt.Errorf("command %v returns more than one value", t))
	case t.NumOut() == 1 && t.Out(0) != errorType:
		panic(fmt.Errorf("command %v must return error", t))
	}
	return &Command{
		Func: v,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}
