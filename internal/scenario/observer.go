package scenario

import (
	"fmt"
	"io"
)

type Observer interface {
	Name() string
	Notify(msg string)
}

type echoObserver struct {
	name string
	out  io.Writer
}

func (o *echoObserver) Name() string { return o.name }

func (o *echoObserver) Notify(msg string) {
	fmt.Fprintf(o.out, "  echo %s: %s\n", o.name, msg)
}

type collectObserver struct {
	name string
	out  io.Writer
	logs []string
}

func (o *collectObserver) Name() string { return o.name }

func (o *collectObserver) Notify(msg string) {
	fmt.Fprintf(o.out, "  collect %s: %s\n", o.name, msg)
	o.logs = append(o.logs, msg)
}

func newObserver(kind, name string, out io.Writer) Observer {
	if kind == KindCollect {
		return &collectObserver{name: name, out: out}
	}
	return &echoObserver{name: name, out: out}
}
