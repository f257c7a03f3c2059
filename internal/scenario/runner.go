package scenario

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/rs/zerolog"

	"github.com/rawbytedev/sc"
	"github.com/rawbytedev/sc/internal/board"
)

type registration struct {
	obs       Observer
	guard     sc.Guard[Observer]
	slot      int
	forgotten bool
}

// Runner plays a scenario against a board of observer slots and writes a
// transcript of what each step observed.
type Runner struct {
	out   io.Writer
	log   zerolog.Logger
	board *board.Board[Observer]
	regs  *swiss.Map[string, *registration]
}

func NewRunner(slots int, out io.Writer, log zerolog.Logger) *Runner {
	slots = min(max(slots, 0), MaxSlots)
	return &Runner{
		out:   out,
		log:   log,
		board: board.New[Observer](slots),
		regs:  swiss.NewMap[string, *registration](uint32(slots) + 1),
	}
}

// Run validates cfg and plays its steps on a fresh runner.
func Run(cfg Config, out io.Writer, log zerolog.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := NewRunner(cfg.Slots, out, log)
	for i, st := range cfg.Steps {
		r.Step(i+1, st)
	}
	r.Finish()
	return nil
}

func (r *Runner) Step(n int, st Step) {
	ev := r.log.Debug().Int("step", n)
	switch {
	case st.Register != "":
		ev.Str("register", st.Register).Msg("step")
		r.register(st.Register, st.Kind)
	case st.Post != "":
		ev.Str("post", st.Post).Msg("step")
		r.post(st.Post)
	case st.Release != "":
		ev.Str("release", st.Release).Msg("step")
		r.release(st.Release)
	case st.Forget != "":
		ev.Str("forget", st.Forget).Msg("step")
		r.forget(st.Forget)
	}
}

func (r *Runner) register(name, kind string) {
	if kind == "" {
		kind = KindEcho
	}
	if _, ok := r.regs.Get(name); ok {
		fmt.Fprintf(r.out, "register %s: already registered\n", name)
		return
	}
	reg := &registration{obs: newObserver(kind, name, r.out)}
	g, slot, ok := r.board.Register(&reg.obs)
	if !ok {
		r.log.Warn().Str("name", name).Int("slots", r.board.Len()).Msg("board full")
		fmt.Fprintf(r.out, "register %s: no free slot\n", name)
		return
	}
	reg.guard, reg.slot = g, slot
	r.regs.Put(name, reg)
	fmt.Fprintf(r.out, "register %s (%s) -> slot %d\n", name, kind, slot)
}

func (r *Runner) post(msg string) {
	fmt.Fprintf(r.out, "post %q\n", msg)
	var n int
	r.board.Each(func(_ int, o *Observer) {
		(*o).Notify(msg)
		n++
	})
	if n == 0 {
		fmt.Fprintf(r.out, "  no one to notify\n")
	}
}

func (r *Runner) release(name string) {
	reg, ok := r.regs.Get(name)
	if !ok {
		fmt.Fprintf(r.out, "release %s: not registered\n", name)
		return
	}
	r.regs.Delete(name)
	if reg.forgotten {
		fmt.Fprintf(r.out, "release %s: guard was forgotten, slot %d stays bound\n", name, reg.slot)
		return
	}
	reg.guard.Release()
	fmt.Fprintf(r.out, "release %s -> slot %d empty%s\n", name, reg.slot, summary(reg.obs))
}

// forget drops the guard without releasing it, leaving the slot bound past
// the registration's end.
func (r *Runner) forget(name string) {
	reg, ok := r.regs.Get(name)
	if !ok {
		fmt.Fprintf(r.out, "forget %s: not registered\n", name)
		return
	}
	if reg.forgotten {
		fmt.Fprintf(r.out, "forget %s: already forgotten\n", name)
		return
	}
	reg.forgotten = true
	reg.guard = sc.Guard[Observer]{}
	r.log.Warn().Str("name", name).Int("slot", reg.slot).Msg("guard forgotten")
	fmt.Fprintf(r.out, "forget %s -> slot %d stays bound\n", name, reg.slot)
}

// Finish releases every outstanding registration in name order and reports
// slots left bound by forgotten guards.
func (r *Runner) Finish() {
	var names []string
	r.regs.Iter(func(name string, reg *registration) bool {
		if !reg.forgotten {
			names = append(names, name)
		}
		return false
	})
	sort.Strings(names)
	for _, name := range names {
		r.release(name)
	}
	fmt.Fprintf(r.out, "end: %d/%d slots bound\n", r.board.Bound(), r.board.Len())
}

func summary(o Observer) string {
	c, ok := o.(*collectObserver)
	if !ok {
		return ""
	}
	return fmt.Sprintf(", %d logs [%s]", len(c.logs), strings.Join(c.logs, "; "))
}
