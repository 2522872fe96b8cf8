package render

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// ErrClosed is returned by Submit after Close.
var ErrClosed = errors.New("render: pipeline closed")

// Pipeline carries finished frames from the simulation to a render actor
// that owns the output and the diff baseline. Frames are delivered in the
// order they were submitted; the queue between the two sides is unbounded
// so a slow terminal never stalls the simulation.
//
// Submit and Close belong to the single producer goroutine.
type Pipeline struct {
	in     chan *core.Frame
	out    chan *core.Frame
	done   chan struct{}
	w      io.Writer
	logger *log.Logger

	closed atomic.Bool
	err    atomic.Pointer[error]
	frames atomic.Uint64
}

// NewPipeline starts the render actor writing to w.
func NewPipeline(w io.Writer, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	p := &Pipeline{
		in:     make(chan *core.Frame),
		out:    make(chan *core.Frame),
		done:   make(chan struct{}),
		w:      w,
		logger: logger,
	}
	go p.pump()
	go p.render()
	return p
}

// Submit hands the frame to the render actor. The caller must not use the
// frame afterwards. Returns the render actor's error once it has failed.
func (p *Pipeline) Submit(f *core.Frame) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if err := p.Err(); err != nil {
		return err
	}
	p.in <- f
	return nil
}

// Close stops accepting frames, waits until every queued frame has been
// painted and returns the first render error, if any.
func (p *Pipeline) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		close(p.in)
	}
	<-p.done
	return p.Err()
}

// Err returns the first error reported by the render actor.
func (p *Pipeline) Err() error {
	if e := p.err.Load(); e != nil {
		return *e
	}
	return nil
}

// Painted returns how many frames the render actor has processed.
func (p *Pipeline) Painted() uint64 {
	return p.frames.Load()
}

func (p *Pipeline) fail(err error) {
	if p.err.CompareAndSwap(nil, &err) {
		p.logger.Error("render actor failed", "error", err)
	}
}

// pump moves frames from in to out through a growable FIFO queue.
func (p *Pipeline) pump() {
	defer close(p.out)

	var queue []*core.Frame
	in := p.in
	for in != nil || len(queue) > 0 {
		var out chan<- *core.Frame
		var next *core.Frame
		if len(queue) > 0 {
			out = p.out
			next = queue[0]
		}

		select {
		case f, ok := <-in:
			if !ok {
				in = nil
				continue
			}
			queue = append(queue, f)
		case out <- next:
			queue[0] = nil
			queue = queue[1:]
		}
	}
}

// render is the render actor. It keeps draining after a failure so the
// pump can always finish.
func (p *Pipeline) render() {
	defer close(p.done)
	defer func() {
		if r := recover(); r != nil {
			p.fail(fmt.Errorf("render: actor panic: %v", r))
			for range p.out {
			}
		}
	}()

	last := core.NewFrame()
	if err := Render(p.w, last, last, true); err != nil {
		p.fail(err)
	}

	for f := range p.out {
		if p.Err() == nil {
			if err := Render(p.w, last, f, false); err != nil {
				p.fail(err)
			}
		}
		last = f
		p.frames.Add(1)
	}
}
