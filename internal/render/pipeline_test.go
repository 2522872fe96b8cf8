package render

import (
	"bytes"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// syncBuffer is a bytes.Buffer safe for the render actor and the test.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func forcedBlank(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	blank := core.NewFrame()
	if err := Render(&buf, blank, blank, true); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	return buf.String()
}

func TestPipelineIdenticalFramesWriteNothing(t *testing.T) {
	out := &syncBuffer{}
	p := NewPipeline(out, nil)

	a := core.NewFrame()
	a.WriteText(0, 0, "Score")
	b := core.NewFrame()
	b.WriteText(0, 0, "Score")

	if err := p.Submit(a); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if err := p.Submit(b); err != nil {
		t.Fatalf("Submit() failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	var first bytes.Buffer
	if err := Render(&first, core.NewFrame(), a, false); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	expected := forcedBlank(t) + first.String()
	if out.String() != expected {
		t.Errorf("Second identical frame should add no output\n got: %q\nwant: %q", out.String(), expected)
	}
	if p.Painted() != 2 {
		t.Errorf("Painted() = %d, expected 2", p.Painted())
	}
}

func TestPipelinePreservesOrder(t *testing.T) {
	out := &syncBuffer{}
	p := NewPipeline(out, nil)

	digits := "0123456789"
	for _, d := range digits {
		f := core.NewFrame()
		f.Set(0, 0, core.Cell(string(d)))
		if err := p.Submit(f); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	re := regexp.MustCompile(`\x1b\[1;1H([0-9])`)
	var got string
	for _, m := range re.FindAllStringSubmatch(out.String(), -1) {
		got += m[1]
	}
	if got != digits {
		t.Errorf("Frames painted in order %q, expected %q", got, digits)
	}
}

func TestPipelineSubmitDoesNotWaitForRender(t *testing.T) {
	gate := make(chan struct{})
	w := &gatedWriter{gate: gate}
	p := NewPipeline(w, nil)

	// The render actor is stuck on the initial paint; submissions must
	// still go through.
	for i := 0; i < 100; i++ {
		f := core.NewFrame()
		f.Set(i%core.FrameWidth, 0, "x")
		if err := p.Submit(f); err != nil {
			t.Fatalf("Submit() failed: %v", err)
		}
	}

	close(gate)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if p.Painted() != 100 {
		t.Errorf("Painted() = %d, expected 100", p.Painted())
	}
}

func TestPipelineRenderFailure(t *testing.T) {
	p := NewPipeline(brokenWriter{}, nil)

	f := core.NewFrame()
	f.Set(0, 0, "A")
	_ = p.Submit(f)

	err := p.Close()
	if !errors.Is(err, errBroken) {
		t.Errorf("Close() error = %v, expected %v", err, errBroken)
	}
	if err := p.Submit(core.NewFrame()); !errors.Is(err, ErrClosed) {
		t.Errorf("Submit() after Close = %v, expected %v", err, ErrClosed)
	}
}

func TestPipelineCloseTwice(t *testing.T) {
	p := NewPipeline(&syncBuffer{}, nil)
	if err := p.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("Second Close() = %v, expected nil", err)
	}
}

type gatedWriter struct {
	gate chan struct{}
	once sync.Once
}

func (w *gatedWriter) Write(p []byte) (int, error) {
	w.once.Do(func() { <-w.gate })
	return len(p), nil
}
