package tui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vito/progrock"
)

var _ progrock.Writer = (*Progress)(nil)

type stepState int

const (
	stepUnseen stepState = iota
	stepRunning
	stepFinished
)

// Progress is a progrock.Writer that prints one line when an install step
// starts and one when it finishes.
type Progress struct {
	mu    sync.Mutex
	w     io.Writer
	steps map[string]stepState
}

// NewProgress creates a Progress that writes to w.
func NewProgress(w io.Writer) *Progress {
	return &Progress{
		w:     w,
		steps: make(map[string]stepState),
	}
}

// WriteStatus processes the vertex updates of a status update. Log and group
// updates are ignored.
func (p *Progress) WriteStatus(update *progrock.StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, v := range update.Vertexes {
		if err := p.updateVertex(v); err != nil {
			return err
		}
	}
	return nil
}

// Close implements progrock.Writer.
func (p *Progress) Close() error {
	return nil
}

func (p *Progress) updateVertex(v *progrock.Vertex) error {
	state := p.steps[v.Id]
	if state == stepFinished {
		return nil
	}

	if state == stepUnseen {
		p.steps[v.Id] = stepRunning
		if v.Completed == nil {
			_, err := fmt.Fprintf(p.w, "%s %s\n", stepRunningStyle.Render("▶"), v.Name)
			return err
		}
	}

	if v.Completed == nil {
		return nil
	}
	p.steps[v.Id] = stepFinished

	if v.Error != nil {
		_, err := fmt.Fprintf(p.w, "%s %s: %s\n", stepFailedStyle.Render("✗"), v.Name, *v.Error)
		return err
	}

	_, err := fmt.Fprintf(p.w, "%s %s%s\n", stepDoneStyle.Render("✓"), v.Name, elapsed(v))
	return err
}

func elapsed(v *progrock.Vertex) string {
	if v.Started == nil || v.Completed == nil {
		return ""
	}
	d := v.Completed.AsTime().Sub(v.Started.AsTime())
	if d < 0 {
		return ""
	}
	return fmt.Sprintf(" (%s)", d.Round(time.Millisecond))
}
