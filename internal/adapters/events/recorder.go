package events

import (
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/park/internal/core/domain"
	"go.trai.ch/park/internal/core/ports"
)

var _ ports.EventSink = (*Recorder)(nil)

// Recorder renders resolution and launch progress as progrock vertexes:
// one vertex per resolution attempt and one per launch, completed when the
// terminal state arrives.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu          sync.Mutex
	resolutions map[string]*progrock.VertexRecorder
	launches    map[int]*progrock.VertexRecorder
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:           w,
		rec:         progrock.NewRecorder(w),
		resolutions: make(map[string]*progrock.VertexRecorder),
		launches:    make(map[int]*progrock.VertexRecorder),
	}
}

// ResolutionChanged implements ports.EventSink.
func (r *Recorder) ResolutionChanged(event domain.ResolutionEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := event.Key.Digest()
	switch event.State {
	case domain.StatePending:
		name := "resolve " + event.Key.String()
		r.resolutions[id] = r.rec.Vertex(digest.FromString(id), name)
	case domain.StateReady:
		if vertex, ok := r.resolutions[id]; ok {
			for _, pkg := range event.Environment.Packages {
				_, _ = fmt.Fprintf(vertex.Stdout(), "%s-%s\n", pkg.Name, pkg.Version)
			}
			vertex.Done(nil)
			delete(r.resolutions, id)
		}
	case domain.StateFailed:
		if vertex, ok := r.resolutions[id]; ok {
			vertex.Done(event.Failure)
			delete(r.resolutions, id)
		}
	}
}

// LaunchChanged implements ports.EventSink.
func (r *Recorder) LaunchChanged(event domain.LaunchEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := event.Handle
	switch handle.Status {
	case domain.LaunchRunning:
		name := fmt.Sprintf("launch %s (pid %d)", handle.Key.String(), handle.ProcessID)
		r.launches[handle.ID] = r.rec.Vertex(digest.FromString(fmt.Sprintf("launch-%d", handle.ID)), name)
	case domain.LaunchExited:
		if vertex, ok := r.launches[handle.ID]; ok {
			_, _ = fmt.Fprintf(vertex.Stdout(), "exit code %d\n", handle.ExitCode)
			vertex.Done(nil)
			delete(r.launches, handle.ID)
		}
	case domain.LaunchFailed:
		if vertex, ok := r.launches[handle.ID]; ok {
			vertex.Done(fmt.Errorf("%s", handle.Error))
			delete(r.launches, handle.ID)
		}
	}
}

// Close flushes and closes the underlying writer when it supports closing.
func (r *Recorder) Close() error {
	if closer, ok := r.w.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
