package hook

import (
	"context"
	"log"
	"sync"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

// NewRequest builds the hook request for a game event.
func NewRequest(ev session.Event) Request {
	return Request{
		Event:       string(ev.Type),
		SessionID:   ev.SessionID,
		PoseIndex:   ev.PoseIndex,
		PoseName:    ev.PoseName,
		Description: ev.Description,
		Score:       ev.Score,
		Passed:      ev.Passed,
		Feedback:    ev.Feedback,
		Total:       ev.Total,
		Timestamp:   ev.At.UnixMilli(),
	}
}

// Dispatcher delivers events to every subscribed hook without blocking the
// caller. Each hook runs in its own goroutine.
type Dispatcher struct {
	manager  *Manager
	executor *Executor
	wg       sync.WaitGroup

	// OnResult, if set, is called after each hook finishes.
	OnResult func(h *Hook, resp *Response, err error)
}

// NewDispatcher creates a Dispatcher over the hooks known to manager.
func NewDispatcher(manager *Manager, executor *Executor) *Dispatcher {
	return &Dispatcher{
		manager:  manager,
		executor: executor,
	}
}

// Dispatch starts every hook subscribed to the event and returns how many
// were started.
func (d *Dispatcher) Dispatch(ctx context.Context, ev session.Event) int {
	req := NewRequest(ev)
	hooks := d.manager.Subscribed(req.Event)

	for _, h := range hooks {
		d.wg.Add(1)
		go func(h *Hook) {
			defer d.wg.Done()

			resp, err := d.executor.Execute(ctx, h, &req)
			switch {
			case err != nil:
				log.Printf("Hook %s failed on %s: %v", h.Manifest.Name, req.Event, err)
			case !resp.Success:
				log.Printf("Hook %s rejected %s: %s", h.Manifest.Name, req.Event, resp.Error)
			}

			if d.OnResult != nil {
				d.OnResult(h, resp, err)
			}
		}(h)
	}

	return len(hooks)
}

// Wait blocks until every dispatched hook has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
