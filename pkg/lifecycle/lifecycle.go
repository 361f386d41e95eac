// Package lifecycle coordinates subsystem startup, readiness, and shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrNotReady is returned by Check before startup has completed.
	ErrNotReady = errors.New("startup incomplete")
	// ErrShutdownTimeout is returned when shutdown hooks outlive the timeout.
	ErrShutdownTimeout = errors.New("shutdown timeout")
)

// Probe reports whether a subsystem can serve traffic.
type Probe func(ctx context.Context) error

type namedProbe struct {
	name  string
	probe Probe
}

// Coordinator manages startup and shutdown hooks for the application lifecycle.
type Coordinator struct {
	ctx        context.Context
	cancel     context.CancelFunc
	startupWg  sync.WaitGroup
	shutdownWg sync.WaitGroup
	ready      bool
	readyMu    sync.RWMutex
	probes     []namedProbe
	probesMu   sync.RWMutex
}

// New creates a Coordinator with a cancellable context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup registers a function to run concurrently during startup.
func (c *Coordinator) OnStartup(fn func()) {
	c.startupWg.Go(fn)
}

// OnShutdown registers a function to run concurrently during shutdown.
// Shutdown hooks should block on <-c.Context().Done() before executing cleanup.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdownWg.Go(fn)
}

// OnReady registers a readiness probe consulted by Check.
func (c *Coordinator) OnReady(name string, p Probe) {
	c.probesMu.Lock()
	defer c.probesMu.Unlock()
	c.probes = append(c.probes, namedProbe{name: name, probe: p})
}

// Ready returns true after all startup hooks have completed.
func (c *Coordinator) Ready() bool {
	c.readyMu.RLock()
	defer c.readyMu.RUnlock()
	return c.ready
}

// Check returns ErrNotReady before startup completes, otherwise the first
// failing probe's error prefixed with its name.
func (c *Coordinator) Check(ctx context.Context) error {
	if !c.Ready() {
		return ErrNotReady
	}

	c.probesMu.RLock()
	probes := c.probes
	c.probesMu.RUnlock()

	for _, p := range probes {
		if err := p.probe(ctx); err != nil {
			return fmt.Errorf("%s: %w", p.name, err)
		}
	}
	return nil
}

// WaitForStartup blocks until all startup hooks have completed and sets the ready flag.
func (c *Coordinator) WaitForStartup() {
	c.startupWg.Wait()
	c.readyMu.Lock()
	c.ready = true
	c.readyMu.Unlock()
}

// Shutdown cancels the context and waits for shutdown hooks to complete
// within the given timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("%w after %v", ErrShutdownTimeout, timeout)
	}
}
