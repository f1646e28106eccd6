// Package bridge implements the in-process command bridge between the GUI
// host and the backend: a registry mapping command names to handlers with
// JSON payloads.
package bridge

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/labbench/internal/common"
	"github.com/dmitrijs2005/labbench/internal/logging"
)

// Handler processes one command invocation. payload may be nil for commands
// without input. The returned value is marshalled to JSON for the caller.
type Handler func(ctx context.Context, payload json.RawMessage) (any, error)

// Registry is the command table the host dispatches into. Handlers may be
// invoked concurrently from host worker goroutines; registration happens at
// bootstrap, before the first Invoke.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	logger   logging.Logger
}

func NewRegistry(logger logging.Logger) *Registry {
	return &Registry{handlers: make(map[string]Handler), logger: logger}
}

// Register binds name to h, replacing any previous binding.
func (r *Registry) Register(name string, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[name] = h
}

// Commands returns the registered command names, for diagnostics.
func (r *Registry) Commands() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

// Invoke runs the handler registered under name and returns its result as
// JSON. An unregistered name yields common.ErrUnknownCommand. Payloads are
// never logged: they carry plaintext passwords.
func (r *Registry) Invoke(ctx context.Context, name string, payload json.RawMessage) (json.RawMessage, error) {
	r.mu.RLock()
	h, ok := r.handlers[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("command %q: %w", name, common.ErrUnknownCommand)
	}

	result, err := h(ctx, payload)
	if err != nil {
		r.logger.Error(ctx, "command failed", "cmd", name, "error", err.Error())
		return nil, err
	}

	out, err := json.Marshal(result)
	if err != nil {
		r.logger.Error(ctx, "command result not serialisable", "cmd", name, "error", err.Error())
		return nil, fmt.Errorf("failed to marshal %q result: %w", name, err)
	}
	return out, nil
}
