package app

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// The stdio host frames one JSON object per line. The GUI shell spawns the
// backend, writes requests to its stdin, and reads responses from stdout.
// Responses may arrive out of request order; the id ties them together.

type request struct {
	ID      int64           `json:"id"`
	Command string          `json:"command"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type response struct {
	ID     int64           `json:"id"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves the bridge over stdin/stdout until the host closes stdin, then
// releases the store. Signals cancel the context seen by in-flight handlers.
func (a *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	a.logger.Info(ctx, "starting bridge host", "commands", len(a.registry.Commands()))

	err := a.Serve(ctx, os.Stdin, os.Stdout)

	if closeErr := a.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// Serve reads requests line by line and dispatches each on its own
// goroutine, mirroring the parallel-threaded dispatch of a desktop host.
// Writes to w are serialised; handlers never block each other on output.
func (a *App) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// recipes and measurement batches can be large
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	enc := json.NewEncoder(w)
	var outMu sync.Mutex
	write := func(resp response) {
		outMu.Lock()
		defer outMu.Unlock()
		if err := enc.Encode(resp); err != nil {
			a.logger.Error(ctx, "failed to write response", "error", err.Error())
		}
	}

	var wg sync.WaitGroup
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}

		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			write(response{Error: "malformed request: " + err.Error()})
			continue
		}

		wg.Add(1)
		go func(req request) {
			defer wg.Done()
			result, err := a.registry.Invoke(ctx, req.Command, req.Payload)
			if err != nil {
				write(response{ID: req.ID, Error: err.Error()})
				return
			}
			write(response{ID: req.ID, Result: result})
		}(req)
	}

	wg.Wait()
	return scanner.Err()
}
