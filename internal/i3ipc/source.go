// Package i3ipc answers window manager questions over the i3/sway IPC socket.
package i3ipc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.i3wm.org/i3/v4"
)

// hookMu guards i3.SocketPathHook, which the i3 package reads on connect.
var hookMu sync.Mutex

// Source answers focused-workspace and version queries through the i3
// package, pointing it at the socket resolved by SocketPath.
type Source struct {
	SocketPath string
	Timeout    time.Duration

	getTree    func() (i3.Tree, error)
	getVersion func() (i3.Version, error)
}

// FocusedWorkspace discovers the socket, fetches the tree, and returns the
// name of the workspace holding the focused container.
func (s Source) FocusedWorkspace(ctx context.Context) (string, error) {
	if err := s.useSocket(ctx); err != nil {
		return "", err
	}

	getTree := s.getTree
	if getTree == nil {
		getTree = i3.GetTree
	}
	tree, err := call(ctx, s.Timeout, getTree)
	if err != nil {
		return "", fmt.Errorf("get tree: %w", err)
	}

	ws, err := FocusedWorkspace(tree.Root)
	if err != nil {
		return "", err
	}
	return ws.Name, nil
}

// Version reports the running window manager version.
func (s Source) Version(ctx context.Context) (Version, error) {
	if err := s.useSocket(ctx); err != nil {
		return Version{}, err
	}

	getVersion := s.getVersion
	if getVersion == nil {
		getVersion = i3.GetVersion
	}
	v, err := call(ctx, s.Timeout, getVersion)
	if err != nil {
		return Version{}, fmt.Errorf("get version: %w", err)
	}
	return v, nil
}

// Socket resolves the IPC socket path without connecting.
func (s Source) Socket(ctx context.Context) (string, error) {
	return SocketPath(ctx, s.SocketPath)
}

func (s Source) useSocket(ctx context.Context) error {
	path, err := s.Socket(ctx)
	if err != nil {
		return err
	}

	hookMu.Lock()
	defer hookMu.Unlock()
	i3.SocketPathHook = func() (string, error) { return path, nil }
	return nil
}

// call runs fn until it returns, the timeout passes, or ctx ends. The i3
// package has no deadlines of its own, so an abandoned call keeps its
// goroutine until the socket closes or the process exits.
func call[T any](ctx context.Context, timeout time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case r := <-done:
		return r.value, r.err
	case <-ctx.Done():
		return zero, fmt.Errorf("no reply from window manager: %w", ctx.Err())
	}
}
